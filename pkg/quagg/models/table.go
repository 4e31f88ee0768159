package models

import "fmt"

// SkipReason classifies why a file or folder was skipped.
type SkipReason string

const (
	// SkipUnreadable means the file could not be opened or parsed as a workbook.
	SkipUnreadable SkipReason = "unreadable"
	// SkipSourceUnavailable means the listing or remote fetch failed.
	SkipSourceUnavailable SkipReason = "source_unavailable"
	// SkipMalformedLayout means header cells were present but the question
	// block was entirely absent (strict mode only).
	SkipMalformedLayout SkipReason = "malformed_layout"
)

// Skip records one skipped source with its reason.
type Skip struct {
	// Source is the folder/file label of the skipped item.
	Source string `json:"source"`
	// Reason classifies the failure.
	Reason SkipReason `json:"reason"`
}

// Summary reports the outcome of an aggregation run.
type Summary struct {
	// FilesDiscovered counts every spreadsheet file the source enumerated.
	FilesDiscovered int `json:"files_discovered"`
	// RecordsAdded counts successfully parsed files.
	RecordsAdded int `json:"records_added"`
	// Skips lists every skipped source with its reason.
	Skips []Skip `json:"skips,omitempty"`
}

// Table is the flattened output of a run: one row per parsed record, in
// discovery order, under a fixed column schema.
type Table struct {
	// Header holds the column names: Source, then the 38 data columns.
	Header []string `json:"header"`
	// Rows holds one string row per record, aligned to Header.
	Rows [][]string `json:"rows"`
	// Summary reports counts and skip reasons for the run.
	Summary Summary `json:"summary"`
}

// Header returns the fixed column schema: a provenance column followed by
// the 38 data columns. AppResponsible duplicates Answered/Responsible to
// satisfy two historically different downstream column names.
func Header() []string {
	cols := make([]string, 0, 5+2*NumQuestions)
	cols = append(cols, "Source", "Application", "Answered/Responsible", "AppResponsible", "Deputy")
	for i := 1; i <= NumQuestions; i++ {
		cols = append(cols, fmt.Sprintf("Q%d", i))
	}
	for i := 1; i <= NumQuestions; i++ {
		cols = append(cols, fmt.Sprintf("COMM-Q%d", i))
	}
	return cols
}
