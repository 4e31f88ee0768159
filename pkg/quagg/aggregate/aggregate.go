// Package aggregate collects questionnaire records into one flat table.
package aggregate

import "quagg/pkg/quagg/models"

// Aggregator appends records to an in-memory table in arrival order and
// tracks discovery and skip counters for the run summary. It performs no
// deduplication: two files with the same application become two rows.
type Aggregator struct {
	rows    [][]string
	summary models.Summary
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Discovered counts one enumerated spreadsheet file.
func (a *Aggregator) Discovered() {
	a.summary.FilesDiscovered++
}

// Add appends one row for the record. Slot i always maps to column Q(i+1)
// and COMM-Q(i+1); alignment is positional, never based on question text.
func (a *Aggregator) Add(rec *models.Record) {
	row := make([]string, 0, 5+2*models.NumQuestions)
	row = append(row, rec.SourceLabel, rec.Application, rec.Responsible, rec.Responsible, rec.Deputy)
	for _, ans := range rec.Answers {
		row = append(row, ans.Answer)
	}
	for _, ans := range rec.Answers {
		row = append(row, ans.Comment)
	}
	a.rows = append(a.rows, row)
	a.summary.RecordsAdded++
}

// Skip records one skipped source with its reason.
func (a *Aggregator) Skip(source string, reason models.SkipReason) {
	a.summary.Skips = append(a.summary.Skips, models.Skip{Source: source, Reason: reason})
}

// Finalize returns the aggregate table with its run summary. It never
// fails; zero added records yield a valid header-only table.
func (a *Aggregator) Finalize() *models.Table {
	return &models.Table{
		Header:  models.Header(),
		Rows:    a.rows,
		Summary: a.summary,
	}
}
