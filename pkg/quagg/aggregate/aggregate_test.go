package aggregate

import (
	"fmt"
	"testing"

	"quagg/pkg/quagg/models"
)

func sampleRecord(label, app string) *models.Record {
	rec := &models.Record{
		SourceLabel: label,
		Application: app,
		Responsible: "Alice",
		Deputy:      "Bob",
	}
	for i := 0; i < models.NumQuestions; i++ {
		rec.Answers[i] = models.Answer{
			Question: fmt.Sprintf("Q text %d", i+1),
			Answer:   fmt.Sprintf("A%d", i+1),
			Comment:  fmt.Sprintf("C%d", i+1),
		}
	}
	return rec
}

func TestHeaderSchema(t *testing.T) {
	header := models.Header()
	if len(header) != 39 {
		t.Fatalf("expected 39 columns (provenance + 38), got %d", len(header))
	}

	fixed := []string{"Source", "Application", "Answered/Responsible", "AppResponsible", "Deputy"}
	for i, name := range fixed {
		if header[i] != name {
			t.Errorf("column %d = %q, expected %q", i, header[i], name)
		}
	}
	if header[5] != "Q1" || header[21] != "Q17" {
		t.Errorf("question columns misplaced: %q, %q", header[5], header[21])
	}
	if header[22] != "COMM-Q1" || header[38] != "COMM-Q17" {
		t.Errorf("comment columns misplaced: %q, %q", header[22], header[38])
	}
}

func TestAddMapsSlotsPositionally(t *testing.T) {
	agg := New()
	agg.Discovered()
	agg.Add(sampleRecord("folder-a", "AppA"))

	table := agg.Finalize()
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}

	row := table.Rows[0]
	if len(row) != len(table.Header) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(table.Header))
	}
	if row[0] != "folder-a" || row[1] != "AppA" {
		t.Errorf("provenance/application = %q/%q", row[0], row[1])
	}
	// AppResponsible duplicates Answered/Responsible.
	if row[2] != "Alice" || row[3] != "Alice" {
		t.Errorf("responsible columns = %q/%q", row[2], row[3])
	}
	if row[4] != "Bob" {
		t.Errorf("deputy = %q", row[4])
	}
	for i := 0; i < models.NumQuestions; i++ {
		if row[5+i] != fmt.Sprintf("A%d", i+1) {
			t.Errorf("Q%d = %q", i+1, row[5+i])
		}
		if row[5+models.NumQuestions+i] != fmt.Sprintf("C%d", i+1) {
			t.Errorf("COMM-Q%d = %q", i+1, row[5+models.NumQuestions+i])
		}
	}
}

func TestNoDeduplication(t *testing.T) {
	agg := New()
	agg.Add(sampleRecord("folder-a", "SameApp"))
	agg.Add(sampleRecord("folder-b", "SameApp"))

	table := agg.Finalize()
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 rows for duplicate applications, got %d", len(table.Rows))
	}
}

func TestSummaryCounters(t *testing.T) {
	agg := New()
	agg.Discovered()
	agg.Discovered()
	agg.Discovered()
	agg.Add(sampleRecord("a", "AppA"))
	agg.Add(sampleRecord("b", "AppB"))
	agg.Skip("c", models.SkipUnreadable)

	summary := agg.Finalize().Summary
	if summary.FilesDiscovered != 3 {
		t.Errorf("FilesDiscovered = %d", summary.FilesDiscovered)
	}
	if summary.RecordsAdded != 2 {
		t.Errorf("RecordsAdded = %d", summary.RecordsAdded)
	}
	if len(summary.Skips) != 1 || summary.Skips[0].Reason != models.SkipUnreadable {
		t.Errorf("Skips = %+v", summary.Skips)
	}
}

func TestFinalizeEmpty(t *testing.T) {
	table := New().Finalize()
	if len(table.Rows) != 0 {
		t.Errorf("expected empty table, got %d rows", len(table.Rows))
	}
	if len(table.Header) != 39 {
		t.Errorf("empty table still carries the schema, got %d columns", len(table.Header))
	}
}
