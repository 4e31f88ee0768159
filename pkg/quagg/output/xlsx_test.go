package output

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"quagg/pkg/quagg/models"
)

func TestWriteTableRoundTrip(t *testing.T) {
	table := &models.Table{
		Header: models.Header(),
		Rows: [][]string{
			make([]string, len(models.Header())),
		},
	}
	table.Rows[0][0] = "folder-a"
	table.Rows[0][1] = "Payroll"
	table.Rows[0][5] = "Answer 1"
	table.Rows[0][38] = "Comment 17"

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteTable(table, path); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}

	if rows[0][0] != "Source" || rows[0][1] != "Application" {
		t.Errorf("header = %v", rows[0][:2])
	}
	if rows[0][len(rows[0])-1] != "COMM-Q17" {
		t.Errorf("last header column = %q", rows[0][len(rows[0])-1])
	}
	if rows[1][0] != "folder-a" || rows[1][1] != "Payroll" || rows[1][5] != "Answer 1" {
		t.Errorf("data row = %v", rows[1][:6])
	}
	if rows[1][38] != "Comment 17" {
		t.Errorf("COMM-Q17 cell = %q", rows[1][38])
	}
}

func TestWriteTableEmpty(t *testing.T) {
	table := &models.Table{Header: models.Header()}
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteTable(table, path); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %d rows", len(rows))
	}
}
