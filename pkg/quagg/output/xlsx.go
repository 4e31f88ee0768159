// Package output serializes aggregate tables to spreadsheet artifacts.
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"quagg/pkg/quagg/models"
)

const sheetName = "Sheet1"

// WriteTable writes the table to an xlsx workbook at path: one header row
// followed by one row per record, every cell a plain string.
func WriteTable(table *models.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, table.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, start, &values)
}
