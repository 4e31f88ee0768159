// Package source enumerates questionnaire folders and spreadsheet files and
// opens read-only cell grids over them. Two variants exist: the local
// filesystem and a SharePoint document library, both behind one contract.
package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnavailable indicates a folder/file listing or remote fetch failed.
var ErrUnavailable = errors.New("source unavailable")

// ErrUnreadable indicates a file could not be opened as a workbook.
var ErrUnreadable = errors.New("unreadable workbook")

// Folder identifies one top-level questionnaire folder.
type Folder struct {
	// Name is the folder's display name, used in source labels.
	Name string
	// Path locates the folder within its backend (filesystem path or
	// server-relative URL).
	Path string
}

// File identifies one spreadsheet file within a folder.
type File struct {
	Name string
	Path string
}

// Grid is a read-only view over a workbook's active sheet, addressable by
// letter column and 1-indexed row. Absent cells read as the empty string.
type Grid interface {
	Cell(col string, row int) string
	Close() error
}

// Source lists questionnaire folders and files and opens cell grids.
// Enumeration order is deterministic for a given backend snapshot.
type Source interface {
	Folders(ctx context.Context) ([]Folder, error)
	Files(ctx context.Context, folder Folder) ([]File, error)
	Open(ctx context.Context, file File) (Grid, error)
}

// isSpreadsheet reports whether name is a questionnaire candidate: a
// spreadsheet extension and not an Office lock-file artifact.
func isSpreadsheet(name string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

type xlsxGrid struct {
	f     *excelize.File
	sheet string
}

// newGrid wraps an open workbook as a Grid over its active sheet. The
// workbook is closed on failure.
func newGrid(f *excelize.File, name string) (*xlsxGrid, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %s has no sheets", ErrUnreadable, name)
	}
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheet = sheets[0]
	}
	return &xlsxGrid{f: f, sheet: sheet}, nil
}

func (g *xlsxGrid) Cell(col string, row int) string {
	v, err := g.f.GetCellValue(g.sheet, fmt.Sprintf("%s%d", col, row))
	if err != nil {
		return ""
	}
	return v
}

func (g *xlsxGrid) Close() error {
	return g.f.Close()
}
