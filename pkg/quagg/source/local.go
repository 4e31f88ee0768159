package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Local enumerates questionnaire folders under a base directory on the
// local filesystem.
type Local struct {
	base string
}

// NewLocal returns a Source over the immediate subdirectories of base.
func NewLocal(base string) *Local {
	return &Local{base: base}
}

// Folders lists the immediate subdirectories of the base path, excluding
// dot-prefixed ones, in lexical order.
func (l *Local) Folders(ctx context.Context) ([]Folder, error) {
	entries, err := os.ReadDir(l.base)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, l.base, err)
	}

	var folders []Folder
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		folders = append(folders, Folder{
			Name: entry.Name(),
			Path: filepath.Join(l.base, entry.Name()),
		})
	}
	return folders, nil
}

// Files lists the spreadsheet files directly inside folder, in lexical
// order. Lock-file artifacts and non-spreadsheet files are excluded.
func (l *Local) Files(ctx context.Context, folder Folder) ([]File, error) {
	entries, err := os.ReadDir(folder.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, folder.Path, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !isSpreadsheet(entry.Name()) {
			continue
		}
		files = append(files, File{
			Name: entry.Name(),
			Path: filepath.Join(folder.Path, entry.Name()),
		})
	}
	return files, nil
}

// Open opens the file as a read-only cell grid over its active sheet.
func (l *Local) Open(ctx context.Context, file File) (Grid, error) {
	f, err := excelize.OpenFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnreadable, file.Name, err)
	}
	return newGrid(f, file.Name)
}
