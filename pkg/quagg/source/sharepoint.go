package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SharePoint enumerates questionnaire folders in a SharePoint document
// library via its REST API. Session negotiation is the caller's concern:
// the source only attaches a pre-acquired bearer token to each request.
type SharePoint struct {
	siteURL string
	root    string
	token   string
	client  *http.Client
}

// NewSharePoint returns a Source over the folder at the server-relative
// rootPath within the site at siteURL. client may be nil, in which case
// http.DefaultClient is used.
func NewSharePoint(siteURL, rootPath, token string, client *http.Client) *SharePoint {
	if client == nil {
		client = http.DefaultClient
	}
	return &SharePoint{
		siteURL: strings.TrimRight(siteURL, "/"),
		root:    rootPath,
		token:   token,
		client:  client,
	}
}

// listItem is the $select-ed subset of SharePoint folder/file metadata.
type listItem struct {
	Name              string `json:"Name"`
	ServerRelativeURL string `json:"ServerRelativeUrl"`
}

// Folders lists the subfolders of the root path, excluding dot-prefixed
// ones, sorted by name. SharePoint does not guarantee listing order.
func (s *SharePoint) Folders(ctx context.Context) ([]Folder, error) {
	items, err := s.list(ctx, s.root, "Folders")
	if err != nil {
		return nil, err
	}

	var folders []Folder
	for _, item := range items {
		if strings.HasPrefix(item.Name, ".") {
			continue
		}
		folders = append(folders, Folder{Name: item.Name, Path: item.ServerRelativeURL})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

// Files lists the spreadsheet files in folder, sorted by name.
func (s *SharePoint) Files(ctx context.Context, folder Folder) ([]File, error) {
	items, err := s.list(ctx, folder.Path, "Files")
	if err != nil {
		return nil, err
	}

	var files []File
	for _, item := range items {
		if !isSpreadsheet(item.Name) {
			continue
		}
		files = append(files, File{Name: item.Name, Path: item.ServerRelativeURL})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Open downloads the file content and opens it in memory as a cell grid.
func (s *SharePoint) Open(ctx context.Context, file File) (Grid, error) {
	url := fmt.Sprintf("%s/_api/web/GetFileByServerRelativeUrl('%s')/$value",
		s.siteURL, odataEscape(file.Path))
	body, err := s.get(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrUnavailable, file.Name, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnreadable, file.Name, err)
	}
	return newGrid(f, file.Name)
}

// list fetches the Folders or Files collection of a server-relative folder.
func (s *SharePoint) list(ctx context.Context, folderPath, collection string) ([]listItem, error) {
	url := fmt.Sprintf("%s/_api/web/GetFolderByServerRelativeUrl('%s')/%s?$select=Name,ServerRelativeUrl",
		s.siteURL, odataEscape(folderPath), collection)
	body, err := s.get(ctx, url, "application/json;odata=nometadata")
	if err != nil {
		return nil, fmt.Errorf("%w: list %s of %s: %v", ErrUnavailable, strings.ToLower(collection), folderPath, err)
	}

	var payload struct {
		Value []listItem `json:"value"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode listing of %s: %v", ErrUnavailable, folderPath, err)
	}
	return payload.Value, nil
}

func (s *SharePoint) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// odataEscape doubles single quotes for embedding in OData string literals.
func odataEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
