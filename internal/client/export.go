package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// Export implements poeditor.ProjectsClient.Export: one POST to request
// the export, then a plain GET against the returned short-lived URL,
// streamed to a local file.
func (c *ProjectsClient) Export(ctx context.Context, request *poeditor.ExportRequest) (*poeditor.ExportResult, error) {
	if !request.FileType.Valid() {
		return nil, poeditor.NewArgsError("file type must be one of %v, got %q", poeditor.FileTypes, request.FileType)
	}

	for _, filter := range request.Filters {
		if !filter.Valid() {
			return nil, poeditor.NewArgsError("filters must be among %v, got %q", poeditor.ExportFilters, filter)
		}
	}

	fields := url.Values{}
	fields.Set("id", formInt(request.ProjectID))
	fields.Set("language", request.Language)
	fields.Set("type", string(request.FileType))

	if len(request.Filters) > 0 {
		filters, err := formJSON(request.Filters)
		if err != nil {
			return nil, err
		}

		fields.Set("filters", filters)
	}

	if len(request.Tags) > 0 {
		tags, err := formJSON(request.Tags)
		if err != nil {
			return nil, err
		}

		fields.Set("tags", tags)
	}

	if request.OrderByTerms {
		fields.Set("order", "terms")
	}

	resp, err := c.httpClient.PostForm(ctx, "/projects/export", fields)
	if err != nil {
		return nil, fmt.Errorf("requesting export: %w", err)
	}

	var result struct {
		URL string `json:"url"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing export response: %w", err)
	}

	if result.URL == "" {
		return nil, poeditor.ErrEmptyExportURL
	}

	localPath, err := c.downloadExport(ctx, result.URL, request.LocalPath, request.FileType)
	if err != nil {
		return nil, err
	}

	return &poeditor.ExportResult{
		URL:       result.URL,
		LocalPath: localPath,
	}, nil
}

func (c *ProjectsClient) downloadExport(ctx context.Context, fileURL, localPath string, fileType poeditor.FileType) (string, error) {
	var (
		file *os.File
		err  error
	)

	if localPath == "" {
		file, err = os.CreateTemp("", "poeditor-*."+string(fileType))
		if err != nil {
			return "", fmt.Errorf("creating temp file: %w", err)
		}

		localPath = file.Name()
	} else {
		file, err = os.Create(localPath)
		if err != nil {
			return "", fmt.Errorf("creating export file: %w", err)
		}
	}

	defer func() {
		_ = file.Close()
	}()

	err = c.httpClient.Download(ctx, fileURL, file)
	if err != nil {
		return "", fmt.Errorf("downloading export: %w", err)
	}

	return localPath, nil
}
