package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// Upload implements poeditor.ProjectsClient.Upload. The file is sent as
// the multipart "file" part; all booleans travel as "1"/"0". The API
// accepts no more than one upload every poeditor.MinUploadInterval.
func (c *ProjectsClient) Upload(ctx context.Context, request *poeditor.UploadRequest) (*poeditor.UploadResult, error) {
	if !request.Updating.Valid() {
		return nil, poeditor.NewArgsError("updating must be one of %v, got %q", poeditor.UploadUpdatingModes, request.Updating)
	}

	if request.Language == "" && request.Updating != poeditor.UpdatingTerms {
		return nil, poeditor.NewArgsError("language is required when updating is %q or %q",
			poeditor.UpdatingTermsTranslations, poeditor.UpdatingTranslations)
	}

	if request.FilePath == "" {
		return nil, poeditor.NewArgsError("file path is required")
	}

	tags := request.Tags
	syncTerms := request.SyncTerms

	// Tags and term syncing only make sense when terms are updated.
	if request.Updating == poeditor.UpdatingTranslations {
		tags = nil
		syncTerms = false
	}

	fields := url.Values{}
	fields.Set("id", formInt(request.ProjectID))
	fields.Set("updating", string(request.Updating))
	fields.Set("language", request.Language)
	fields.Set("overwrite", formBool(request.Overwrite))
	fields.Set("sync_terms", formBool(syncTerms))
	fields.Set("fuzzy_trigger", formBool(request.FuzzyTrigger))

	if len(tags) > 0 {
		encoded, err := formJSON(tags)
		if err != nil {
			return nil, err
		}

		fields.Set("tags", encoded)
	}

	file, err := os.Open(request.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening upload file: %w", err)
	}

	// Close even when the request fails midway.
	defer func() {
		_ = file.Close()
	}()

	resp, err := c.httpClient.PostMultipart(ctx, "/projects/upload", filepath.Base(request.FilePath), fields, file)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	var result poeditor.UploadResult

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing upload result: %w", err)
	}

	return &result, nil
}
