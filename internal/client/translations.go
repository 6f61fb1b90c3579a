package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// TranslationsClient implements poeditor.TranslationsClient.
type TranslationsClient struct {
	httpClient *http.Client
}

// NewTranslationsClient creates a new translations client.
func NewTranslationsClient(httpClient *http.Client) *TranslationsClient {
	return &TranslationsClient{
		httpClient: httpClient,
	}
}

// Add implements poeditor.TranslationsClient.Add.
func (c *TranslationsClient) Add(ctx context.Context, projectID int, language string, entries []poeditor.TranslationUpdate) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/translations/add", projectID, language, entries)
}

// Update implements poeditor.TranslationsClient.Update.
func (c *TranslationsClient) Update(ctx context.Context, projectID int, language string, entries []poeditor.TranslationUpdate) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/translations/update", projectID, language, entries)
}

// Delete implements poeditor.TranslationsClient.Delete. Keys need only
// the term+context identity.
func (c *TranslationsClient) Delete(ctx context.Context, projectID int, language string, keys []poeditor.TermKey) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/translations/delete", projectID, language, keys)
}

func (c *TranslationsClient) mutate(ctx context.Context, path string, projectID int, language string, payload interface{}) (*poeditor.UploadCounters, error) {
	data, err := formJSON(payload)
	if err != nil {
		return nil, err
	}

	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("language", language)
	fields.Set("data", data)

	resp, err := c.httpClient.PostForm(ctx, path, fields)
	if err != nil {
		return nil, fmt.Errorf("mutating translations: %w", err)
	}

	return decodeTranslationCounters(resp.Result)
}
