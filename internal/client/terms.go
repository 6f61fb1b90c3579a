package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// TermsClient implements poeditor.TermsClient.
type TermsClient struct {
	httpClient *http.Client
}

// NewTermsClient creates a new terms client.
func NewTermsClient(httpClient *http.Client) *TermsClient {
	return &TermsClient{
		httpClient: httpClient,
	}
}

// List implements poeditor.TermsClient.List. A non-empty language scopes
// the listing so every term carries its translation for that language.
func (c *TermsClient) List(ctx context.Context, projectID int, language string) ([]poeditor.Term, error) {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))

	if language != "" {
		fields.Set("language", language)
	}

	resp, err := c.httpClient.PostForm(ctx, "/terms/list", fields)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	var result struct {
		Terms []poeditor.Term `json:"terms"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing terms list: %w", err)
	}

	return result.Terms, nil
}

// Add implements poeditor.TermsClient.Add.
func (c *TermsClient) Add(ctx context.Context, projectID int, terms []poeditor.Term) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/terms/add", projectID, terms, nil)
}

// Update implements poeditor.TermsClient.Update.
func (c *TermsClient) Update(ctx context.Context, projectID int, updates []poeditor.TermUpdate, fuzzyTrigger bool) (*poeditor.UploadCounters, error) {
	extra := url.Values{}
	extra.Set("fuzzy_trigger", formBool(fuzzyTrigger))

	return c.mutate(ctx, "/terms/update", projectID, updates, extra)
}

// Delete implements poeditor.TermsClient.Delete. Keys need only the
// term+context identity.
func (c *TermsClient) Delete(ctx context.Context, projectID int, keys []poeditor.TermKey) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/terms/delete", projectID, keys, nil)
}

// AddComments implements poeditor.TermsClient.AddComments.
func (c *TermsClient) AddComments(ctx context.Context, projectID int, comments []poeditor.TermComment) (*poeditor.UploadCounters, error) {
	return c.mutate(ctx, "/terms/add_comment", projectID, comments, nil)
}

// mutate runs one bulk terms mutation: payload JSON-encoded into the
// "data" field, counters decoded from result.terms.
func (c *TermsClient) mutate(ctx context.Context, path string, projectID int, payload interface{}, extra url.Values) (*poeditor.UploadCounters, error) {
	data, err := formJSON(payload)
	if err != nil {
		return nil, err
	}

	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("data", data)

	for key, values := range extra {
		for _, value := range values {
			fields.Add(key, value)
		}
	}

	resp, err := c.httpClient.PostForm(ctx, path, fields)
	if err != nil {
		return nil, fmt.Errorf("mutating terms: %w", err)
	}

	return decodeTermCounters(resp.Result)
}
