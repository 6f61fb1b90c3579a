package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// LanguagesClient implements poeditor.LanguagesClient.
type LanguagesClient struct {
	httpClient *http.Client
}

// NewLanguagesClient creates a new languages client.
func NewLanguagesClient(httpClient *http.Client) *LanguagesClient {
	return &LanguagesClient{
		httpClient: httpClient,
	}
}

// Available implements poeditor.LanguagesClient.Available.
func (c *LanguagesClient) Available(ctx context.Context) ([]poeditor.AvailableLanguage, error) {
	resp, err := c.httpClient.PostForm(ctx, "/languages/available", nil)
	if err != nil {
		return nil, fmt.Errorf("listing available languages: %w", err)
	}

	var result struct {
		Languages []poeditor.AvailableLanguage `json:"languages"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing available languages: %w", err)
	}

	return result.Languages, nil
}

// List implements poeditor.LanguagesClient.List.
func (c *LanguagesClient) List(ctx context.Context, projectID int) ([]poeditor.Language, error) {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))

	resp, err := c.httpClient.PostForm(ctx, "/languages/list", fields)
	if err != nil {
		return nil, fmt.Errorf("listing project languages: %w", err)
	}

	var result struct {
		Languages []poeditor.Language `json:"languages"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing project languages: %w", err)
	}

	return result.Languages, nil
}

// Add implements poeditor.LanguagesClient.Add.
func (c *LanguagesClient) Add(ctx context.Context, projectID int, code string) error {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("language", code)

	_, err := c.httpClient.PostForm(ctx, "/languages/add", fields)
	if err != nil {
		return fmt.Errorf("adding language: %w", err)
	}

	return nil
}

// Delete implements poeditor.LanguagesClient.Delete.
func (c *LanguagesClient) Delete(ctx context.Context, projectID int, code string) error {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("language", code)

	_, err := c.httpClient.PostForm(ctx, "/languages/delete", fields)
	if err != nil {
		return fmt.Errorf("deleting language: %w", err)
	}

	return nil
}

// Update implements poeditor.LanguagesClient.Update: inserts or
// overwrites translations for one project language.
func (c *LanguagesClient) Update(ctx context.Context, projectID int, code string, entries []poeditor.TranslationUpdate, fuzzyTrigger bool) (*poeditor.UploadCounters, error) {
	data, err := formJSON(entries)
	if err != nil {
		return nil, err
	}

	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("language", code)
	fields.Set("data", data)
	fields.Set("fuzzy_trigger", formBool(fuzzyTrigger))

	resp, err := c.httpClient.PostForm(ctx, "/languages/update", fields)
	if err != nil {
		return nil, fmt.Errorf("updating language: %w", err)
	}

	return decodeTranslationCounters(resp.Result)
}
