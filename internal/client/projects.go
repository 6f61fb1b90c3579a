package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// ProjectsClient implements poeditor.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// List implements poeditor.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context) ([]poeditor.Project, error) {
	resp, err := c.httpClient.PostForm(ctx, "/projects/list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var result struct {
		Projects []poeditor.Project `json:"projects"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return result.Projects, nil
}

// Get implements poeditor.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID int) (*poeditor.Project, error) {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))

	resp, err := c.httpClient.PostForm(ctx, "/projects/view", fields)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return decodeProject(resp.Result)
}

// Create implements poeditor.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, name, description string) (*poeditor.Project, error) {
	fields := url.Values{}
	fields.Set("name", name)
	fields.Set("description", description)

	resp, err := c.httpClient.PostForm(ctx, "/projects/add", fields)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return decodeProject(resp.Result)
}

// Update implements poeditor.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID int, request *poeditor.ProjectUpdateRequest) (*poeditor.Project, error) {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))

	if request != nil {
		if request.Name != nil {
			fields.Set("name", *request.Name)
		}

		if request.Description != nil {
			fields.Set("description", *request.Description)
		}

		if request.ReferenceLanguage != nil {
			fields.Set("reference_language", *request.ReferenceLanguage)
		}
	}

	resp, err := c.httpClient.PostForm(ctx, "/projects/update", fields)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return decodeProject(resp.Result)
}

// Delete implements poeditor.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID int) error {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))

	_, err := c.httpClient.PostForm(ctx, "/projects/delete", fields)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// Sync implements poeditor.ProjectsClient.Sync. Terms absent from terms
// are deleted from the project; new ones are added.
func (c *ProjectsClient) Sync(ctx context.Context, projectID int, terms []poeditor.Term) (*poeditor.UploadCounters, error) {
	data, err := formJSON(terms)
	if err != nil {
		return nil, err
	}

	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("data", data)

	resp, err := c.httpClient.PostForm(ctx, "/projects/sync", fields)
	if err != nil {
		return nil, fmt.Errorf("syncing terms: %w", err)
	}

	return decodeTermCounters(resp.Result)
}

func decodeProject(result json.RawMessage) (*poeditor.Project, error) {
	var parsed struct {
		Project poeditor.Project `json:"project"`
	}

	err := json.Unmarshal(result, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &parsed.Project, nil
}

func decodeTermCounters(result json.RawMessage) (*poeditor.UploadCounters, error) {
	var parsed struct {
		Terms poeditor.UploadCounters `json:"terms"`
	}

	err := json.Unmarshal(result, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing term counters: %w", err)
	}

	return &parsed.Terms, nil
}

func decodeTranslationCounters(result json.RawMessage) (*poeditor.UploadCounters, error) {
	var parsed struct {
		Translations poeditor.UploadCounters `json:"translations"`
	}

	err := json.Unmarshal(result, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing translation counters: %w", err)
	}

	return &parsed.Translations, nil
}
