package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// ContributorsClient implements poeditor.ContributorsClient.
type ContributorsClient struct {
	httpClient *http.Client
}

// NewContributorsClient creates a new contributors client.
func NewContributorsClient(httpClient *http.Client) *ContributorsClient {
	return &ContributorsClient{
		httpClient: httpClient,
	}
}

// List implements poeditor.ContributorsClient.List. A zero projectID
// lists contributors across all projects.
func (c *ContributorsClient) List(ctx context.Context, projectID int, language string) ([]poeditor.Contributor, error) {
	fields := url.Values{}

	if projectID != 0 {
		fields.Set("id", formInt(projectID))
	}

	if language != "" {
		fields.Set("language", language)
	}

	resp, err := c.httpClient.PostForm(ctx, "/contributors/list", fields)
	if err != nil {
		return nil, fmt.Errorf("listing contributors: %w", err)
	}

	var result struct {
		Contributors []poeditor.Contributor `json:"contributors"`
	}

	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing contributors list: %w", err)
	}

	return result.Contributors, nil
}

// Add implements poeditor.ContributorsClient.Add. Administrators are
// added project-wide; the language field only applies to regular
// contributors.
func (c *ContributorsClient) Add(ctx context.Context, request *poeditor.ContributorAddRequest) error {
	fields := url.Values{}
	fields.Set("id", formInt(request.ProjectID))
	fields.Set("name", request.Name)
	fields.Set("email", request.Email)

	if request.Admin {
		fields.Set("admin", formBool(true))
	} else {
		fields.Set("language", request.Language)
	}

	_, err := c.httpClient.PostForm(ctx, "/contributors/add", fields)
	if err != nil {
		return fmt.Errorf("adding contributor: %w", err)
	}

	return nil
}

// Remove implements poeditor.ContributorsClient.Remove. An empty
// language removes the contributor from the whole project.
func (c *ContributorsClient) Remove(ctx context.Context, projectID int, email, language string) error {
	fields := url.Values{}
	fields.Set("id", formInt(projectID))
	fields.Set("email", email)

	if language != "" {
		fields.Set("language", language)
	}

	_, err := c.httpClient.PostForm(ctx, "/contributors/remove", fields)
	if err != nil {
		return fmt.Errorf("removing contributor: %w", err)
	}

	return nil
}
