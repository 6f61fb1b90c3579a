// Package client implements the poeditor.Client interface on top of the
// form-encoded request executor.
package client

import (
	"github.com/localizehq/poeditor-go/internal/constants"
	"github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// Client implements the poeditor.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     poeditor.Logger

	// Resource clients
	projects     poeditor.ProjectsClient
	languages    poeditor.LanguagesClient
	terms        poeditor.TermsClient
	translations poeditor.TranslationsClient
	contributors poeditor.ContributorsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *poeditor.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new POEditor API client.
func New(config *poeditor.Config) (*Client, error) {
	if config.APIToken == "" {
		return nil, poeditor.ErrAPITokenRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.APIToken, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Projects implements poeditor.Client.Projects.
func (c *Client) Projects() poeditor.ProjectsClient {
	return c.projects
}

// Languages implements poeditor.Client.Languages.
func (c *Client) Languages() poeditor.LanguagesClient {
	return c.languages
}

// Terms implements poeditor.Client.Terms.
func (c *Client) Terms() poeditor.TermsClient {
	return c.terms
}

// Translations implements poeditor.Client.Translations.
func (c *Client) Translations() poeditor.TranslationsClient {
	return c.translations
}

// Contributors implements poeditor.Client.Contributors.
func (c *Client) Contributors() poeditor.ContributorsClient {
	return c.contributors
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.languages = NewLanguagesClient(c.httpClient)
	c.terms = NewTermsClient(c.httpClient)
	c.translations = NewTranslationsClient(c.httpClient)
	c.contributors = NewContributorsClient(c.httpClient)
}
