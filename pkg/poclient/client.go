// Package poclient provides the main entry point for creating POEditor
// API clients.
package poclient

import (
	"fmt"
	"strings"

	"github.com/localizehq/poeditor-go/internal/client"
	"github.com/localizehq/poeditor-go/internal/constants"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// New creates a new POEditor API client from config.
func New(config *poeditor.Config) (poeditor.Client, error) {
	if config == nil {
		return nil, poeditor.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, poeditor.ErrAPITokenRequired
	}

	if config.APIEndpoint != "" {
		// Normalize the endpoint the same way for every caller.
		endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.APIEndpoint = endpoint
	} else {
		config.APIEndpoint = constants.DefaultAPIEndpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with just an API token, targeting the
// public endpoint.
func NewWithToken(token string) (poeditor.Client, error) {
	return New(&poeditor.Config{
		APIToken: token,
	})
}
