package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localizehq/poeditor-go/internal/client"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires an API token", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&poeditor.Config{})
		require.ErrorIs(t, err, poeditor.ErrAPITokenRequired)
	})

	t.Run("wires every resource client", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&poeditor.Config{APIToken: "test-token"})
		require.NoError(t, err)

		assert.NotNil(t, apiClient.Projects())
		assert.NotNil(t, apiClient.Languages())
		assert.NotNil(t, apiClient.Terms())
		assert.NotNil(t, apiClient.Translations())
		assert.NotNil(t, apiClient.Contributors())
	})
}
