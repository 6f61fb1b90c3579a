package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localizehq/poeditor-go/internal/client"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

func TestContributorsList(t *testing.T) {
	t.Parallel()
	t.Run("account wide", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{
			"contributors": [
				{
					"name": "Jane Doe",
					"email": "jane@example.com",
					"permissions": [
						{"project": {"id": "12345", "name": "Website"}, "type": "administrator", "proofreader": false}
					]
				}
			]
		}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		list, err := contributors.List(context.Background(), 0, "")
		require.NoError(t, err)

		assert.Equal(t, "/contributors/list", captured.Path)
		assert.False(t, captured.Form.Has("id"))
		assert.False(t, captured.Form.Has("language"))

		require.Len(t, list, 1)
		assert.Equal(t, "jane@example.com", list[0].Email)
		require.Len(t, list[0].Permissions, 1)
		assert.Equal(t, "administrator", list[0].Permissions[0].Type)
		assert.Equal(t, poeditor.Int(12345), list[0].Permissions[0].Project.ID)
	})

	t.Run("scoped to project and language", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{
			"contributors": [
				{
					"name": "John Doe",
					"email": "john@example.com",
					"permissions": [
						{"project": {"id": 12345, "name": "Website"}, "type": "contributor", "proofreader": true, "languages": ["fr"]}
					]
				}
			]
		}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		list, err := contributors.List(context.Background(), 12345, "fr")
		require.NoError(t, err)

		assert.Equal(t, "12345", captured.Form.Get("id"))
		assert.Equal(t, "fr", captured.Form.Get("language"))

		require.Len(t, list, 1)
		assert.True(t, bool(list[0].Permissions[0].Proofreader))
		assert.Equal(t, []string{"fr"}, list[0].Permissions[0].Languages)
	})
}

func TestContributorsAdd(t *testing.T) {
	t.Parallel()
	t.Run("regular contributor needs a language", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		err := contributors.Add(context.Background(), &poeditor.ContributorAddRequest{
			ProjectID: 12345,
			Name:      "John Doe",
			Email:     "john@example.com",
			Language:  "fr",
		})
		require.NoError(t, err)

		assert.Equal(t, "/contributors/add", captured.Path)
		assert.Equal(t, "fr", captured.Form.Get("language"))
		assert.False(t, captured.Form.Has("admin"))
	})

	t.Run("administrator is project wide", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		err := contributors.Add(context.Background(), &poeditor.ContributorAddRequest{
			ProjectID: 12345,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			Language:  "fr",
			Admin:     true,
		})
		require.NoError(t, err)

		assert.Equal(t, "1", captured.Form.Get("admin"))
		assert.False(t, captured.Form.Has("language"))
	})
}

func TestContributorsRemove(t *testing.T) {
	t.Parallel()
	t.Run("from one language", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		err := contributors.Remove(context.Background(), 12345, "john@example.com", "fr")
		require.NoError(t, err)

		assert.Equal(t, "/contributors/remove", captured.Path)
		assert.Equal(t, "john@example.com", captured.Form.Get("email"))
		assert.Equal(t, "fr", captured.Form.Get("language"))
	})

	t.Run("from the whole project", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)

		contributors := client.NewContributorsClient(newHTTPClient(server))

		err := contributors.Remove(context.Background(), 12345, "john@example.com", "")
		require.NoError(t, err)
		assert.False(t, captured.Form.Has("language"))
	})
}
