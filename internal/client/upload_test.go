package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localizehq/poeditor-go/internal/client"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

func writeUploadFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "strings.po")
	require.NoError(t, os.WriteFile(path, []byte("msgid \"hello\"\nmsgstr \"bonjour\"\n"), 0600))

	return path
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectsUpload(t *testing.T) {
	t.Parallel()
	t.Run("invalid updating mode fails before any request", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)
		projects := client.NewProjectsClient(newHTTPClient(server))

		_, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID: 12345,
			Updating:  "definitions",
			FilePath:  writeUploadFixture(t),
		})
		require.Error(t, err)

		argsErr := &poeditor.ArgsError{}
		require.ErrorAs(t, err, &argsErr)
		assert.Equal(t, 0, captured.Hits)
	})

	t.Run("language required unless updating terms", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)
		projects := client.NewProjectsClient(newHTTPClient(server))

		_, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID: 12345,
			Updating:  poeditor.UpdatingTermsTranslations,
			FilePath:  writeUploadFixture(t),
		})
		require.Error(t, err)

		argsErr := &poeditor.ArgsError{}
		require.ErrorAs(t, err, &argsErr)
		assert.Contains(t, err.Error(), "language is required")
		assert.Equal(t, 0, captured.Hits)
	})

	t.Run("file path required", func(t *testing.T) {
		t.Parallel()

		server, captured := serveResult(t, `{}`)
		projects := client.NewProjectsClient(newHTTPClient(server))

		_, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID: 12345,
			Updating:  poeditor.UpdatingTerms,
		})
		require.Error(t, err)

		argsErr := &poeditor.ArgsError{}
		require.ErrorAs(t, err, &argsErr)
		assert.Equal(t, 0, captured.Hits)
	})

	t.Run("sends multipart with all fields", func(t *testing.T) {
		t.Parallel()

		var (
			form     map[string]string
			filename string
		)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseMultipartForm(1<<20))

			form = map[string]string{}
			for key := range request.MultipartForm.Value {
				form[key] = request.FormValue(key)
			}

			_, header, err := request.FormFile("file")
			require.NoError(t, err)

			filename = header.Filename

			_, _ = writer.Write([]byte(`{
				"response": {"status": "success", "code": "200", "message": "OK"},
				"result": {
					"terms": {"parsed": 2, "added": 2, "updated": 0, "deleted": 0},
					"translations": {"parsed": 2, "added": 1, "updated": 1, "deleted": 0}
				}
			}`))
		}))
		t.Cleanup(server.Close)

		projects := client.NewProjectsClient(newHTTPClient(server))

		result, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID:    12345,
			Updating:     poeditor.UpdatingTermsTranslations,
			FilePath:     writeUploadFixture(t),
			Language:     "fr",
			Overwrite:    true,
			SyncTerms:    true,
			Tags:         []string{"imported"},
			FuzzyTrigger: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "strings.po", filename)
		assert.Equal(t, "test-token", form["api_token"])
		assert.Equal(t, "12345", form["id"])
		assert.Equal(t, "terms_translations", form["updating"])
		assert.Equal(t, "fr", form["language"])
		assert.Equal(t, "1", form["overwrite"])
		assert.Equal(t, "1", form["sync_terms"])
		assert.Equal(t, "1", form["fuzzy_trigger"])
		assert.JSONEq(t, `["imported"]`, form["tags"])

		require.NotNil(t, result.Terms)
		require.NotNil(t, result.Translations)
		assert.Equal(t, poeditor.Int(2), result.Terms.Added)
		assert.Equal(t, poeditor.Int(1), result.Translations.Updated)
	})

	t.Run("translations mode drops tags and term syncing", func(t *testing.T) {
		t.Parallel()

		var form map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseMultipartForm(1<<20))

			form = map[string]string{}
			for key := range request.MultipartForm.Value {
				form[key] = request.FormValue(key)
			}

			_, _ = writer.Write([]byte(`{
				"response": {"status": "success", "code": "200", "message": "OK"},
				"result": {"translations": {"parsed": 1, "added": 1, "updated": 0, "deleted": 0}}
			}`))
		}))
		t.Cleanup(server.Close)

		projects := client.NewProjectsClient(newHTTPClient(server))

		result, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID: 12345,
			Updating:  poeditor.UpdatingTranslations,
			FilePath:  writeUploadFixture(t),
			Language:  "fr",
			SyncTerms: true,
			Tags:      []string{"ignored"},
		})
		require.NoError(t, err)

		_, hasTags := form["tags"]
		assert.False(t, hasTags)
		assert.Equal(t, "0", form["sync_terms"])

		assert.Nil(t, result.Terms)
		require.NotNil(t, result.Translations)
		assert.Equal(t, poeditor.Int(1), result.Translations.Added)
	})

	t.Run("rate limit error surfaces", func(t *testing.T) {
		t.Parallel()

		server, _ := serveFailure(t, "4048", "Too many upload requests in a short period of time")

		projects := client.NewProjectsClient(newHTTPClient(server))

		_, err := projects.Upload(context.Background(), &poeditor.UploadRequest{
			ProjectID: 12345,
			Updating:  poeditor.UpdatingTerms,
			FilePath:  writeUploadFixture(t),
		})
		require.Error(t, err)
		assert.True(t, poeditor.IsTooManyUploads(err))
	})
}
