package http_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pohttp "github.com/localizehq/poeditor-go/internal/http"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

const successEnvelope = `{
	"response": {"status": "success", "code": "200", "message": "OK"},
	"result": {"projects": []}
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_PostForm(t *testing.T) {
	t.Parallel()
	t.Run("merges token and sends form-urlencoded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/list", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "test-token", request.PostFormValue("api_token"))
			assert.Equal(t, "42", request.PostFormValue("id"))

			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		fields := url.Values{}
		fields.Set("id", "42")

		resp, err := client.PostForm(context.Background(), "/projects/list", fields)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "success", resp.Status.Status)
		assert.JSONEq(t, `{"projects": []}`, string(resp.Result))
	})

	t.Run("caller fields never clobber the token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "real-token", request.PostFormValue("api_token"))
			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "real-token")

		fields := url.Values{}
		fields.Set("api_token", "spoofed")

		_, err := client.PostForm(context.Background(), "/projects/list", fields)
		require.NoError(t, err)
	})

	t.Run("non-200 status becomes APIError with HTTP code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.Error(t, err)

		apiErr := &poeditor.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Code)
		assert.Equal(t, "fail", apiErr.Status)
		assert.Equal(t, "Service Unavailable", apiErr.Message)
	})

	t.Run("missing response key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"result": {}}`))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.Error(t, err)

		apiErr := &poeditor.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, -1, apiErr.Code)
		assert.Equal(t, `"response" key is not present`, apiErr.Message)
	})

	t.Run("fail envelope carries server fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{
				"response": {"status": "fail", "code": "4011", "message": "Invalid API Token"}
			}`))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "bad-token")

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.Error(t, err)

		apiErr := &poeditor.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 4011, apiErr.Code)
		assert.Equal(t, "fail", apiErr.Status)
		assert.Equal(t, "Invalid API Token", apiErr.Message)
		assert.True(t, poeditor.IsInvalidToken(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing response envelope")
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := pohttp.NewClient(server.URL, "test-token", pohttp.WithLogger(logger), pohttp.WithDebug(true))

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-tool/1.0", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token", pohttp.WithUserAgent("my-tool/1.0"))

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.NoError(t, err)
	})
}

func TestClient_PostMultipart(t *testing.T) {
	t.Parallel()
	t.Run("sends file part and form fields", func(t *testing.T) {
		t.Parallel()

		fileContent := []byte("msgid \"hello\"\nmsgstr \"bonjour\"\n")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

			require.NoError(t, request.ParseMultipartForm(1<<20))
			assert.Equal(t, "test-token", request.FormValue("api_token"))
			assert.Equal(t, "terms", request.FormValue("updating"))

			file, header, err := request.FormFile("file")
			require.NoError(t, err)

			defer func() {
				_ = file.Close()
			}()

			assert.Equal(t, "strings.po", header.Filename)

			var buf bytes.Buffer

			_, err = buf.ReadFrom(file)
			require.NoError(t, err)
			assert.Equal(t, fileContent, buf.Bytes())

			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		fields := url.Values{}
		fields.Set("updating", "terms")

		resp, err := client.PostMultipart(context.Background(), "/projects/upload", "strings.po", fields, bytes.NewReader(fileContent))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

// chunkRecorder records the size of every Write it receives.
type chunkRecorder struct {
	writes []int
	total  int
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, len(p))
	r.total += len(p)

	return len(p), nil
}

func TestClient_Download(t *testing.T) {
	t.Parallel()
	t.Run("streams large payloads in bounded chunks", func(t *testing.T) {
		t.Parallel()

		payload := make([]byte, 1<<20) // 1 MiB

		_, err := rand.Read(payload)
		require.NoError(t, err)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "GET", request.Method)
			// The download leg is unauthenticated.
			assert.Empty(t, request.Header.Get("Authorization"))
			_, _ = writer.Write(payload)
		}))
		defer server.Close()

		client := pohttp.NewClient("https://api.example.com", "test-token")

		recorder := &chunkRecorder{}

		err = client.Download(context.Background(), server.URL+"/export/file.po", recorder)
		require.NoError(t, err)
		assert.Equal(t, len(payload), recorder.total)

		for _, size := range recorder.writes {
			assert.LessOrEqual(t, size, 32*1024)
		}
	})

	t.Run("non-200 download fails with APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := pohttp.NewClient("https://api.example.com", "test-token")

		err := client.Download(context.Background(), server.URL+"/gone", &bytes.Buffer{})
		require.Error(t, err)

		apiErr := &poeditor.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})
}

func TestClient_RetryConfig(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token")

		_, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("opt-in retry on 5xx", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			_, _ = writer.Write([]byte(successEnvelope))
		}))
		defer server.Close()

		client := pohttp.NewClient(server.URL, "test-token",
			pohttp.WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

		resp, err := client.PostForm(context.Background(), "/projects/list", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})
}

func TestClient_BaseURLNormalization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/list", request.URL.Path)
		assert.False(t, strings.Contains(request.URL.Path, "//"))
		_, _ = writer.Write([]byte(successEnvelope))
	}))
	defer server.Close()

	client := pohttp.NewClient(server.URL+"/", "test-token")

	_, err := client.PostForm(context.Background(), "/projects/list", nil)
	require.NoError(t, err)
}
