package client_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	pohttp "github.com/localizehq/poeditor-go/internal/http"
)

// capturedRequest records what the fake API server received.
type capturedRequest struct {
	Path   string
	Form   url.Values
	Hits   int
	Method string
}

// serveResult starts a fake POEditor endpoint that answers every POST
// with a success envelope wrapping result, recording the submitted form.
func serveResult(t *testing.T, result string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseForm())

		captured.Path = request.URL.Path
		captured.Form = request.PostForm
		captured.Method = request.Method
		captured.Hits++

		fmt.Fprintf(writer, `{"response": {"status": "success", "code": "200", "message": "OK"}, "result": %s}`, result)
	}))
	t.Cleanup(server.Close)

	return server, captured
}

// serveFailure starts a fake endpoint that always answers with a fail
// envelope carrying the given code and message.
func serveFailure(t *testing.T, code, message string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured.Hits++

		fmt.Fprintf(writer, `{"response": {"status": "fail", "code": %q, "message": %q}}`, code, message)
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func newHTTPClient(server *httptest.Server) *pohttp.Client {
	return pohttp.NewClient(server.URL, "test-token")
}
