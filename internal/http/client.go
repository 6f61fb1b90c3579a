// Package http implements the POEditor request executor: authenticated
// form-encoded and multipart POSTs, envelope normalization, and the
// streaming download leg used by exports.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/localizehq/poeditor-go/internal/constants"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// Form field names with fixed meaning on the wire.
const (
	// TokenField carries the API token on every request.
	TokenField = "api_token"

	// FileField is the multipart part name for uploaded files.
	FileField = "file"
)

// Response is a normalized successful API response: the envelope's status
// block plus the raw result payload for per-endpoint decoding.
type Response struct {
	StatusCode int
	Status     poeditor.ResponseStatus
	Result     json.RawMessage
}

// Client executes POEditor API requests. The API accepts only
// form-urlencoded and multipart bodies, never JSON.
type Client struct {
	baseURL        string
	apiToken       string
	httpClient     *http.Client
	downloadClient *http.Client
	logger         poeditor.Logger
	debug          bool
	userAgent      string
	timeout        time.Duration
	retryMax       int
	retryWaitMin   time.Duration
	retryWaitMax   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger poeditor.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the transport-level request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying transport entirely. Timeout and
// retry options are ignored when set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryConfig opts into retrying transient transport failures (5xx
// and connection errors). The default client performs no retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// NewClient creates a request executor for the given base URL and token.
func NewClient(baseURL, apiToken string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiToken:     apiToken,
		timeout:      constants.DefaultHTTPTimeout,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		if client.retryMax > 0 {
			retryClient := retryablehttp.NewClient()
			retryClient.RetryMax = client.retryMax
			retryClient.RetryWaitMin = client.retryWaitMin
			retryClient.RetryWaitMax = client.retryWaitMax
			retryClient.HTTPClient.Timeout = client.timeout
			retryClient.Logger = nil
			client.httpClient = retryClient.StandardClient()
		} else {
			client.httpClient = &http.Client{Timeout: client.timeout}
		}
	}

	// Separate client for the download leg: export files can be large and
	// the regular request timeout would cut long transfers short.
	client.downloadClient = &http.Client{
		Timeout:   constants.DownloadHTTPTimeout,
		Transport: client.httpClient.Transport,
	}

	return client
}

// PostForm sends a form-urlencoded POST to path with the API token merged
// into fields.
func (c *Client) PostForm(ctx context.Context, path string, fields url.Values) (*Response, error) {
	body := c.withToken(fields).Encode()

	return c.do(ctx, path, "application/x-www-form-urlencoded", strings.NewReader(body))
}

// PostMultipart sends a multipart POST to path: fields as ordinary parts,
// file as the "file" part. The API token is merged into fields.
func (c *Client) PostMultipart(ctx context.Context, path, filename string, fields url.Values, file io.Reader) (*Response, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for key, values := range c.withToken(fields) {
		for _, value := range values {
			err := writer.WriteField(key, value)
			if err != nil {
				return nil, fmt.Errorf("writing form field %q: %w", key, err)
			}
		}
	}

	part, err := writer.CreateFormFile(FileField, filename)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	return c.do(ctx, path, writer.FormDataContentType(), &buf)
}

// Download fetches fileURL with a plain unauthenticated GET and streams
// the body to dst through a fixed-size buffer, so arbitrarily large
// exports never live in memory at once.
func (c *Client) Download(ctx context.Context, fileURL string, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    fileURL,
		})
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading file: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &poeditor.APIError{
			Code:    resp.StatusCode,
			Status:  "fail",
			Message: http.StatusText(resp.StatusCode),
		}
	}

	buf := make([]byte, constants.DownloadChunkSize)

	_, err = io.CopyBuffer(dst, onlyReader{resp.Body}, buf)
	if err != nil {
		return fmt.Errorf("streaming download: %w", err)
	}

	return nil
}

// onlyReader hides any WriterTo/ReaderFrom the body might implement so
// io.CopyBuffer actually uses the fixed-size buffer.
type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p) //nolint:wrapcheck // transparent passthrough
}

func (c *Client) withToken(fields url.Values) url.Values {
	merged := url.Values{}

	for key, values := range fields {
		merged[key] = values
	}

	merged.Set(TokenField, c.apiToken)

	return merged
}

func (c *Client) do(ctx context.Context, path, contentType string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodPost,
			"path":   path,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		})
	}

	if resp.StatusCode != http.StatusOK {
		return &Response{StatusCode: resp.StatusCode}, &poeditor.APIError{
			Code:    resp.StatusCode,
			Status:  "fail",
			Message: http.StatusText(resp.StatusCode),
		}
	}

	var envelope poeditor.Envelope

	err = json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	if envelope.Response == nil {
		return &Response{StatusCode: resp.StatusCode}, &poeditor.APIError{
			Code:    poeditor.ErrorCodeMissingEnvelope,
			Status:  "fail",
			Message: `"response" key is not present`,
		}
	}

	if envelope.Response.Status != poeditor.SuccessStatus {
		return &Response{StatusCode: resp.StatusCode}, &poeditor.APIError{
			Code:    parseCode(envelope.Response.Code),
			Status:  envelope.Response.Status,
			Message: envelope.Response.Message,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     *envelope.Response,
		Result:     envelope.Result,
	}, nil
}

// parseCode converts the envelope's string code to an int. Unparsable
// codes collapse to -1 rather than masking the failure.
func parseCode(code string) int {
	parsed, err := strconv.Atoi(code)
	if err != nil {
		return poeditor.ErrorCodeMissingEnvelope
	}

	return parsed
}
