package constants

import "time"

// API endpoint.
const (
	// DefaultAPIEndpoint is the public POEditor API v2 base URL.
	DefaultAPIEndpoint = "https://api.poeditor.com/v2"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DownloadHTTPTimeout is used for the export download leg, which can
	// carry large files.
	DownloadHTTPTimeout = 5 * time.Minute
)

// Retry limits, applied only when a caller opts into retrying.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Streaming.
const (
	// DownloadChunkSize is the copy buffer size for streaming export
	// downloads to disk.
	DownloadChunkSize = 32 * 1024
)
