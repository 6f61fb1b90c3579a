package poeditor

import (
	"errors"
	"fmt"
)

// APIError represents a failure reported by the POEditor API, either at
// the HTTP level (Code is the HTTP status) or inside the response
// envelope (Code is the server's own error code).
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Status  string `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("status '%s', code %d: %s", e.Status, e.Code, e.Message)
}

// ArgsError reports invalid arguments detected before any network call.
type ArgsError struct {
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ArgsError) Error() string {
	return e.Message
}

// NewArgsError builds an ArgsError with a formatted message.
func NewArgsError(format string, args ...interface{}) *ArgsError {
	return &ArgsError{Message: fmt.Sprintf(format, args...)}
}

// Server error codes documented by POEditor.
const (
	ErrorCodeInvalidToken      = 4011
	ErrorCodePermissionDenied  = 4012
	ErrorCodeProjectNotFound   = 4013
	ErrorCodeLanguageNotFound  = 4014
	ErrorCodeTooManyUploads    = 4048
	ErrorCodeMissingEnvelope   = -1
)

// Static errors that can be wrapped with context.
var (
	ErrAPITokenRequired  = errors.New("API token is required")
	ErrConfigRequired    = errors.New("config is required")
	ErrInvalidFlagValue  = errors.New("invalid flag value")
	ErrEmptyExportURL    = errors.New("export response carried no file URL")
	ErrFilePathRequired  = errors.New("file path is required")
	ErrProjectIDRequired = errors.New("project id is required")
)

// IsInvalidToken checks if the error is an invalid-API-token error.
func IsInvalidToken(err error) bool {
	return hasCode(err, ErrorCodeInvalidToken)
}

// IsPermissionDenied checks if the error is a permission error.
func IsPermissionDenied(err error) bool {
	return hasCode(err, ErrorCodePermissionDenied)
}

// IsNotFound checks if the error reports a missing project or language.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeProjectNotFound) || hasCode(err, ErrorCodeLanguageNotFound)
}

// IsTooManyUploads checks if the error is the upload rate limit; callers
// hitting it should wait MinUploadInterval before the next upload.
func IsTooManyUploads(err error) bool {
	return hasCode(err, ErrorCodeTooManyUploads)
}

func hasCode(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}
