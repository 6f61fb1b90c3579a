package poeditor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// SuccessStatus is the envelope status value reported on success.
const SuccessStatus = "success"

// MinUploadInterval is the documented minimum interval between upload
// calls. The client does not enforce it; callers spacing their uploads
// closer than this should expect ErrorCodeTooManyUploads responses.
const MinUploadInterval = 30 * time.Second

// ResponseStatus is the status block present in every API response
// envelope. Code is transmitted as a string by the API.
type ResponseStatus struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the outer structure wrapping every API response: a status
// block plus the operation's payload under "result".
type Envelope struct {
	Response *ResponseStatus `json:"response"`
	Result   json.RawMessage `json:"result"`
}

// ProjectsClient manages projects, including file export/import.
type ProjectsClient interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, projectID int) (*Project, error)
	Create(ctx context.Context, name, description string) (*Project, error)
	Update(ctx context.Context, projectID int, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, projectID int) error
	// Sync reconciles the project's term set with terms: terms absent from
	// the list are deleted, new ones added. Destructive; counters report
	// the effect.
	Sync(ctx context.Context, projectID int, terms []Term) (*UploadCounters, error)
	// Export requests a file export and downloads it to a local path.
	Export(ctx context.Context, request *ExportRequest) (*ExportResult, error)
	// Upload imports terms and/or translations from a local file.
	Upload(ctx context.Context, request *UploadRequest) (*UploadResult, error)
}

// LanguagesClient manages project languages and bulk translation upserts.
type LanguagesClient interface {
	Available(ctx context.Context) ([]AvailableLanguage, error)
	List(ctx context.Context, projectID int) ([]Language, error)
	Add(ctx context.Context, projectID int, code string) error
	Delete(ctx context.Context, projectID int, code string) error
	// Update inserts or overwrites translations for one project language.
	Update(ctx context.Context, projectID int, code string, entries []TranslationUpdate, fuzzyTrigger bool) (*UploadCounters, error)
}

// TermsClient manages a project's term set.
type TermsClient interface {
	// List returns the project's terms; when language is non-empty each
	// term carries its translation for that language.
	List(ctx context.Context, projectID int, language string) ([]Term, error)
	Add(ctx context.Context, projectID int, terms []Term) (*UploadCounters, error)
	Update(ctx context.Context, projectID int, updates []TermUpdate, fuzzyTrigger bool) (*UploadCounters, error)
	Delete(ctx context.Context, projectID int, keys []TermKey) (*UploadCounters, error)
	AddComments(ctx context.Context, projectID int, comments []TermComment) (*UploadCounters, error)
}

// TranslationsClient manages individual translations for a project
// language.
type TranslationsClient interface {
	Add(ctx context.Context, projectID int, language string, entries []TranslationUpdate) (*UploadCounters, error)
	Update(ctx context.Context, projectID int, language string, entries []TranslationUpdate) (*UploadCounters, error)
	Delete(ctx context.Context, projectID int, language string, keys []TermKey) (*UploadCounters, error)
}

// ContributorsClient manages project contributors and administrators.
type ContributorsClient interface {
	// List returns contributors; projectID 0 lists across all projects,
	// language restricts to one language scope.
	List(ctx context.Context, projectID int, language string) ([]Contributor, error)
	Add(ctx context.Context, request *ContributorAddRequest) error
	Remove(ctx context.Context, projectID int, email, language string) error
}

// Client is the full POEditor API surface.
type Client interface {
	Projects() ProjectsClient
	Languages() LanguagesClient
	Terms() TermsClient
	Translations() TranslationsClient
	Contributors() ContributorsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a poeditor.Client.
//
// APIToken is the only required field; it is attached to every request as
// the api_token form field. Per-request deadlines should be controlled
// via the context passed to client methods; HTTPTimeout is a transport-
// level ceiling applied when no custom HTTPClient is supplied.
//
// Retries are disabled by default: every operation is a single round
// trip and failures surface immediately. Setting RetryMax > 0 opts into
// retrying transient transport failures (5xx, connection errors).
type Config struct {
	// APIToken authenticates every request. Found under
	// My Account > API Access in the POEditor dashboard.
	APIToken string

	// APIEndpoint overrides the base URL, mainly for tests. Defaults to
	// the public v2 endpoint.
	APIEndpoint string

	// HTTPClient overrides the underlying transport entirely. When set,
	// HTTPTimeout and the retry fields are ignored.
	HTTPClient *http.Client

	// HTTPTimeout is the transport-level request timeout. Zero means the
	// default timeout.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient transport
	// failures. Zero disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger receives structured log output. Nil disables logging.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
