package poeditor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the timestamp format used by the POEditor API,
// e.g. "2023-01-01T00:00:00+0000".
const TimestampLayout = "2006-01-02T15:04:05-0700"

// Timestamp wraps time.Time with the API's timestamp format. An empty
// string decodes to the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}

	if s == "" {
		t.Time = time.Time{}

		return nil
	}

	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}

	t.Time = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}

	return json.Marshal(t.Format(TimestampLayout))
}

// Flag is a boolean that tolerates the API's mixed encodings: 0, 1, "0",
// "1", true, and false all decode. It always encodes as 0 or 1, which is
// the form the API expects on write.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)

	switch string(trimmed) {
	case "", "0", "false", "null":
		*f = false
	case "1", "true":
		*f = true
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFlagValue, data)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}

	return []byte("0"), nil
}

// Int is an integer that tolerates numeric strings, which the API emits
// in some list responses.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*i = 0

		return nil
	}

	parsed, err := strconv.Atoi(string(trimmed))
	if err != nil {
		return fmt.Errorf("parsing integer %s: %w", data, err)
	}

	*i = Int(parsed)

	return nil
}

// TagList is a list of tags that also accepts a single bare string, which
// the API treats as a one-element list.
type TagList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *TagList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string

		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("parsing tag: %w", err)
		}

		*l = TagList{s}

		return nil
	}

	var list []string

	err := json.Unmarshal(data, &list)
	if err != nil {
		return fmt.Errorf("parsing tag list: %w", err)
	}

	*l = list

	return nil
}

// Project represents a POEditor project. List responses carry only the
// core fields; Description, ReferenceLanguage, and Terms are present on
// detail responses only.
type Project struct {
	ID                Int       `json:"id"                           yaml:"id"`
	Name              string    `json:"name"                         yaml:"name"`
	Description       string    `json:"description,omitempty"        yaml:"description,omitempty"`
	Public            Flag      `json:"public"                       yaml:"public"`
	Open              Flag      `json:"open"                         yaml:"open"`
	ReferenceLanguage string    `json:"reference_language,omitempty" yaml:"reference_language,omitempty"`
	Terms             Int       `json:"terms,omitempty"              yaml:"terms,omitempty"`
	Created           Timestamp `json:"created"                      yaml:"created"`
}

// AvailableLanguage is one entry from the global language catalog.
type AvailableLanguage struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// Language represents a language assigned to a project, with translation
// progress.
type Language struct {
	Name         string    `json:"name"         yaml:"name"`
	Code         string    `json:"code"         yaml:"code"`
	Translations Int       `json:"translations" yaml:"translations"`
	Percentage   float64   `json:"percentage"   yaml:"percentage"`
	Updated      Timestamp `json:"updated"      yaml:"updated"`
}

// Term represents a translatable term. The (Term, Context) pair is the
// term's identity within a project.
type Term struct {
	Term      string           `json:"term"                  yaml:"term"`
	Context   string           `json:"context"               yaml:"context"`
	Plural    string           `json:"plural,omitempty"      yaml:"plural,omitempty"`
	Reference string           `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Comment   string           `json:"comment,omitempty"     yaml:"comment,omitempty"`
	Tags      TagList   `json:"tags,omitempty"      yaml:"tags,omitempty"`
	Created   Timestamp `json:"created,omitzero"    yaml:"created,omitempty"`
	Updated   Timestamp `json:"updated,omitzero"    yaml:"updated,omitempty"`
	Obsolete  Flag      `json:"obsolete,omitempty"  yaml:"obsolete,omitempty"`

	// Translation is set only on language-scoped terms listings.
	Translation *TermTranslation `json:"translation,omitempty" yaml:"translation,omitempty"`
}

// TermTranslation is the translation attached to a term in a language-
// scoped terms listing.
type TermTranslation struct {
	Content string    `json:"content"           yaml:"content"`
	Fuzzy   Flag      `json:"fuzzy"             yaml:"fuzzy"`
	Updated Timestamp `json:"updated,omitzero"  yaml:"updated,omitempty"`
}

// TermKey addresses a single term for delete and comment operations.
type TermKey struct {
	Term    string `json:"term"    yaml:"term"`
	Context string `json:"context" yaml:"context"`
}

// TermUpdate renames or edits an existing term. NewTerm/NewContext are
// only sent when the term identity itself changes.
type TermUpdate struct {
	Term       string  `json:"term"                  yaml:"term"`
	Context    string  `json:"context"               yaml:"context"`
	NewTerm    string  `json:"new_term,omitempty"    yaml:"new_term,omitempty"`
	NewContext string  `json:"new_context,omitempty" yaml:"new_context,omitempty"`
	Reference  string  `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Plural     string  `json:"plural,omitempty"      yaml:"plural,omitempty"`
	Tags       TagList `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// TermComment attaches a comment to a term.
type TermComment struct {
	Term    string `json:"term"    yaml:"term"`
	Context string `json:"context" yaml:"context"`
	Comment string `json:"comment" yaml:"comment"`
}

// TranslationContent is the target-language rendering of a term. Fuzzy
// marks the translation as needing review.
type TranslationContent struct {
	Content string `json:"content" yaml:"content"`
	Fuzzy   Flag   `json:"fuzzy"   yaml:"fuzzy"`
}

// TranslationUpdate upserts one translation, addressed by term identity.
type TranslationUpdate struct {
	Term        string             `json:"term"        yaml:"term"`
	Context     string             `json:"context"     yaml:"context"`
	Translation TranslationContent `json:"translation" yaml:"translation"`
}

// ContributorPermission describes a contributor's role on one project.
type ContributorPermission struct {
	Project     ContributorProject `json:"project"              yaml:"project"`
	Type        string             `json:"type"                 yaml:"type"`
	Proofreader Flag               `json:"proofreader"          yaml:"proofreader"`
	Languages   []string           `json:"languages,omitempty"  yaml:"languages,omitempty"`
}

// ContributorProject identifies the project a permission applies to.
type ContributorProject struct {
	ID   Int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Contributor represents a project contributor or administrator.
// Administrators have no language scope.
type Contributor struct {
	Name        string                  `json:"name"                  yaml:"name"`
	Email       string                  `json:"email"                 yaml:"email"`
	Permissions []ContributorPermission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// ContributorAddRequest adds a contributor to a project language, or an
// administrator to a project when Admin is set (Language is ignored for
// administrators).
type ContributorAddRequest struct {
	ProjectID int
	Name      string
	Email     string
	Language  string
	Admin     bool
}

// UploadCounters reports the effect of a bulk terms/translations
// mutation. Fields not applicable to the operation are zero.
type UploadCounters struct {
	Parsed  Int `json:"parsed"  yaml:"parsed"`
	Added   Int `json:"added"   yaml:"added"`
	Updated Int `json:"updated" yaml:"updated"`
	Deleted Int `json:"deleted" yaml:"deleted"`
}

// UploadResult is the outcome of a file upload. Which blocks are present
// depends on the updating mode: terms-only uploads carry Terms,
// translations-only uploads carry Translations, combined uploads carry
// both.
type UploadResult struct {
	Terms        *UploadCounters `json:"terms,omitempty"        yaml:"terms,omitempty"`
	Translations *UploadCounters `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// ProjectUpdateRequest edits project settings. Nil fields are left
// untouched. Setting ReferenceLanguage to an empty non-nil string clears
// the reference language.
type ProjectUpdateRequest struct {
	Name              *string
	Description       *string
	ReferenceLanguage *string
}

// FileType is an export/import file format.
type FileType string

// Supported file formats.
const (
	FileTypePO             FileType = "po"
	FileTypePOT            FileType = "pot"
	FileTypeMO             FileType = "mo"
	FileTypeXLS            FileType = "xls"
	FileTypeXLSX           FileType = "xlsx"
	FileTypeCSV            FileType = "csv"
	FileTypeINI            FileType = "ini"
	FileTypeRESW           FileType = "resw"
	FileTypeRESX           FileType = "resx"
	FileTypeAndroidStrings FileType = "android_strings"
	FileTypeAppleStrings   FileType = "apple_strings"
	FileTypeXLIFF          FileType = "xliff"
	FileTypeProperties     FileType = "properties"
	FileTypeKeyValueJSON   FileType = "key_value_json"
	FileTypeJSON           FileType = "json"
	FileTypeYML            FileType = "yml"
	FileTypeXLF            FileType = "xlf"
	FileTypeXMB            FileType = "xmb"
	FileTypeXTB            FileType = "xtb"
	FileTypeARB            FileType = "arb"
)

// FileTypes lists every supported file format.
var FileTypes = []FileType{
	FileTypePO, FileTypePOT, FileTypeMO, FileTypeXLS, FileTypeXLSX,
	FileTypeCSV, FileTypeINI, FileTypeRESW, FileTypeRESX,
	FileTypeAndroidStrings, FileTypeAppleStrings, FileTypeXLIFF,
	FileTypeProperties, FileTypeKeyValueJSON, FileTypeJSON, FileTypeYML,
	FileTypeXLF, FileTypeXMB, FileTypeXTB, FileTypeARB,
}

// Valid reports whether t is a supported file format.
func (t FileType) Valid() bool {
	for _, known := range FileTypes {
		if t == known {
			return true
		}
	}

	return false
}

// ExportFilter restricts which terms an export includes.
type ExportFilter string

// Supported export filters.
const (
	FilterTranslated   ExportFilter = "translated"
	FilterUntranslated ExportFilter = "untranslated"
	FilterFuzzy        ExportFilter = "fuzzy"
	FilterNotFuzzy     ExportFilter = "not_fuzzy"
	FilterAutomatic    ExportFilter = "automatic"
	FilterNotAutomatic ExportFilter = "not_automatic"
	FilterProofread    ExportFilter = "proofread"
	FilterNotProofread ExportFilter = "not_proofread"
)

// ExportFilters lists every supported export filter.
var ExportFilters = []ExportFilter{
	FilterTranslated, FilterUntranslated, FilterFuzzy, FilterNotFuzzy,
	FilterAutomatic, FilterNotAutomatic, FilterProofread, FilterNotProofread,
}

// Valid reports whether f is a supported export filter.
func (f ExportFilter) Valid() bool {
	for _, known := range ExportFilters {
		if f == known {
			return true
		}
	}

	return false
}

// UploadUpdating selects what an upload mutates.
type UploadUpdating string

// Upload modes.
const (
	// UpdatingTerms imports terms only; no language is involved.
	UpdatingTerms UploadUpdating = "terms"
	// UpdatingTermsTranslations imports terms and their translations for
	// one language.
	UpdatingTermsTranslations UploadUpdating = "terms_translations"
	// UpdatingTranslations imports translations only for one language;
	// tags and term syncing do not apply in this mode.
	UpdatingTranslations UploadUpdating = "translations"
)

// UploadUpdatingModes lists every upload mode.
var UploadUpdatingModes = []UploadUpdating{
	UpdatingTerms, UpdatingTermsTranslations, UpdatingTranslations,
}

// Valid reports whether u is a supported upload mode.
func (u UploadUpdating) Valid() bool {
	for _, known := range UploadUpdatingModes {
		if u == known {
			return true
		}
	}

	return false
}

// ExportRequest describes a project export.
type ExportRequest struct {
	ProjectID int
	Language  string
	FileType  FileType
	// Filters restricts the exported terms; every entry must be a known
	// ExportFilter.
	Filters []ExportFilter
	// Tags restricts the exported terms to those carrying any of the tags.
	Tags []string
	// OrderByTerms sorts the exported file by term, where the format
	// supports ordering.
	OrderByTerms bool
	// LocalPath is where the downloaded file is written. When empty a
	// uniquely named temp file with the file type as suffix is created.
	LocalPath string
}

// ExportResult is the outcome of an export: the short-lived remote URL
// (documented to expire after 10 minutes) and the local path the file was
// written to.
type ExportResult struct {
	URL       string `json:"url"        yaml:"url"`
	LocalPath string `json:"local_path" yaml:"local_path"`
}

// UploadRequest describes a file upload. The API accepts no more than one
// upload every MinUploadInterval; honoring that is the caller's
// responsibility.
type UploadRequest struct {
	ProjectID int
	Updating  UploadUpdating
	// FilePath is the local file to upload, opened in binary mode and
	// sent as the multipart "file" part.
	FilePath string
	// Language is required unless Updating is UpdatingTerms.
	Language string
	// Overwrite replaces existing translations with the uploaded ones.
	Overwrite bool
	// SyncTerms deletes project terms absent from the uploaded file.
	// Ignored when Updating is UpdatingTranslations.
	SyncTerms bool
	// Tags are applied to the imported terms. Ignored when Updating is
	// UpdatingTranslations.
	Tags []string
	// FuzzyTrigger marks other-language translations of updated terms as
	// fuzzy.
	FuzzyTrigger bool
}
