// Package poeditor provides types, interfaces, and errors for working
// with the POEditor API (v2).
//
// # Overview
//
// The poeditor package defines the domain types (Project, Language, Term,
// TranslationUpdate, Contributor) and the interfaces for resource-oriented
// clients (ProjectsClient, LanguagesClient, TermsClient,
// TranslationsClient, ContributorsClient). A concrete implementation is
// provided by the poclient package, which wires configuration and the
// form-encoded transport. Most consumers should import poclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/localizehq/poeditor-go/pkg/poclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := poclient.NewWithToken("my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Wire format
//
// Every operation is a single HTTPS POST with a form-urlencoded body (or
// multipart when a file is uploaded). Structured payloads travel as a
// JSON string inside the single "data" form field. Responses share one
// envelope: a response status block plus the payload under "result".
//
// # Errors
//
// Remote failures are represented by APIError, carrying the server's
// code, status, and message (or the raw HTTP status for transport-level
// failures). Locally detected argument problems are represented by
// ArgsError and never reach the network. Helpers such as IsInvalidToken,
// IsNotFound, and IsTooManyUploads branch on common server codes.
//
// # Rate limits
//
// POEditor accepts no more than one file upload every MinUploadInterval.
// The client does not throttle; spacing uploads is the caller's job.
package poeditor
