// Package poclient constructs concrete poeditor.Client instances.
//
// Most callers only need NewWithToken:
//
//	cli, err := poclient.NewWithToken("my-api-token")
//
// New accepts a full poeditor.Config for overriding the endpoint,
// transport, timeouts, logging, and opt-in retry behavior.
package poclient
