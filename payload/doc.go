// Package payload provides the typed payload wrapper and the request/response
// adaptation entry points consumed by a host HTTP framework.
//
// A Binder is built once at startup from a format registry and holds the
// codec table for one payload type. The host's request-extraction path calls
// Extract with the request headers and body stream; its response-generation
// path calls BuildResponse with the handler's payload and the request
// headers. Both operations are pure per-call and safe for concurrent use.
package payload
