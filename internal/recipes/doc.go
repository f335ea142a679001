// Package recipes provides an HTTP client for a recipe-management backend.
//
// # Overview
//
// The package covers the three operations the demo panel exposes:
//
//   - GET /api/recipes: list all recipes
//   - POST /api/recipes: create one recipe (JSON body)
//   - GET /api/weeks/{date}/plan: fetch the plan for one week
//
// Responses are returned as raw JSON (json.RawMessage) rather than decoded
// into domain structs: the panel renders whatever the backend sent verbatim,
// so the payload shape is deliberately left open.
//
// # Endpoints
//
// The Endpoints type derives concrete URLs from a backend base address. It
// performs no validation: a malformed address yields a malformed URL, and the
// failure surfaces when the request is attempted, not before.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and a User-Agent header
//   - Carry a generated X-Request-ID header for correlation
//   - Set Content-Type: application/json when a body is present
//
// There is no client timeout. Requests are user triggered one at a time and a
// hung call is reported through the UI's loading state.
//
// # Error Handling
//
// Three error shapes reach callers:
//
//   - Transport errors ("execute request: dial tcp: connection refused")
//   - *StatusError for non-2xx responses, carrying the numeric status code
//     and the raw response body text
//   - Decode errors for 2xx responses whose body is not valid JSON
//
// No retries, no caching, no authentication. The caller decides what to do
// with a failure; this package only reports it.
package recipes
