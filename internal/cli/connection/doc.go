// Package connection talks to the Cloudflare Workers KV REST API.
//
// This package holds the HTTP side of a cfwkv invocation:
//
//   - request.go: Request descriptor, path and query builders
//   - http.go: HTTPClient issuing authenticated requests
//   - errors.go: TransportError for failures before a response arrives
//
// HTTP error statuses are not errors at this layer. The caller always
// receives the status and body and decides what they mean.
package connection
