// Package connection provides the HTTP client for cfwkv.
package connection

import "fmt"

// TransportError reports a failure before any HTTP response was received
// (DNS, connection refused, timeout, truncated body).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
