// Package connection provides the HTTP client for cfwkv.
package connection

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Content types sent with request bodies.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// Request describes one outbound API call.
// Path is relative to the account segment, e.g. "/storage/kv/namespaces".
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// NewRequest creates a request without a body.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Header: make(http.Header),
	}
}

// NewJSONRequest creates a request whose body is v serialized as JSON.
func NewJSONRequest(method, path string, v any) (*Request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req := NewRequest(method, path)
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Body = data
	return req, nil
}

// NewTextRequest creates a request with a raw text body.
func NewTextRequest(method, path, text string) *Request {
	req := NewRequest(method, path)
	req.Header.Set("Content-Type", ContentTypeText)
	req.Body = []byte(text)
	return req
}

const namespacesPath = "/storage/kv/namespaces"

// NamespacesPath returns the namespace collection path.
func NamespacesPath() string {
	return namespacesPath
}

// NamespacePath returns the path of a single namespace.
func NamespacePath(namespaceID string) string {
	return namespacesPath + "/" + url.PathEscape(namespaceID)
}

// KeysPath returns the key listing path of a namespace.
func KeysPath(namespaceID string) string {
	return NamespacePath(namespaceID) + "/keys"
}

// ValuePath returns the path of a key's value. Key names may contain any
// character, including '/', so the name is escaped as a single segment.
func ValuePath(namespaceID, key string) string {
	return NamespacePath(namespaceID) + "/values/" + url.PathEscape(key)
}

// Query is an ordered list of query parameters. Unlike url.Values it
// keeps insertion order.
type Query struct {
	params []queryParam
}

type queryParam struct {
	name  string
	value string
}

// Add appends a parameter.
func (q *Query) Add(name, value string) *Query {
	q.params = append(q.params, queryParam{name: name, value: value})
	return q
}

// AddIfSet appends a parameter only when value is non-empty.
func (q *Query) AddIfSet(name, value string) *Query {
	if value == "" {
		return q
	}
	return q.Add(name, value)
}

// Encode returns the escaped query string without the leading '?'.
func (q *Query) Encode() string {
	parts := make([]string, 0, len(q.params))
	for _, p := range q.params {
		parts = append(parts, url.QueryEscape(p.name)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// WithQuery appends q to path.
func WithQuery(path string, q *Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
