// Package output provides output formatting for cfwkv.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formatter formats a valid JSON document for output.
type Formatter interface {
	Format(w io.Writer, doc []byte) error
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or table)", s)
	}
}

// Option configures a Formatter created by NewFormatter.
type Option func(Formatter)

// WithNoHeaders omits the header row of tables. Other formats ignore it.
func WithNoHeaders(noHeaders bool) Option {
	return func(f Formatter) {
		if tf, ok := f.(*TableFormatter); ok {
			tf.NoHeaders = noHeaders
		}
	}
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format, opts ...Option) Formatter {
	var f Formatter
	switch format {
	case FormatYAML:
		f = &YAMLFormatter{}
	case FormatTable:
		f = &TableFormatter{}
	default:
		f = &JSONFormatter{}
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render turns a response body into the bytes written to stdout.
// An empty body renders as nothing. A body that is not valid JSON is
// returned unchanged.
func Render(format Format, body []byte, opts ...Option) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	doc := bytes.TrimSpace(body)
	if !json.Valid(doc) {
		return body, nil
	}

	var buf bytes.Buffer
	if err := NewFormatter(format, opts...).Format(&buf, doc); err != nil {
		return nil, fmt.Errorf("format %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
