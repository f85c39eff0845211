// Package output provides output formatting for cfwkv.
package output

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONFormatter formats data as JSON.
type JSONFormatter struct{}

// Format re-indents doc with two spaces. Key order and number literals
// are preserved; no trailing newline is added.
func (f *JSONFormatter) Format(w io.Writer, doc []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
