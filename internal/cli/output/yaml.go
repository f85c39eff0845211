// Package output provides output formatting for cfwkv.
package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats data as YAML.
type YAMLFormatter struct{}

// Format converts doc to YAML.
func (f *YAMLFormatter) Format(w io.Writer, doc []byte) error {
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
