// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"strings"
)

// RequiredOptions lists the options every API command needs, by flag name.
var RequiredOptions = []string{"email", "key", "accountId"}

// ConfigurationError reports required options missing after resolution.
type ConfigurationError struct {
	Missing []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("the following options must be set as environment variables or parameters: %s (missing: %s)",
		strings.Join(RequiredOptions, ", "), strings.Join(e.Missing, ", "))
}

// Validate checks that email, key and accountId are set.
// ZoneID is never required.
func (c *Config) Validate() error {
	var missing []string
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Key == "" {
		missing = append(missing, "key")
	}
	if c.AccountID == "" {
		missing = append(missing, "accountId")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}
