// Package config defines the CLI configuration structure.
package config

import "time"

// Config is the effective configuration for one invocation.
type Config struct {
	// Credentials
	Email     string `koanf:"email"`
	Key       string `koanf:"key"`
	AccountID string `koanf:"account_id"`
	ZoneID    string `koanf:"zone_id"` // reserved for zone-scoped commands

	// Output format: json, yaml, table
	Output    string `koanf:"output"`
	NoHeaders bool   `koanf:"no_headers"`

	// Other
	LogLevel string        `koanf:"log_level"`
	Timeout  time.Duration `koanf:"timeout"` // 0 disables the timeout
}

// Config keys shared by flags, file and environment layers.
const (
	KeyEmail     = "email"
	KeyKey       = "key"
	KeyAccountID = "account_id"
	KeyZoneID    = "zone_id"
	KeyOutput    = "output"
	KeyNoHeaders = "no_headers"
	KeyLogLevel  = "log_level"
	KeyTimeout   = "timeout"
)

// Recognized environment variables.
const (
	EnvAuthEmail = "CLOUDFLARE_AUTH_EMAIL"
	EnvAuthKey   = "CLOUDFLARE_AUTH_KEY"
	EnvAccountID = "CLOUDFLARE_ACCOUNT_ID"
	EnvZoneID    = "CLOUDFLARE_ZONE_ID"
)

// envToKey maps each recognized environment variable to its config key.
var envToKey = map[string]string{
	EnvAuthEmail: KeyEmail,
	EnvAuthKey:   KeyKey,
	EnvAccountID: KeyAccountID,
	EnvZoneID:    KeyZoneID,
}

// Defaults returns the built-in default values.
func Defaults() map[string]any {
	return map[string]any{
		KeyOutput:   "json",
		KeyLogLevel: "warn",
		KeyTimeout:  time.Duration(0),
	}
}
