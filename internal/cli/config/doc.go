// Package config resolves the effective configuration of a cfwkv invocation.
//
// Sources, lowest to highest priority:
//
//   - built-in defaults
//   - YAML config file (~/.cfwkv/config.yaml or --config)
//   - command-line flags
//   - CLOUDFLARE_* environment variables
//
// The environment always wins over flags: it is an override, not a
// fallback. The environment is passed in as a snapshot taken once at
// program entry; nothing in this package reads the process environment.
package config
