// Package output renders API response bodies for cfwkv.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface, factory and Render entry point
//   - json.go: Indented JSON (the default)
//   - yaml.go: YAML conversion of JSON bodies
//   - table.go: Column tables for list results
//
// Bodies that are not valid JSON are always written unchanged, whatever
// the requested format.
package output
