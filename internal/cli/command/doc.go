// Package command provides CLI command definitions for cfwkv.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, Run (exit code resolution)
//   - invoke.go: Shared resolve -> build -> dispatch -> print pipeline
//   - namespace.go: namespace subcommand group
//   - key.go: key subcommand group
//
// Every handler checks its positional arguments, resolves and validates
// credentials, builds exactly one request and hands it to the
// dispatcher. Handlers never exit the process; Run turns the returned
// error into an exit code.
package command
