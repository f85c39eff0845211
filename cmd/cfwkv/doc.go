// Package main provides the entry point for cfwkv.
//
// cfwkv is a command-line client for the Cloudflare Workers KV API:
//
//   - Namespace management (list, create, delete, rename)
//   - Key management (list, get, set, delete)
//
// Usage:
//
//	cfwkv [global options] namespace list --perPage 50
//	cfwkv --output table key list --prefix user: NAMESPACE_ID
//	cfwkv key set NAMESPACE_ID greeting "hello world"
//
// Credentials come from --email, --key and --accountId, or from the
// CLOUDFLARE_AUTH_EMAIL, CLOUDFLARE_AUTH_KEY and CLOUDFLARE_ACCOUNT_ID
// environment variables, which take precedence over the flags.
//
// The process exits 0 when the API answers HTTP 200 and 1 otherwise.
package main
