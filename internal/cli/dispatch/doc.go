// Package dispatch issues one API request and turns the reply into what
// the CLI prints and the code it exits with.
//
// Dispatch never writes to stdout and never exits the process; the
// command layer owns both. Exit code 0 means the API answered HTTP 200,
// anything else yields 1.
package dispatch
