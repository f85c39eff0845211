// Package dispatch issues API requests and renders their outcome.
package dispatch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yndnr/cfwkv-go/internal/cli/connection"
	"github.com/yndnr/cfwkv-go/internal/cli/output"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Doer performs a single API request.
type Doer interface {
	Do(ctx context.Context, req *connection.Request) (*connection.Response, error)
}

// Outcome is the rendered result of one request.
type Outcome struct {
	StatusCode int
	Output     []byte
	ExitCode   int
}

// Dispatcher sends requests and renders responses.
type Dispatcher struct {
	client Doer
	format output.Format
	opts   []output.Option
}

// New creates a Dispatcher rendering responses in the given format.
func New(client Doer, format output.Format, opts ...output.Option) *Dispatcher {
	return &Dispatcher{
		client: client,
		format: format,
		opts:   opts,
	}
}

// Dispatch sends req and renders the response. The returned error is
// non-nil only when no response was received (see
// connection.TransportError) or the body could not be rendered.
// HTTP error statuses produce an Outcome with ExitFailure and the
// rendered error body.
func (d *Dispatcher) Dispatch(ctx context.Context, req *connection.Request) (Outcome, error) {
	resp, err := d.client.Do(ctx, req)
	if err != nil {
		return Outcome{ExitCode: ExitFailure}, err
	}

	out, err := output.Render(d.format, resp.Body, d.opts...)
	if err != nil {
		// Still show the body as received.
		return Outcome{
			StatusCode: resp.StatusCode,
			Output:     resp.Body,
			ExitCode:   ExitFailure,
		}, fmt.Errorf("render response: %w", err)
	}

	return Outcome{
		StatusCode: resp.StatusCode,
		Output:     out,
		ExitCode:   ExitCodeFor(resp.StatusCode),
	}, nil
}

// ExitCodeFor maps an HTTP status to a process exit code: only 200 is
// success, every other status (including other 2xx) is a failure.
func ExitCodeFor(status int) int {
	if status == http.StatusOK {
		return ExitOK
	}
	return ExitFailure
}
