package command

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/yndnr/cfwkv-go/internal/cli/config"
	"github.com/yndnr/cfwkv-go/internal/cli/connection"
)

// recordedRequest is what the mock API saw.
type recordedRequest struct {
	Method     string
	RequestURI string
	Header     http.Header
	Body       string
}

// mockAPI is an httptest server standing in for the Cloudflare API.
// It records every request and answers with a fixed status and body.
type mockAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newMockAPI(t *testing.T, status int, body string) *mockAPI {
	t.Helper()
	m := &mockAPI{status: status, body: body}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		m.mu.Lock()
		m.requests = append(m.requests, recordedRequest{
			Method:     r.Method,
			RequestURI: r.RequestURI,
			Header:     r.Header.Clone(),
			Body:       string(data),
		})
		m.mu.Unlock()

		w.WriteHeader(m.status)
		io.WriteString(w, m.body)
	}))
	t.Cleanup(m.Close)
	return m
}

func (m *mockAPI) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockAPI) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		t.Fatal("no request reached the mock API")
	}
	return m.requests[len(m.requests)-1]
}

// credentials is an environment snapshot with every required variable.
func credentials() map[string]string {
	return map[string]string{
		config.EnvAuthEmail: "user@example.com",
		config.EnvAuthKey:   "c2547eb745079dac9320b638f5e225cf483cc5cfdda41",
		config.EnvAccountID: "acct",
	}
}

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs cfwkv against the mock API with the given environment.
func runCLI(t *testing.T, api *mockAPI, environ map[string]string, args ...string) cliResult {
	t.Helper()
	// Keep a real ~/.cfwkv/config.yaml out of the tests.
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	env := &Env{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: environ,
	}
	if api != nil {
		env.ClientOptions = []connection.ClientOption{connection.WithBaseURL(api.URL)}
	}

	code := Run(context.Background(), env, append([]string{"cfwkv"}, args...))
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
