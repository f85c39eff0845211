package connection

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/cfwkv-go/internal/infra/buildinfo"
	"github.com/yndnr/cfwkv-go/internal/telemetry/logger"
)

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		name string
		opts []ClientOption
		want string
	}{
		{"default", nil, DefaultBaseURL},
		{"override with slash", []ClientOption{WithBaseURL("http://127.0.0.1:8080/")}, "http://127.0.0.1:8080/"},
		{"override without slash", []ClientOption{WithBaseURL("http://127.0.0.1:8080")}, "http://127.0.0.1:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient("user@example.com", "secret", "acct", tt.opts...)
			if client.baseURL != tt.want {
				t.Errorf("baseURL = %q, want %q", client.baseURL, tt.want)
			}
		})
	}
}

func TestHTTPClient_URL(t *testing.T) {
	client := NewHTTPClient("user@example.com", "secret", "01a7362d577a6c3019a474fd6f485823")

	got := client.URL("/storage/kv/namespaces")
	want := "https://api.cloudflare.com/client/v4/accounts/01a7362d577a6c3019a474fd6f485823/storage/kv/namespaces"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestHTTPClient_Do_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		if got := r.Header.Get(HeaderAuthEmail); got != "user@example.com" {
			t.Errorf("%s = %q, want %q", HeaderAuthEmail, got, "user@example.com")
		}
		if got := r.Header.Get(HeaderAuthKey); got != "secret" {
			t.Errorf("%s = %q, want %q", HeaderAuthKey, got, "secret")
		}
		if got := r.Header.Get("User-Agent"); got != buildinfo.UserAgent() {
			t.Errorf("User-Agent = %q, want %q", got, buildinfo.UserAgent())
		}
		if got := r.Header.Get(HeaderRequestID); got != "req-1" {
			t.Errorf("%s = %q, want %q", HeaderRequestID, got, "req-1")
		}
		if r.URL.Path != "/acct/storage/kv/namespaces" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/acct/storage/kv/namespaces")
		}
		if r.URL.RawQuery != "page=1&per_page=20" {
			t.Errorf("query = %q, want %q", r.URL.RawQuery, "page=1&per_page=20")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient("user@example.com", "secret", "acct", WithBaseURL(server.URL))

	q := (&Query{}).Add("page", "1").Add("per_page", "20")
	ctx := logger.WithRequestID(context.Background(), "req-1")

	resp, err := client.Do(ctx, NewRequest(http.MethodGet, WithQuery(NamespacesPath(), q)))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(resp.Body) != `{"success":true}` {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestHTTPClient_Do_TextBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q, want PUT", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != ContentTypeText {
			t.Errorf("Content-Type = %q, want %q", got, ContentTypeText)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "bar" {
			t.Errorf("body = %q, want %q", body, "bar")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPClient("e", "k", "acct", WithBaseURL(server.URL))
	resp, err := client.Do(context.Background(), NewTextRequest(http.MethodPut, ValuePath("ns1", "foo"), "bar"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("body = %q, want empty", resp.Body)
	}
}

func TestHTTPClient_Do_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"errors":[{"code":10009,"message":"get: key not found"}]}`))
	}))
	defer server.Close()

	client := NewHTTPClient("e", "k", "acct", WithBaseURL(server.URL))
	resp, err := client.Do(context.Background(), NewRequest(http.MethodGet, ValuePath("ns1", "missing")))
	if err != nil {
		t.Fatalf("Do() error = %v, want nil for HTTP 404", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	if !strings.Contains(string(resp.Body), "key not found") {
		t.Errorf("body = %q, want error details", resp.Body)
	}
}

func TestHTTPClient_Do_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPClient("e", "k", "acct", WithBaseURL(url))
	_, err := client.Do(context.Background(), NewRequest(http.MethodGet, NamespacesPath()))

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Do() error = %v, want *TransportError", err)
	}
	if te.Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", te.Method)
	}
	if !strings.HasPrefix(te.URL, url) {
		t.Errorf("URL = %q, want prefix %q", te.URL, url)
	}
}

func TestHTTPClient_Do_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient("e", "k", "acct", WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.Do(context.Background(), NewRequest(http.MethodGet, NamespacesPath()))

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Do() error = %v, want *TransportError", err)
	}
}
