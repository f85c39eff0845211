package logger

import (
	"encoding/json"
	"log/slog"
	"testing"
)

func TestRedactSensitive_Keys(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"api_key", "c2547eb745079dac9320b638f5e225cf483cc5cfdda41", redactedValue},
		{"X-Auth-Key", "c2547eb745079dac9320b638f5e225cf483cc5cfdda41", redactedValue},
		{"token", "abc", redactedValue},
		{"email", "user@example.com", "u***@example.com"},
		{"path", "/storage/kv/namespaces", "/storage/kv/namespaces"},
		{"api_key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := redactSensitive(slog.String(tt.key, tt.value))
			if got.Value.String() != tt.want {
				t.Errorf("redactSensitive(%q) = %q, want %q", tt.key, got.Value.String(), tt.want)
			}
		})
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	attr := slog.Group("auth", slog.String("key", "secret-value"), slog.String("status", "ok"))

	got := redactSensitive(attr)
	group := got.Value.Group()
	if group[0].Value.String() != redactedValue {
		t.Errorf("nested key = %q, want redacted", group[0].Value.String())
	}
	if group[1].Value.String() != "ok" {
		t.Errorf("nested status = %q, want ok", group[1].Value.String())
	}
}

func TestLogger_RedactsOutput(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "json")

	l.Info("credentials resolved", "key", "c2547eb745079dac9320b638f5e225cf483cc5cfdda41")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["key"] != redactedValue {
		t.Errorf("key = %v, want %s", logEntry["key"], redactedValue)
	}
}

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"user@example.com": "u***@example.com",
		"a@b.c":            "a***@b.c",
		"invalid":          "***",
		"@example.com":     "***",
	}
	for in, want := range tests {
		if got := MaskEmail(in); got != want {
			t.Errorf("MaskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
