// Package logger provides structured logging for cfwkv.
package logger

import (
	"log/slog"
	"strings"
)

// Attribute keys whose values are never written in clear.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"key",
	"credential",
	"auth",
}

// Attribute keys whose values are partially masked.
var maskedKeyPatterns = []string{
	"email",
}

const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if strVal == "" {
			return a
		}
		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				return slog.String(a.Key, redactedValue)
			}
		}
		for _, pattern := range maskedKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				return slog.String(a.Key, MaskEmail(strVal))
			}
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// MaskEmail keeps the first character of the local part and the domain.
// Format: u***@example.com
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
