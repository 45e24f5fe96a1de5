package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// SecretKeyPatterns contains substrings that indicate a key likely contains
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"PASSWD",
	"AUTH",
	"CREDENTIAL",
	"API_KEY",
	"PRIVATE",
}

// TokenPrefixes contains known credential prefixes that mark a value as
// sensitive regardless of its key.
var TokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghs_",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
}

// ShouldMask reports whether key names sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a credential prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a sensitive value, keeping the last 4 characters of
// values longer than 4.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// redact returns the masked form of an attribute value and whether
// masking applied.
func redact(key string, value any) (string, bool) {
	if ShouldMask(key) {
		return MaskValue(fmt.Sprint(value)), true
	}
	if s, ok := value.(string); ok && ContainsTokenPrefix(s) {
		return MaskValue(s), true
	}
	return "", false
}

// RedactAttr is a slog.HandlerOptions.ReplaceAttr function applying the
// same masking as the text handler.
func RedactAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	if masked, ok := redact(a.Key, a.Value.Resolve().Any()); ok {
		return slog.String(a.Key, masked)
	}
	return a
}
