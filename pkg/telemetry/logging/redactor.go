package logging

import (
	"regexp"
	"strings"
)

// Redactor masks secrets in log field values. Analysed documents are never
// logged, but error messages, user agents and file paths can still carry
// credentials.
type Redactor struct {
	patterns []redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Built-in pattern names.
const (
	PatternAPIKey      = "api_key"
	PatternBearerToken = "bearer_token"
	PatternPassword    = "password"
	PatternEmail       = "email"
)

// sensitiveKeys are field names whose values are masked outright.
var sensitiveKeys = []string{
	"password", "passwd", "secret", "token", "api_key", "apikey",
	"authorization", "private_key",
}

// NewRedactor creates a Redactor with the built-in patterns. Patterns are
// applied in a fixed order.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []redactPattern{
			{
				name:        PatternBearerToken,
				regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
				replacement: "Bearer ***",
			},
			{
				// OpenAI/Anthropic style keys and key=value pairs
				name:        PatternAPIKey,
				regex:       regexp.MustCompile(`(sk-[a-zA-Z0-9\-_]{8,}|api[-_]?key[-_:=]\s*[a-zA-Z0-9\-_]+)`),
				replacement: "sk-***",
			},
			{
				name:        PatternPassword,
				regex:       regexp.MustCompile(`(?i)(password|passwd|pwd)[:=]\s*\S+`),
				replacement: "$1: ***",
			},
			{
				name:        PatternEmail,
				regex:       regexp.MustCompile(`[a-zA-Z0-9._%+-]+@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
				replacement: "***@$1",
			},
		},
	}
}

// RedactString masks every secret pattern found in value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}

	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

// RedactField masks value entirely when key names a sensitive field and
// otherwise applies RedactString.
func (r *Redactor) RedactField(key, value string) string {
	if value != "" && isSensitiveKey(key) {
		return "***"
	}
	return r.RedactString(value)
}

// isSensitiveKey checks if a key name indicates sensitive data. Keys match
// exactly or by suffix ("auth_token"), so "tokenizer" is not sensitive.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if lowerKey == sensitive ||
			strings.HasSuffix(lowerKey, "_"+sensitive) ||
			strings.HasSuffix(lowerKey, "-"+sensitive) {
			return true
		}
	}
	return false
}
