package logging

import (
	"regexp"
	"strings"
)

const (
	// MaxFieldLogLength is the maximum length of schema-supplied text to log.
	MaxFieldLogLength = 120
	// RedactedText is the replacement text for sensitive data.
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match potential credentials embedded in schema text.
	// Matches: password=xxx, pwd=xxx, pass=xxx (until next delimiter).
	passwordPattern = regexp.MustCompile(`(?i)(password|pwd|pass)=[^;&\s]+`)

	// Pattern to match potential API keys.
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|secret)=[A-Za-z0-9-_]{8,}`)

	// Pattern to collapse control characters so one log entry stays one line.
	controlPattern = regexp.MustCompile(`[\x00-\x1f]+`)
)

// SanitizeForLog prepares caller-supplied schema text (names, descriptions)
// for logging: control characters collapse to a space, credential-looking
// substrings are redacted, and the result is truncated. Schema metadata is
// untrusted input; it must never leak secrets or break log formatting.
func SanitizeForLog(text string) string {
	if text == "" {
		return ""
	}

	sanitized := controlPattern.ReplaceAllString(text, " ")
	sanitized = passwordPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	sanitized = apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)

	if len(sanitized) > MaxFieldLogLength {
		sanitized = sanitized[:MaxFieldLogLength] + "..."
	}
	return sanitized
}

// SanitizeError sanitizes an error message that may echo schema content.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeForLog(strings.TrimSpace(err.Error()))
}
