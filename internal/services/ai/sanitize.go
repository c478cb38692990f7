package ai

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPreviewLength is the maximum length for preview strings in logs
const MaxPreviewLength = 200

// SanitizePreview creates a safe preview of prompt or response text for
// logging: valid UTF-8, no control characters, bounded length.
func SanitizePreview(s string) string {
	if s == "" {
		return ""
	}

	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			builder.WriteRune(r)
		}
	}
	s = builder.String()

	if len(s) > MaxPreviewLength {
		s = s[:MaxPreviewLength] + "..."
	}
	return s
}

// TruncateString safely truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
