package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString replaces control characters with spaces, collapses runs of
// whitespace and trims the result
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = whitespace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// RuneLength counts characters rather than bytes
func RuneLength(s string) int {
	return utf8.RuneCountInString(s)
}

// MaskString masks a portion of a string (useful for secrets in logs)
func MaskString(s string, start, end int, maskChar string) string {
	if start < 0 || end > len(s) || start > end {
		return s
	}

	return s[:start] + strings.Repeat(maskChar, end-start) + s[end:]
}

// MaskCode keeps only the last two characters of a pickup code visible
func MaskCode(code string) string {
	if len(code) <= 2 {
		return strings.Repeat("*", len(code))
	}
	return MaskString(code, 0, len(code)-2, "*")
}
