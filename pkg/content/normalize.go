package content

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	htmlTagRe    = regexp.MustCompile(`<\s*/?\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|u|code|pre|blockquote|figure|picture|source|iframe)\b[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize converts an HTML fragment to a single-line plain-text string:
// markup is stripped best-effort, entities decoded after stripping and
// whitespace collapsed. Malformed markup never fails, the original text is
// kept when conversion is impossible. Normalizing already-normalized text
// is a no-op.
func Normalize(s string) string {
	text := s
	if isHTML(s) {
		if converted, err := htmltomarkdown.ConvertString(s); err == nil {
			text = converted
		}
	}
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// isHTML checks if content appears to contain HTML markup
func isHTML(s string) bool {
	if strings.Contains(s, "<!DOCTYPE") || strings.Contains(s, "<html") {
		return true
	}
	return htmlTagRe.MatchString(s)
}

// WordCount returns the number of whitespace-separated words
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Truncate cuts s to at most n bytes without splitting a multi-byte rune.
// The cut point is not adjusted to a sentence or word boundary.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
