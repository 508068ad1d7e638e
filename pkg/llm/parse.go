package llm

import (
	"regexp"
	"strings"
)

var (
	titleRe    = regexp.MustCompile(`(?m)^\s*Title:\s*(.+)$`)
	metaRe     = regexp.MustCompile(`(?m)^\s*Meta Description:\s*(.+)$`)
	keywordsRe = regexp.MustCompile(`(?m)^\s*Keywords:\s*(.+)$`)
	contentRe  = regexp.MustCompile(`(?s)\bContent:\s*(.*)`)
)

// parseRewrite extracts the four labeled sections from the raw model
// response. Any missing section falls back to a safe default: the original
// title, empty meta description and keywords, and the whole raw response as
// content. Partial or malformed output never fails.
func parseRewrite(raw, originalTitle string) Rewritten {
	res := Rewritten{Title: originalTitle, Content: strings.TrimSpace(raw)}

	if m := titleRe.FindStringSubmatch(raw); m != nil {
		res.Title = strings.TrimSpace(m[1])
	}
	if m := metaRe.FindStringSubmatch(raw); m != nil {
		res.MetaDescription = strings.TrimSpace(m[1])
	}
	if m := keywordsRe.FindStringSubmatch(raw); m != nil {
		res.Keywords = strings.TrimSpace(m[1])
	}
	if m := contentRe.FindStringSubmatch(raw); m != nil {
		res.Content = strings.TrimSpace(m[1])
	}

	return res
}
