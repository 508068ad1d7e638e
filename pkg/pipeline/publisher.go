package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mrmikeade/reblogger/pkg/llm"
)

//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter

// Submitter creates an unpublished draft post on the blogging platform and
// returns its external identifier
type Submitter interface {
	Submit(ctx context.Context, title, content string, labels []string) (string, error)
}

// defaultLabel is applied when the rewrite produced no keywords
const defaultLabel = "News"

// Publisher assembles the final HTML body for a rewritten article and
// submits it as an unpublished draft
type Publisher struct {
	submitter Submitter
	stats     *Stats
	sanitizer *bluemonday.Policy
}

// NewPublisher creates a publisher submitting through the given submitter
func NewPublisher(submitter Submitter, stats *Stats) *Publisher {
	return &Publisher{
		submitter: submitter,
		stats:     stats,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Publish validates, assembles and submits the rewritten article. An image
// URL, when present, is prepended as an image element; a source-attribution
// line is always appended. Returns the external post ID; submission failures
// are not retried.
func (p *Publisher) Publish(ctx context.Context, article *llm.Rewritten, feedTitle, imageURL, sourceURL string) (string, error) {
	if article == nil || article.Title == "" || article.Content == "" {
		return "", fmt.Errorf("rewritten article is missing title or content")
	}

	body := p.sanitizer.Sanitize(article.Content)
	if imageURL != "" {
		body = fmt.Sprintf(`<img src=%q alt=%q style="max-width:100%%;height:auto;"><br>%s`, imageURL, article.Title, body)
		p.stats.IncImagesIncluded()
	}
	body += fmt.Sprintf(`<br><br><small>Source: <a href=%q>%s</a></small>`, sourceURL, feedTitle)

	labels := []string{defaultLabel}
	if article.Keywords != "" {
		labels = strings.Split(article.Keywords, ", ")
	}

	id, err := p.submitter.Submit(ctx, article.Title, body, labels)
	if err != nil {
		return "", fmt.Errorf("submit draft %q: %w", article.Title, err)
	}

	p.stats.IncArticlesPosted()
	lgr.Printf("[INFO] posted draft %q (post ID: %s)", article.Title, id)
	return id, nil
}
