package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"
)

// Entry is a single article from a source feed, in feed order
type Entry struct {
	Title    string
	Content  string // raw HTML/markup body as provided by the feed
	Link     string
	ImageURL string // first usable direct image URL, empty when none found
}

// Result holds the parsed feed with its display title
type Result struct {
	Title   string // feed display title with spaces replaced by underscores
	Entries []Entry
}

// Fetcher retrieves and parses RSS/Atom feeds
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewFetcher creates a new feed fetcher with the given per-feed timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

// Fetch retrieves and parses the feed at the given URL. Transient failures
// are retried with backoff before giving up.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var parsed *gofeed.Feed
	retrier := repeater.NewBackoff(3, time.Second, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		var perr error
		parsed, perr = f.parser.ParseURLWithContext(feedURL, ctx)
		return perr
	})
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	title := strings.ReplaceAll(strings.TrimSpace(parsed.Title), " ", "_")
	if title == "" {
		title = "Unknown_Feed"
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		e := Entry{
			Title:    item.Title,
			Content:  item.Description,
			Link:     item.Link,
			ImageURL: extractImage(item),
		}
		if e.Title == "" {
			e.Title = "No Title"
		}
		if e.Content == "" {
			e.Content = item.Content
		}
		entries = append(entries, e)
	}

	return &Result{Title: title, Entries: entries}, nil
}
