package pipeline

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/mrmikeade/reblogger/pkg/config"
	"github.com/mrmikeade/reblogger/pkg/content"
	"github.com/mrmikeade/reblogger/pkg/feed"
)

// processFeed runs one feed end-to-end: a strict pass over the entries with
// the word-count filter on and, when the quota was not met, a relaxed pass
// over the same entries with the filter disabled. Returns the number of
// articles actually posted for this feed.
func (p *Pipeline) processFeed(ctx context.Context, src config.Feed) int {
	res, err := p.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		// a failed fetch degrades to an empty entry list for this feed
		lgr.Printf("[WARN] failed to fetch feed %s: %v", src.URL, err)
		res = &feed.Result{Title: "Unknown_Feed"}
	}

	posted := p.runPass(ctx, src, res, 0, p.minWords)

	if posted < p.quota && p.minWords >= 0 {
		lgr.Printf("[INFO] feed %s produced %d of %d articles with word count >= %d, retrying with no minimum word count",
			src.URL, posted, p.quota, p.minWords)
		p.skipLog.Record("N/A", src.URL, "Insufficient articles, retrying with no minimum word count", -1)
		posted = p.runPass(ctx, src, res, posted, -1)
	}

	p.stats.IncFeedsProcessed()
	lgr.Printf("[INFO] processed %d articles from %s", posted, src.URL)
	return posted
}

// runPass iterates the feed entries in feed order until the quota is met or
// the entries are exhausted. A negative minWords disables the word-count
// filter (the relaxed pass). Duplicate hits in the relaxed pass are re-scans
// of entries handled in the strict pass and are neither counted nor logged.
func (p *Pipeline) runPass(ctx context.Context, src config.Feed, res *feed.Result, posted, minWords int) int {
	relaxed := minWords < 0

	for _, entry := range res.Entries {
		if posted >= p.quota || ctx.Err() != nil {
			break
		}

		id := Ident{Title: entry.Title, URL: entry.Link}
		if p.tracker.Seen(id) {
			if !relaxed {
				lgr.Printf("[INFO] skipping duplicate article %q from %s", entry.Title, src.URL)
				p.skipLog.Record(entry.Title, src.URL, "Duplicate article", -1)
				p.stats.IncDuplicatesSkipped()
			}
			continue
		}

		text := content.Normalize(entry.Content)
		if !relaxed {
			if wc := content.WordCount(text); wc < minWords {
				// not marked in the tracker, stays eligible for the relaxed pass
				lgr.Printf("[INFO] skipping short article %q from %s (word count: %d)", entry.Title, src.URL, wc)
				p.skipLog.Record(entry.Title, src.URL, "Below word count", wc)
				p.stats.IncArticlesSkippedShort()
				continue
			}
		}

		if !p.tracker.CheckAndMark(id) {
			// lost the race to a worker on another feed
			if !relaxed {
				lgr.Printf("[INFO] skipping duplicate article %q from %s", entry.Title, src.URL)
				p.skipLog.Record(entry.Title, src.URL, "Duplicate article", -1)
				p.stats.IncDuplicatesSkipped()
			}
			continue
		}

		rewritten, err := p.rewriter.Rewrite(ctx, entry.Title, text, entry.Link, src.URL)
		if err != nil {
			lgr.Printf("[WARN] failed to rewrite article %q: %v", entry.Title, err)
			p.throttle(ctx)
			continue
		}

		if _, err := p.publisher.Publish(ctx, rewritten, res.Title, entry.ImageURL, entry.Link); err != nil {
			lgr.Printf("[WARN] failed to publish article %q: %v", entry.Title, err)
		} else {
			posted++
		}

		p.throttle(ctx)
	}

	return posted
}

// throttle waits the fixed inter-article delay to respect the rate limits of
// the rewrite and publishing services
func (p *Pipeline) throttle(ctx context.Context) {
	if p.articleDelay <= 0 {
		return
	}
	select {
	case <-time.After(p.articleDelay):
	case <-ctx.Done():
	}
}
