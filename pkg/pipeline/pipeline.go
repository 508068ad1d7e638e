package pipeline

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/mrmikeade/reblogger/pkg/config"
	"github.com/mrmikeade/reblogger/pkg/feed"
	"github.com/mrmikeade/reblogger/pkg/llm"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/rewriter.go -pkg mocks -skip-ensure -fmt goimports . Rewriter
//go:generate moq -out mocks/poster.go -pkg mocks -skip-ensure -fmt goimports . Poster

// Fetcher retrieves and parses a source feed
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*feed.Result, error)
}

// Rewriter produces an SEO-oriented rewrite of one article
type Rewriter interface {
	Rewrite(ctx context.Context, title, text, sourceURL, feedURL string) (*llm.Rewritten, error)
}

// Poster assembles and submits one rewritten article as a draft
type Poster interface {
	Publish(ctx context.Context, article *llm.Rewritten, feedTitle, imageURL, sourceURL string) (string, error)
}

// Pipeline runs all configured feeds through fetch, filter, rewrite and
// publish with a bounded worker pool. The duplicate tracker and the run
// statistics are the only state shared across workers.
type Pipeline struct {
	fetcher   Fetcher
	rewriter  Rewriter
	publisher Poster
	skipLog   *SkipLog
	tracker   *Tracker
	stats     *Stats

	feeds        []config.Feed
	quota        int // articles to post per feed
	minWords     int // minimum word count for the strict pass
	maxWorkers   int
	articleDelay time.Duration
}

// Params holds the pipeline dependencies and tuning knobs
type Params struct {
	Fetcher   Fetcher
	Rewriter  Rewriter
	Publisher Poster
	SkipLog   *SkipLog
	Stats     *Stats

	Feeds           []config.Feed
	ArticlesPerFeed int
	MinWordCount    int
	MaxWorkers      int
	ArticleDelay    time.Duration
}

// New creates a pipeline with the provided parameters
func New(p Params) *Pipeline {
	if p.ArticlesPerFeed == 0 {
		p.ArticlesPerFeed = 4
	}
	if p.MaxWorkers == 0 {
		p.MaxWorkers = 3
	}
	if p.Stats == nil {
		p.Stats = NewStats()
	}

	return &Pipeline{
		fetcher:      p.Fetcher,
		rewriter:     p.Rewriter,
		publisher:    p.Publisher,
		skipLog:      p.SkipLog,
		tracker:      NewTracker(),
		stats:        p.Stats,
		feeds:        p.Feeds,
		quota:        p.ArticlesPerFeed,
		minWords:     p.MinWordCount,
		maxWorkers:   p.MaxWorkers,
		articleDelay: p.ArticleDelay,
	}
}

// Run processes all feeds concurrently with at most maxWorkers in flight and
// returns the final counters. Per-feed and per-article failures never cross
// a worker boundary, they are absorbed into counters and logs.
func (p *Pipeline) Run(ctx context.Context) Snapshot {
	lgr.Printf("[INFO] processing %d feeds with %d workers", len(p.feeds), p.maxWorkers)

	g := &errgroup.Group{}
	g.SetLimit(p.maxWorkers)

	for _, f := range p.feeds {
		g.Go(func() error {
			p.processFeed(ctx, f)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return p.stats.Snapshot()
}
