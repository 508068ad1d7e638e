package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/mrmikeade/reblogger/pkg/blog"
	"github.com/mrmikeade/reblogger/pkg/config"
	"github.com/mrmikeade/reblogger/pkg/feed"
	"github.com/mrmikeade/reblogger/pkg/llm"
	"github.com/mrmikeade/reblogger/pkg/pipeline"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"reblogger.yml" description:"config file path"`
	Verbose bool   `short:"v" long:"verbose" description:"verbose mode"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

var timeNow = time.Now // replaced in tests

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	setupLog(opts.Debug || opts.Verbose, cfg.LLM.APIKey)

	log.Printf("[INFO] starting reblogger version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Printf("[ERROR] run failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] article generation and draft posting completed")
}

// run wires the components and executes one pipeline run to completion
func run(ctx context.Context, cfg *config.Config) error {
	// publishing service auth, interactive on the first run
	tokenSource, err := blog.Authenticate(ctx, cfg.Blog.ClientSecretsFile, cfg.Blog.CredentialsFile)
	if err != nil {
		return fmt.Errorf("blogger authentication: %w", err)
	}
	client, err := blog.NewClient(ctx, cfg.Blog.ID, tokenSource)
	if err != nil {
		return fmt.Errorf("blogger client: %w", err)
	}

	rewriter := llm.NewRewriter(llm.Config{
		Endpoint:    cfg.LLM.Endpoint,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, cfg.Blog.URL, cfg.Prompts())

	skipLog, err := pipeline.NewSkipLog(cfg.Pipeline.SkipLog)
	if err != nil {
		return fmt.Errorf("skip log: %w", err)
	}
	defer func() {
		if err := skipLog.Close(); err != nil {
			log.Printf("[WARN] failed to close skip log: %v", err)
		}
	}()

	stats := pipeline.NewStats()
	p := pipeline.New(pipeline.Params{
		Fetcher:         feed.NewFetcher(cfg.Pipeline.FetchTimeout),
		Rewriter:        rewriter,
		Publisher:       pipeline.NewPublisher(client, stats),
		SkipLog:         skipLog,
		Stats:           stats,
		Feeds:           cfg.Feeds,
		ArticlesPerFeed: cfg.Pipeline.ArticlesPerFeed,
		MinWordCount:    cfg.Pipeline.MinWordCount,
		MaxWorkers:      cfg.Pipeline.MaxWorkers,
		ArticleDelay:    cfg.Pipeline.ArticleDelay,
	})

	snap := p.Run(ctx)

	path, err := pipeline.WriteSummary(cfg.Pipeline.SummaryDir, snap, timeNow())
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Printf("[INFO] summary written to %s: feeds=%d posted=%d duplicates=%d short=%d images=%d",
		path, snap.FeedsProcessed, snap.ArticlesPosted, snap.DuplicatesSkipped, snap.ArticlesSkippedShort, snap.ImagesIncluded)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
