package pipeline

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// SkipLog is the append-only record of skipped articles, one line each.
// It is write-only, the pipeline never reads it back.
type SkipLog struct {
	mu sync.Mutex
	f  *os.File
}

// NewSkipLog opens the skip log for appending, creating it when missing
func NewSkipLog(path string) (*SkipLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // file path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open skip log %s: %w", path, err)
	}
	return &SkipLog{f: f}, nil
}

// Record appends one line for a skipped article. A negative wordCount omits
// the word count field for skips where it does not apply.
func (l *SkipLog) Record(title, feedURL, reason string, wordCount int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05")
	var line string
	if wordCount >= 0 {
		line = fmt.Sprintf("[%s] Skipped article: '%s' from %s (Reason: %s, Word count: %d)", ts, title, feedURL, reason, wordCount)
	} else {
		line = fmt.Sprintf("[%s] Skipped article: '%s' from %s (Reason: %s)", ts, title, feedURL, reason)
	}

	if _, err := fmt.Fprintln(l.f, line); err != nil {
		lgr.Printf("[WARN] failed to write skip log: %v", err)
	}
}

// Close closes the underlying file
func (l *SkipLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
