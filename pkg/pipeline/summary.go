package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteSummary writes the per-run summary artifact into dir, one file per
// run named with the run's completion timestamp, and returns its path.
func WriteSummary(dir string, snap Snapshot, now time.Time) (string, error) {
	ts := now.Format("2006-01-02 15:04:05")
	name := fmt.Sprintf("summary_%s.txt", strings.ReplaceAll(ts, ":", "-"))
	path := filepath.Join(dir, name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Article Processing Summary - %s\n", ts)
	sb.WriteString("=====================================\n")
	fmt.Fprintf(&sb, "Total Feeds Processed: %d\n", snap.FeedsProcessed)
	fmt.Fprintf(&sb, "Total Articles Posted: %d\n", snap.ArticlesPosted)
	fmt.Fprintf(&sb, "Duplicates Skipped: %d\n", snap.DuplicatesSkipped)
	fmt.Fprintf(&sb, "Articles Skipped (Short): %d\n", snap.ArticlesSkippedShort)
	fmt.Fprintf(&sb, "Articles with Images: %d\n", snap.ImagesIncluded)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil { //nolint:gosec // summary is not sensitive
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}
