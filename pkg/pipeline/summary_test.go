package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	snap := Snapshot{
		FeedsProcessed:       5,
		ArticlesPosted:       17,
		DuplicatesSkipped:    3,
		ImagesIncluded:       9,
		ArticlesSkippedShort: 2,
	}

	ts := time.Date(2025, 8, 30, 15, 4, 5, 0, time.UTC)
	path, err := WriteSummary(dir, snap, ts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "summary_2025-08-30 15-04-05.txt"), path, "timestamp colons replaced for the file name")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Article Processing Summary - 2025-08-30 15:04:05")
	assert.Contains(t, content, "Total Feeds Processed: 5")
	assert.Contains(t, content, "Total Articles Posted: 17")
	assert.Contains(t, content, "Duplicates Skipped: 3")
	assert.Contains(t, content, "Articles Skipped (Short): 2")
	assert.Contains(t, content, "Articles with Images: 9")
}

func TestWriteSummary_BadDir(t *testing.T) {
	_, err := WriteSummary(filepath.Join(t.TempDir(), "missing-subdir"), Snapshot{}, time.Now())
	require.Error(t, err)
}
