package pipeline

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_CheckAndMark(t *testing.T) {
	tr := NewTracker()
	id := Ident{Title: "A", URL: "https://example.com/a"}

	assert.False(t, tr.Seen(id))
	assert.True(t, tr.CheckAndMark(id), "first insert is newly added")
	assert.True(t, tr.Seen(id))
	assert.False(t, tr.CheckAndMark(id), "second insert is a duplicate")
}

func TestTracker_DistinctIdents(t *testing.T) {
	tr := NewTracker()

	// same title from different sources is a different article
	assert.True(t, tr.CheckAndMark(Ident{Title: "A", URL: "https://one.example.com/a"}))
	assert.True(t, tr.CheckAndMark(Ident{Title: "A", URL: "https://two.example.com/a"}))

	// same source with a different title as well
	assert.True(t, tr.CheckAndMark(Ident{Title: "B", URL: "https://one.example.com/a"}))
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker()
	id := Ident{Title: "racy", URL: "https://example.com/racy"}

	var added int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.CheckAndMark(id) {
				atomic.AddInt32(&added, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), added, "exactly one goroutine observes newly added")
}

func TestStats_Counters(t *testing.T) {
	s := NewStats()
	s.IncFeedsProcessed()
	s.IncArticlesPosted()
	s.IncArticlesPosted()
	s.IncDuplicatesSkipped()
	s.IncImagesIncluded()
	s.IncArticlesSkippedShort()
	s.IncArticlesSkippedShort()
	s.IncArticlesSkippedShort()

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.FeedsProcessed)
	assert.Equal(t, 2, snap.ArticlesPosted)
	assert.Equal(t, 1, snap.DuplicatesSkipped)
	assert.Equal(t, 1, snap.ImagesIncluded)
	assert.Equal(t, 3, snap.ArticlesSkippedShort)
}

func TestStats_ConcurrentIncrements(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncArticlesPosted()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Snapshot().ArticlesPosted)
}
