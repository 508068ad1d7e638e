package pipeline

import "sync"

// Stats holds the aggregate run counters, mutated under a single lock taken
// only for the brief increment. Counters are never decremented or reset
// during a run.
type Stats struct {
	mu                   sync.Mutex
	feedsProcessed       int
	articlesPosted       int
	duplicatesSkipped    int
	imagesIncluded       int
	articlesSkippedShort int
}

// Snapshot is a point-in-time copy of the counters, taken once after all
// feed workers complete
type Snapshot struct {
	FeedsProcessed       int
	ArticlesPosted       int
	DuplicatesSkipped    int
	ImagesIncluded       int
	ArticlesSkippedShort int
}

// NewStats creates zeroed run statistics
func NewStats() *Stats { return &Stats{} }

// IncFeedsProcessed counts a feed worker reaching completion
func (s *Stats) IncFeedsProcessed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedsProcessed++
}

// IncArticlesPosted counts a successfully submitted draft
func (s *Stats) IncArticlesPosted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articlesPosted++
}

// IncDuplicatesSkipped counts an article skipped as already processed
func (s *Stats) IncDuplicatesSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duplicatesSkipped++
}

// IncImagesIncluded counts a post assembled with an image element
func (s *Stats) IncImagesIncluded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imagesIncluded++
}

// IncArticlesSkippedShort counts an article below the minimum word count
func (s *Stats) IncArticlesSkippedShort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articlesSkippedShort++
}

// Snapshot returns a copy of the current counters
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		FeedsProcessed:       s.feedsProcessed,
		ArticlesPosted:       s.articlesPosted,
		DuplicatesSkipped:    s.duplicatesSkipped,
		ImagesIncluded:       s.imagesIncluded,
		ArticlesSkippedShort: s.articlesSkippedShort,
	}
}
