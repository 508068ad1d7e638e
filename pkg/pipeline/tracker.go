package pipeline

import "sync"

// Ident uniquely identifies an article within a run
type Ident struct {
	Title string
	URL   string
}

// Tracker is the run-scoped set of processed article identifiers shared by
// all feed workers. It only lives for one pipeline run, duplicates across
// runs are not detected.
type Tracker struct {
	mu   sync.Mutex
	seen map[Ident]struct{}
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[Ident]struct{})}
}

// Seen reports membership without inserting
func (t *Tracker) Seen(id Ident) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.seen[id]
	return ok
}

// CheckAndMark atomically tests membership and inserts when absent. It
// returns true when the identifier was newly added; two workers racing on
// the same identifier cannot both observe true.
func (t *Tracker) CheckAndMark(id Ident) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[id]; ok {
		return false
	}
	t.seen[id] = struct{}{}
	return true
}
