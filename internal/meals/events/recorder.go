package events

import (
	"context"
	"sync"
)

// Recorder keeps published changes in memory. Useful in tests and for local
// runs without a broker.
type Recorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *Recorder) Publish(_ context.Context, change Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
	return nil
}

// Changes returns a copy of everything published so far.
func (r *Recorder) Changes() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Change(nil), r.changes...)
}
