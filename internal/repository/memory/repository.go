package memory

import (
	"sync"
	"time"
)

// Snapshot is the last output printed for a view.
type Snapshot struct {
	Output    string
	UpdatedAt time.Time
}

type Repository struct {
	snapshots map[string]Snapshot
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{snapshots: make(map[string]Snapshot)}
}

func (r *Repository) SaveSnapshot(view string, snapshot Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[view] = snapshot
}

func (r *Repository) GetSnapshot(view string) (Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.snapshots[view]
	return s, ok
}

// Update stores output for view and reports whether it differs from what
// was stored before.
func (r *Repository) Update(view, output string, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.snapshots[view]
	if ok && prev.Output == output {
		return false
	}
	r.snapshots[view] = Snapshot{Output: output, UpdatedAt: at}
	return true
}
