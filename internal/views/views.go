// Package views tracks the cached list views the dashboard serves and
// lets mutation pipelines mark them stale after a committed write, so
// the next read recomputes from the store.
package views

import "sync"

// Keys for the cached list views.
const (
	Invoices = "invoices"
	Team     = "team"
)

// Listing routes the presentation layer navigates to after a
// successful mutation.
const (
	InvoicesRoute = "/dashboard/invoices"
	TeamRoute     = "/dashboard/team"
)

type entry struct {
	payload any
	fresh   bool
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Get returns the cached payload for key, or false when the view has
// never been computed or was invalidated since.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok || !e.fresh {
		return nil, false
	}

	return e.payload, true
}

func (r *Registry) Put(key string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = entry{payload: payload, fresh: true}
}

// Invalidate marks key stale. Invalidating a view that was never
// cached is a no-op.
func (r *Registry) Invalidate(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return
	}

	e.fresh = false
	r.entries[key] = e
}
