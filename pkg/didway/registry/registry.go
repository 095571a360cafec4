package registry

import "sync"

// Ordered is an append-only, insertion-ordered registry.
// Registration order is significant: it defines result ordering and
// deterministic tie-breaks during dispatch. Entries are never removed,
// replaced, or deduplicated.
type Ordered[V any] struct {
	mu    sync.RWMutex
	slots []*Slot[V]
}

// New creates a new empty ordered registry.
func New[V any]() *Ordered[V] {
	return &Ordered[V]{}
}

// Append adds a value at the registry tail and returns its index.
// Append never fails and performs no duplicate detection.
func (r *Ordered[V]) Append(value V) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot := &Slot[V]{value: value, index: len(r.slots)}
	r.slots = append(r.slots, slot)
	return slot.index
}

// Len returns the number of registered entries.
func (r *Ordered[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

// Snapshot returns the registered slots in insertion order.
// The returned slice is a copy; the slots themselves are shared, so
// Slot.Do still serializes access to each entry.
func (r *Ordered[V]) Snapshot() []*Slot[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Slot[V], len(r.slots))
	copy(out, r.slots)
	return out
}

// Range iterates over entries in insertion order.
// Return false from fn to stop early. Iteration uses a snapshot, so
// appends during iteration do not affect the current pass.
func (r *Ordered[V]) Range(fn func(index int, value V) bool) {
	for _, slot := range r.Snapshot() {
		if !fn(slot.index, slot.value) {
			return
		}
	}
}

// Slot holds one registered entry together with its exclusive-access guard.
// No two dispatch-originated calls run against the same entry concurrently,
// even though distinct entries run in parallel.
type Slot[V any] struct {
	mu    sync.Mutex
	value V
	index int
}

// Index returns the insertion position of this slot.
func (s *Slot[V]) Index() int {
	return s.index
}

// Value returns the registered entry without acquiring the guard.
// Use Do for calls that must hold the exclusive-access path.
func (s *Slot[V]) Value() V {
	return s.value
}

// Do invokes fn with the entry while holding the slot's guard.
// Calls through Do on the same slot are strictly sequential.
func (s *Slot[V]) Do(fn func(V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.value)
}
