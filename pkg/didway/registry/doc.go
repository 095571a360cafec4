// Package registry provides an ordered, append-only registry for plugin-like
// entries.
//
// Unlike a keyed registry, Ordered preserves insertion order and never
// removes or deduplicates entries: the position of an entry is part of the
// dispatch contract (aggregated results are assembled in registry order, and
// ties between concurrently completing entries are broken by ascending
// index).
//
// # Basic Usage
//
// Append entries and take a snapshot for fan-out:
//
//	r := registry.New[Plugin]()
//	r.Append(pluginA)
//	r.Append(pluginB)
//
//	for _, slot := range r.Snapshot() {
//	    go slot.Do(func(p Plugin) {
//	        // invoke p; calls on the same slot never overlap
//	    })
//	}
//
// # Exclusive Access
//
// Each Slot carries a mutex that serializes invocations of its entry. Many
// distinct entries run in parallel during a dispatch, but a single entry is
// never called concurrently - entries only need to be safe across sequential
// calls over their lifetime.
package registry
