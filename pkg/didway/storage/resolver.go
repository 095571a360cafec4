package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/didway/didway/pkg/didway/config"
	"github.com/didway/didway/pkg/didway/resolver"
)

// Errors signalled through the check channel. The resolver library does
// not distinguish the two; they are separate values only for readability.
var (
	errNotResponsibleDID = errors.New("not responsible for this did")
	errNotResponsibleVC  = errors.New("not responsible for this vc")
)

// Resolver adapts a KV document store into a DID and VC resolver pair.
// Gets and sets go straight through to the store. Checks accept the
// reserved target "test" and reject everything else, which makes the
// adapter useful as a baseline resolver in tests and demos.
type Resolver struct {
	kv KV
}

// Compile-time interface checks.
var (
	_ resolver.DIDResolver = (*Resolver)(nil)
	_ resolver.VCResolver  = (*Resolver)(nil)
)

// NewResolver wraps kv as a DID/VC resolver.
func NewResolver(kv KV) *Resolver {
	return &Resolver{kv: kv}
}

// CheckDID confirms the reserved target "test" and rejects all others.
// The rejection does not say whether the DID was invalid or merely not
// this resolver's responsibility.
func (r *Resolver) CheckDID(_ context.Context, did, _ string) error {
	if did == "test" {
		return nil
	}
	return errNotResponsibleDID
}

// GetDIDDocument fetches the document for the given DID from the store.
func (r *Resolver) GetDIDDocument(ctx context.Context, did string) (string, error) {
	return r.kv.Get(ctx, did)
}

// SetDIDDocument stores the document for the given DID.
func (r *Resolver) SetDIDDocument(ctx context.Context, did, value string) error {
	return r.kv.Set(ctx, did, value)
}

// CheckVC confirms the reserved target "test" and rejects all others,
// with the same ambiguity as CheckDID.
func (r *Resolver) CheckVC(_ context.Context, vcID, _ string) error {
	if vcID == "test" {
		return nil
	}
	return errNotResponsibleVC
}

// GetVCDocument fetches the document for the given VC id from the store.
func (r *Resolver) GetVCDocument(ctx context.Context, vcID string) (string, error) {
	return r.kv.Get(ctx, vcID)
}

// SetVCDocument stores the document for the given VC id.
func (r *Resolver) SetVCDocument(ctx context.Context, vcID, value string) error {
	return r.kv.Set(ctx, vcID, value)
}

// NewFromConfig builds a resolver from a storage config section.
//
// Keys:
//   - path: SQLite file path; empty means in-memory
//   - cache_capacity: LRU entries; 0 disables the cache
//   - cache_ttl: cache entry lifetime (default 5m, only with a cache)
//
// The returned close function releases the underlying store and is a
// no-op for in-memory storage.
func NewFromConfig(cfg config.Config) (*Resolver, func() error, error) {
	var kv KV
	closeFn := func() error { return nil }

	if path := cfg.String("path", ""); path != "" {
		sqlStore, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		kv = sqlStore
		closeFn = sqlStore.Close
	} else {
		kv = NewStore()
	}

	if capacity := cfg.Int("cache_capacity", 0); capacity > 0 {
		kv = NewCachedKV(kv, capacity, cfg.Duration("cache_ttl", 5*time.Minute))
	}

	return NewResolver(kv), closeFn, nil
}
