package benchmarks

import (
	"context"
	"testing"

	"github.com/didway/didway/pkg/didway/resolver"
	"github.com/didway/didway/pkg/didway/storage"
)

func buildLibrary(resolvers int) *resolver.Library {
	lib := resolver.NewLibrary()
	for i := 0; i < resolvers; i++ {
		lib.RegisterDIDResolver(storage.NewResolver(storage.NewStore()))
	}
	return lib
}

// BenchmarkGetDIDDocument_1 races a single resolver.
func BenchmarkGetDIDDocument_1(b *testing.B) {
	ctx := context.Background()
	lib := buildLibrary(1)
	_ = lib.SetDIDDocument(ctx, "did:example:123", "{}")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lib.GetDIDDocument(ctx, "did:example:123")
	}
}

// BenchmarkGetDIDDocument_8 races eight resolvers.
func BenchmarkGetDIDDocument_8(b *testing.B) {
	ctx := context.Background()
	lib := buildLibrary(8)
	_ = lib.SetDIDDocument(ctx, "did:example:123", "{}")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lib.GetDIDDocument(ctx, "did:example:123")
	}
}

// BenchmarkSetDIDDocument_8 writes through eight resolvers.
func BenchmarkSetDIDDocument_8(b *testing.B) {
	ctx := context.Background()
	lib := buildLibrary(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lib.SetDIDDocument(ctx, "did:example:123", "{}")
	}
}

// BenchmarkCachedGet measures a cache hit against the backing store.
func BenchmarkCachedGet(b *testing.B) {
	ctx := context.Background()
	cached := storage.NewCachedKV(storage.NewStore(), 64, 0)
	_ = cached.Set(ctx, "did:example:123", "{}")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cached.Get(ctx, "did:example:123")
	}
}
