package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/didway/didway/pkg/didway/registry"
)

// completion carries one resolver's outcome to the racing receiver.
type completion struct {
	index int
	value string
	err   error
}

// firstSuccess launches call on every slot concurrently and returns the
// first successful value observed, or ok=false if every call failed (or
// there are no slots).
//
// The completion channel is buffered to the registry size, so losing
// invocations never block: once a winner is returned they keep running in
// the background and their side effects still land. Sibling invocations
// are not cancelled.
func firstSuccess[V any](ctx context.Context, slots []*registry.Slot[V], call func(context.Context, V) (string, error)) (string, bool) {
	if len(slots) == 0 {
		return "", false
	}

	done := make(chan completion, len(slots))
	for i, slot := range slots {
		go func(i int, slot *registry.Slot[V]) {
			slot.Do(func(v V) {
				value, err := call(ctx, v)
				done <- completion{index: i, value: value, err: err}
			})
		}(i, slot)
	}

	for range slots {
		c := <-done
		if c.err == nil {
			return c.value, true
		}
	}
	return "", false
}

// anyConfirms launches call on every slot concurrently and reports whether
// at least one call succeeded. Same racing and no-cancellation semantics
// as firstSuccess.
func anyConfirms[V any](ctx context.Context, slots []*registry.Slot[V], call func(context.Context, V) error) bool {
	_, ok := firstSuccess(ctx, slots, func(ctx context.Context, v V) (string, error) {
		return "", call(ctx, v)
	})
	return ok
}

// allSucceed launches call on every slot concurrently and waits for all of
// them. Returns the first error encountered, nil if every call succeeded.
// Zero slots succeed vacuously. The group context is cancelled on the
// first failure; resolvers may observe it, but invocations already in
// flight are awaited regardless and their effects are not rolled back.
func allSucceed[V any](ctx context.Context, slots []*registry.Slot[V], call func(context.Context, V) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, slot := range slots {
		g.Go(func() error {
			var err error
			slot.Do(func(v V) {
				err = call(gctx, v)
			})
			return err
		})
	}
	return g.Wait()
}
