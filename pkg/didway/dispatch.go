package didway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/didway/didway/pkg/didway/observability"
	"github.com/didway/didway/pkg/didway/registry"
)

// invokeFunc applies one operation to one plugin.
type invokeFunc func(ctx context.Context, p Plugin) (Result, error)

// outcome pairs one plugin invocation's result with its error.
type outcome struct {
	result Result
	err    error
}

// dispatch fans one operation out to every registered plugin concurrently
// and folds the outcomes with collect-all-successes semantics: wait for all
// invocations, fail the whole dispatch on any hard error (wrapping that
// error with operation and target), otherwise return the Success artifacts
// in registry order. Ignored and NotImplemented outcomes are dropped; an
// empty list is a valid non-error result.
func (e *Engine) dispatch(ctx context.Context, operation, target string, invoke invokeFunc) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrDispatchCancelled, operation, target, err)
	}

	dispatchID := fmt.Sprintf("disp-%s", uuid.New().String()[:8])
	logger := observability.EnrichLogger(e.logger, dispatchID, operation)
	slots := e.plugins.Snapshot()
	observability.LogDispatchStart(logger, target, len(slots))

	ctx, span := e.spans.StartDispatchSpan(ctx, operation, target)
	start := time.Now()

	outcomes := e.fanOut(ctx, slots, invoke)

	// Fold in registry order, never completion order. The first error by
	// ascending index fails the whole dispatch; plugins that had already
	// succeeded are not surfaced.
	artifacts := make([]Artifact, 0, len(outcomes))
	for i, out := range outcomes {
		if out.err != nil {
			derr := &DispatchError{Operation: operation, Target: target, PluginIndex: i, Err: out.err}
			e.metrics.RecordDispatch(ctx, operation, time.Since(start), derr)
			e.spans.EndSpanWithError(span, derr)
			observability.LogDispatchError(logger, target, derr)
			return nil, derr
		}
		e.metrics.RecordPluginResult(ctx, operation, out.result.Status().String())
		if out.result.Status() == StatusSuccess {
			artifacts = append(artifacts, out.result.Artifact())
		}
	}

	duration := time.Since(start)
	e.metrics.RecordDispatch(ctx, operation, duration, nil)
	e.spans.EndSpanWithError(span, nil)
	observability.LogDispatchComplete(logger, target, len(slots), len(artifacts), float64(duration.Milliseconds()))
	return artifacts, nil
}

// fanOut launches one invocation per plugin. All invocations are in flight
// before any is awaited; fanOut returns once every one has finished.
// Outcomes are indexed by registry position. Each slot's guard keeps a
// single plugin from being invoked concurrently with itself.
func (e *Engine) fanOut(ctx context.Context, slots []*registry.Slot[Plugin], invoke invokeFunc) []outcome {
	outcomes := make([]outcome, len(slots))

	var wg sync.WaitGroup
	for i, slot := range slots {
		wg.Add(1)
		go func(i int, slot *registry.Slot[Plugin]) {
			defer wg.Done()
			pctx, pspan := e.spans.StartPluginSpan(ctx, i)
			slot.Do(func(p Plugin) {
				r, err := invoke(pctx, p)
				outcomes[i] = outcome{result: r, err: err}
			})
			e.spans.EndSpanWithError(pspan, outcomes[i].err)
		}(i, slot)
	}
	wg.Wait()

	return outcomes
}
