package message

import (
	"context"
	"log/slog"
	"sync"

	"github.com/didway/didway/pkg/didway/observability"
	"github.com/didway/didway/pkg/didway/registry"
)

// Consumer handles messages routed to it. A consumer is invoked only for
// message types it subscribed to at registration time.
//
// Handle returns the reply text and ok=true to reply, or ok=false to
// consume the message silently. A non-nil error fails the whole send.
// Like plugins, a consumer is never invoked concurrently with itself.
type Consumer interface {
	Handle(ctx context.Context, messageType, messageData string) (reply string, ok bool, err error)
}

// subscription pairs a consumer with its fixed topic set.
type subscription struct {
	consumer Consumer
	topics   map[string]struct{}
}

// Router routes message envelopes to subscribed consumers and aggregates
// their replies. Registration order is significant: replies are returned
// in the order the consumers were subscribed.
type Router struct {
	consumers *registry.Ordered[subscription]
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the structured logger for routing logs.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder for routed messages.
func WithMetrics(m observability.MetricsRecorder) RouterOption {
	return func(r *Router) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewRouter creates a Router with an empty consumer registry.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		consumers: registry.New[subscription](),
		logger:    slog.Default(),
		metrics:   observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe appends a consumer with the given topic set. The set is fixed
// at registration: a consumer subscribed with no topics never receives
// messages. Subscribe never fails and performs no duplicate detection;
// a nil consumer is ignored.
func (r *Router) Subscribe(topics []string, c Consumer) {
	if c == nil {
		r.logger.Warn("ignoring nil consumer subscription")
		return
	}
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	index := r.consumers.Append(subscription{consumer: c, topics: set})
	r.logger.Debug("registered message consumer",
		slog.Int("consumer_index", index),
		slog.Int("topics", len(set)),
	)
}

// ConsumerCount returns the number of subscribed consumers.
func (r *Router) ConsumerCount() int {
	return r.consumers.Len()
}

// Send routes a raw JSON envelope to every consumer subscribed to its type
// and returns their non-empty replies in subscription order. Consumers not
// subscribed to the type are never invoked. A hard error from any selected
// consumer fails the whole send; zero selected consumers or zero replies is
// a valid non-error outcome.
func (r *Router) Send(ctx context.Context, raw string) ([]string, error) {
	env, err := ParseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	// Filter before dispatch, preserving registration order.
	var selected []*registry.Slot[subscription]
	for _, slot := range r.consumers.Snapshot() {
		if _, ok := slot.Value().topics[env.Type]; ok {
			selected = append(selected, slot)
		}
	}

	data := env.DataText()

	type reply struct {
		text string
		ok   bool
		err  error
	}
	replies := make([]reply, len(selected))

	var wg sync.WaitGroup
	for i, slot := range selected {
		wg.Add(1)
		go func(i int, slot *registry.Slot[subscription]) {
			defer wg.Done()
			slot.Do(func(sub subscription) {
				text, ok, err := sub.consumer.Handle(ctx, env.Type, data)
				replies[i] = reply{text: text, ok: ok, err: err}
			})
		}(i, slot)
	}
	wg.Wait()

	out := make([]string, 0, len(selected))
	for i, rep := range replies {
		if rep.err != nil {
			rerr := &RouteError{Topic: env.Type, ConsumerIndex: selected[i].Index(), Err: rep.err}
			r.metrics.RecordMessageSend(ctx, env.Type, len(selected), rerr)
			observability.LogMessageError(r.logger, env.Type, rerr)
			return nil, rerr
		}
		if rep.ok {
			out = append(out, rep.text)
		}
	}

	r.metrics.RecordMessageSend(ctx, env.Type, len(selected), nil)
	observability.LogMessageSend(r.logger, env.Type, len(selected), len(out))
	return out, nil
}
