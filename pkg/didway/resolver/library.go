package resolver

import (
	"context"
	"log/slog"

	"github.com/didway/didway/pkg/didway/registry"
)

// Library aggregates registered DID and VC resolvers. Registries are
// ordered and append-only; build them once via the Register methods and
// treat them as immutable afterwards.
type Library struct {
	didResolvers *registry.Ordered[DIDResolver]
	vcResolvers  *registry.Ordered[VCResolver]
	loggers      *registry.Ordered[Logger]
	logger       *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithLogger sets the structured logger for aggregation logging.
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLibrary creates a Library with empty registries.
func NewLibrary(opts ...LibraryOption) *Library {
	l := &Library{
		didResolvers: registry.New[DIDResolver](),
		vcResolvers:  registry.New[VCResolver](),
		loggers:      registry.New[Logger](),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RegisterDIDResolver appends a DID resolver at the registry tail.
func (l *Library) RegisterDIDResolver(r DIDResolver) {
	if r == nil {
		l.logger.Warn("ignoring nil did resolver registration")
		return
	}
	l.didResolvers.Append(r)
}

// RegisterVCResolver appends a VC resolver at the registry tail.
func (l *Library) RegisterVCResolver(r VCResolver) {
	if r == nil {
		l.logger.Warn("ignoring nil vc resolver registration")
		return
	}
	l.vcResolvers.Append(r)
}

// RegisterLogger appends a logger to the fan-out list.
func (l *Library) RegisterLogger(lg Logger) {
	if lg == nil {
		l.logger.Warn("ignoring nil logger registration")
		return
	}
	l.loggers.Append(lg)
}

// Log passes the message to every registered logger in registration order.
func (l *Library) Log(message, level string) {
	l.loggers.Range(func(_ int, lg Logger) bool {
		lg.Log(message, level)
		return true
	})
}

// CheckDID checks a DID document against all registered resolvers. The
// document is considered valid if at least one resolver confirms it.
// Resolvers signal "not responsible" and "invalid" through the same error
// channel; if every resolver fails, for either reason, CheckDID returns
// ErrDIDNotValid with no further detail.
func (l *Library) CheckDID(ctx context.Context, did, value string) error {
	slots := l.didResolvers.Snapshot()
	l.logger.Debug("checking did document",
		slog.String("did", did), slog.Int("resolvers", len(slots)))
	ok := anyConfirms(ctx, slots, func(ctx context.Context, r DIDResolver) error {
		return r.CheckDID(ctx, did, value)
	})
	if !ok {
		return ErrDIDNotValid
	}
	return nil
}

// CheckVC checks a VC document against all registered resolvers, with the
// same semantics as CheckDID. Returns ErrVCNotValid if no resolver
// confirms the document.
func (l *Library) CheckVC(ctx context.Context, vcID, value string) error {
	slots := l.vcResolvers.Snapshot()
	l.logger.Debug("checking vc document",
		slog.String("vc_id", vcID), slog.Int("resolvers", len(slots)))
	ok := anyConfirms(ctx, slots, func(ctx context.Context, r VCResolver) error {
		return r.CheckVC(ctx, vcID, value)
	})
	if !ok {
		return ErrVCNotValid
	}
	return nil
}

// GetDIDDocument fetches the document for the given DID. All resolvers are
// invoked concurrently and the first successful response wins; losing
// invocations run to completion in the background so their side effects
// are not lost. Returns ErrGetDIDDocument if every resolver fails;
// per-resolver detail is discarded.
func (l *Library) GetDIDDocument(ctx context.Context, did string) (string, error) {
	slots := l.didResolvers.Snapshot()
	l.logger.Debug("fetching did document",
		slog.String("did", did), slog.Int("resolvers", len(slots)))
	value, ok := firstSuccess(ctx, slots, func(ctx context.Context, r DIDResolver) (string, error) {
		return r.GetDIDDocument(ctx, did)
	})
	if !ok {
		return "", ErrGetDIDDocument
	}
	return value, nil
}

// GetVCDocument fetches the document for the given VC id, with the same
// race semantics as GetDIDDocument. Returns ErrGetVCDocument if every
// resolver fails.
func (l *Library) GetVCDocument(ctx context.Context, vcID string) (string, error) {
	slots := l.vcResolvers.Snapshot()
	l.logger.Debug("fetching vc document",
		slog.String("vc_id", vcID), slog.Int("resolvers", len(slots)))
	value, ok := firstSuccess(ctx, slots, func(ctx context.Context, r VCResolver) (string, error) {
		return r.GetVCDocument(ctx, vcID)
	})
	if !ok {
		return "", ErrGetVCDocument
	}
	return value, nil
}

// SetDIDDocument stores the document on every registered resolver. The
// write succeeds only if every resolver succeeds; any single failure
// returns ErrSetDIDDocument. Writes already committed by resolvers that
// succeeded are not rolled back - no compensation or transactional
// guarantee is provided.
func (l *Library) SetDIDDocument(ctx context.Context, did, value string) error {
	slots := l.didResolvers.Snapshot()
	l.logger.Debug("storing did document",
		slog.String("did", did), slog.Int("resolvers", len(slots)))
	err := allSucceed(ctx, slots, func(ctx context.Context, r DIDResolver) error {
		return r.SetDIDDocument(ctx, did, value)
	})
	if err != nil {
		return ErrSetDIDDocument
	}
	return nil
}

// SetVCDocument stores the document on every registered resolver, with the
// same all-or-nothing semantics and missing rollback as SetDIDDocument.
// Returns ErrSetVCDocument on any failure.
func (l *Library) SetVCDocument(ctx context.Context, vcID, value string) error {
	slots := l.vcResolvers.Snapshot()
	l.logger.Debug("storing vc document",
		slog.String("vc_id", vcID), slog.Int("resolvers", len(slots)))
	err := allSucceed(ctx, slots, func(ctx context.Context, r VCResolver) error {
		return r.SetVCDocument(ctx, vcID, value)
	})
	if err != nil {
		return ErrSetVCDocument
	}
	return nil
}
