package didway

import (
	"context"
	"log/slog"

	"github.com/didway/didway/pkg/didway/message"
	"github.com/didway/didway/pkg/didway/observability"
	"github.com/didway/didway/pkg/didway/registry"
)

// Operation names used in dispatch logs, errors, metrics, and spans.
const (
	opDIDCreate                               = "did_create"
	opDIDResolve                              = "did_resolve"
	opDIDUpdate                               = "did_update"
	opDIDCommReceive                          = "didcomm_receive"
	opDIDCommSend                             = "didcomm_send"
	opRunCustomFunction                       = "run_custom_function"
	opVCZKPCreateCredentialSchema             = "vc_zkp_create_credential_schema"
	opVCZKPCreateCredentialDefinition         = "vc_zkp_create_credential_definition"
	opVCZKPCreateCredentialProposal           = "vc_zkp_create_credential_proposal"
	opVCZKPCreateCredentialOffer              = "vc_zkp_create_credential_offer"
	opVCZKPRequestCredential                  = "vc_zkp_request_credential"
	opVCZKPCreateRevocationRegistryDefinition = "vc_zkp_create_revocation_registry_definition"
	opVCZKPUpdateRevocationRegistry           = "vc_zkp_update_revocation_registry"
	opVCZKPIssueCredential                    = "vc_zkp_issue_credential"
	opVCZKPFinishCredential                   = "vc_zkp_finish_credential"
	opVCZKPRequestProof                       = "vc_zkp_request_proof"
	opVCZKPPresentProof                       = "vc_zkp_present_proof"
	opVCZKPRevokeCredential                   = "vc_zkp_revoke_credential"
	opVCZKPVerifyProof                        = "vc_zkp_verify_proof"
)

// Engine is the single point of contact for interacting with DIDs and VCs.
// It owns an ordered plugin registry and a message router, fans every
// operation out to all registered plugins concurrently, and folds their
// three-way results into one deterministic response.
//
// Build the registry once via RegisterPlugin / RegisterMessageConsumer and
// treat it as immutable afterwards; dispatch never mutates membership.
type Engine struct {
	plugins *registry.Ordered[Plugin]
	router  *message.Router
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an Engine with an empty registry.
//
//	engine := didway.New(didway.WithLogger(logger))
//	engine.RegisterPlugin(examplePlugin)
//
//	results, err := engine.DIDCreate(ctx, "did:example", "", "")
//	if err != nil {
//	    return err
//	}
//	if len(results) > 0 {
//	    fmt.Println("created did:", results[0].Text)
//	}
func New(opts ...Option) *Engine {
	e := &Engine{
		plugins: registry.New[Plugin](),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.router = message.NewRouter(
		message.WithLogger(e.logger),
		message.WithMetrics(e.metrics),
	)
	return e
}

// RegisterPlugin appends a plugin at the registry tail. Registration is
// constant time, never fails, and performs no duplicate detection. A nil
// plugin is ignored.
func (e *Engine) RegisterPlugin(p Plugin) {
	if p == nil {
		e.logger.Warn("ignoring nil plugin registration")
		return
	}
	index := e.plugins.Append(p)
	e.logger.Debug("registered plugin", slog.Int("plugin_index", index))
}

// PluginCount returns the number of registered plugins.
func (e *Engine) PluginCount() int {
	return e.plugins.Len()
}

// RegisterMessageConsumer registers a consumer with a fixed topic
// subscription set. A consumer registered with no topics never receives
// messages.
func (e *Engine) RegisterMessageConsumer(topics []string, c message.Consumer) {
	e.router.Subscribe(topics, c)
}

// SendMessage routes a raw message envelope to every consumer subscribed to
// its type and returns their non-empty replies in registration order. See
// the message package for envelope and error semantics.
func (e *Engine) SendMessage(ctx context.Context, raw string) ([]string, error) {
	return e.router.Send(ctx, raw)
}

// DIDCreate creates a new DID on every plugin that caters to the given
// method. Plugins may also persist a DID document, depending on their
// implementation. Returns one artifact per responding plugin, in
// registration order; an empty result means no plugin handled the method.
func (e *Engine) DIDCreate(ctx context.Context, didMethod, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opDIDCreate, didMethod, func(ctx context.Context, p Plugin) (Result, error) {
		return p.DIDCreate(ctx, didMethod, options, payload)
	})
}

// DIDResolve fetches data about a DID, usually a DID document.
func (e *Engine) DIDResolve(ctx context.Context, did string) ([]Artifact, error) {
	return e.dispatch(ctx, opDIDResolve, did, func(ctx context.Context, p Plugin) (Result, error) {
		return p.DIDResolve(ctx, did)
	})
}

// DIDUpdate updates data related to a DID.
func (e *Engine) DIDUpdate(ctx context.Context, did, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opDIDUpdate, did, func(ctx context.Context, p Plugin) (Result, error) {
		return p.DIDUpdate(ctx, did, options, payload)
	})
}

// DIDCommReceive processes a received DIDComm message. A plugin that can
// interpret the message may prepare a matching response, which is usually
// returned here and may additionally be sent by the plugin itself.
func (e *Engine) DIDCommReceive(ctx context.Context, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opDIDCommReceive, opDIDCommReceive, func(ctx context.Context, p Plugin) (Result, error) {
		return p.DIDCommReceive(ctx, options, payload)
	})
}

// DIDCommSend processes a DIDComm message and prepares it for sending. It
// may be sent, depending on the configuration of the underlying plugins.
func (e *Engine) DIDCommSend(ctx context.Context, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opDIDCommSend, opDIDCommSend, func(ctx context.Context, p Plugin) (Result, error) {
		return p.DIDCommSend(ctx, options, payload)
	})
}

// RunCustomFunction calls a plugin-defined function outside the fixed
// operation set. This keeps the Engine usable for project-specific calls
// without extending the capability interface.
func (e *Engine) RunCustomFunction(ctx context.Context, method, function, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opRunCustomFunction, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.RunCustomFunction(ctx, method, function, options, payload)
	})
}

// VCZKPCreateCredentialSchema creates a new credential schema.
func (e *Engine) VCZKPCreateCredentialSchema(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPCreateCredentialSchema, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPCreateCredentialSchema(ctx, method, options, payload)
	})
}

// VCZKPCreateCredentialDefinition creates a new credential definition bound
// to one credential schema.
func (e *Engine) VCZKPCreateCredentialDefinition(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPCreateCredentialDefinition, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPCreateCredentialDefinition(ctx, method, options, payload)
	})
}

// VCZKPCreateCredentialProposal creates a credential proposal, the first
// message in the credential issuance flow.
func (e *Engine) VCZKPCreateCredentialProposal(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPCreateCredentialProposal, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPCreateCredentialProposal(ctx, method, options, payload)
	})
}

// VCZKPCreateCredentialOffer creates a credential offer in response to a
// credential proposal.
func (e *Engine) VCZKPCreateCredentialOffer(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPCreateCredentialOffer, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPCreateCredentialOffer(ctx, method, options, payload)
	})
}

// VCZKPRequestCredential creates a credential request in response to a
// credential offer.
func (e *Engine) VCZKPRequestCredential(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPRequestCredential, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPRequestCredential(ctx, method, options, payload)
	})
}

// VCZKPCreateRevocationRegistryDefinition creates a new revocation registry
// definition.
func (e *Engine) VCZKPCreateRevocationRegistryDefinition(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPCreateRevocationRegistryDefinition, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPCreateRevocationRegistryDefinition(ctx, method, options, payload)
	})
}

// VCZKPUpdateRevocationRegistry updates a revocation registry after
// revoking one or more credentials.
func (e *Engine) VCZKPUpdateRevocationRegistry(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPUpdateRevocationRegistry, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPUpdateRevocationRegistry(ctx, method, options, payload)
	})
}

// VCZKPIssueCredential issues a new credential.
func (e *Engine) VCZKPIssueCredential(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPIssueCredential, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPIssueCredential(ctx, method, options, payload)
	})
}

// VCZKPFinishCredential finishes a credential after issuance, e.g. by
// incorporating the prover's master secret into the credential signature.
func (e *Engine) VCZKPFinishCredential(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPFinishCredential, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPFinishCredential(ctx, method, options, payload)
	})
}

// VCZKPRequestProof requests a zero-knowledge proof for one or more
// credentials.
func (e *Engine) VCZKPRequestProof(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPRequestProof, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPRequestProof(ctx, method, options, payload)
	})
}

// VCZKPPresentProof presents a proof in response to a proof request.
func (e *Engine) VCZKPPresentProof(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPPresentProof, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPPresentProof(ctx, method, options, payload)
	})
}

// VCZKPRevokeCredential revokes a credential. The published revocation
// registry must afterwards be updated with the returned information.
func (e *Engine) VCZKPRevokeCredential(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPRevokeCredential, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPRevokeCredential(ctx, method, options, payload)
	})
}

// VCZKPVerifyProof verifies one or multiple proofs from a proof
// presentation.
func (e *Engine) VCZKPVerifyProof(ctx context.Context, method, options, payload string) ([]Artifact, error) {
	return e.dispatch(ctx, opVCZKPVerifyProof, method, func(ctx context.Context, p Plugin) (Result, error) {
		return p.VCZKPVerifyProof(ctx, method, options, payload)
	})
}
