package didway

import "context"

// Plugin is the capability interface every registered handler satisfies.
//
// A plugin implements some subset of the identity-document operations below.
// Operations a plugin does not care about are inherited from
// UnimplementedPlugin and report StatusNotImplemented, so partial-capability
// plugins carry no boilerplate.
//
// Arguments follow one convention throughout:
//   - the first string is the operation target (a method identifier such as
//     "did:example", or a subject/credential identifier)
//   - options is an opaque, plugin-defined string, typically structured data
//     such as authentication context
//   - payload is opaque, operation-specific data
//
// A plugin returns a hard error only for real failures; "not my method" is
// expressed through Ignored, not an error. During a dispatch a plugin is
// never invoked concurrently with itself; plugins only need to be safe
// across sequential calls.
type Plugin interface {
	// DIDCreate creates a new DID. May also persist a DID document for it,
	// depending on the plugin implementation.
	DIDCreate(ctx context.Context, didMethod, options, payload string) (Result, error)

	// DIDResolve fetches data about a DID, usually a DID document.
	DIDResolve(ctx context.Context, did string) (Result, error)

	// DIDUpdate updates data related to a DID.
	DIDUpdate(ctx context.Context, did, options, payload string) (Result, error)

	// DIDCommReceive processes a received DIDComm message and may prepare a
	// matching response for it.
	DIDCommReceive(ctx context.Context, options, payload string) (Result, error)

	// DIDCommSend processes a DIDComm message and prepares it for sending.
	DIDCommSend(ctx context.Context, options, payload string) (Result, error)

	// RunCustomFunction calls a plugin-defined function outside the fixed
	// operation set, keyed by a caller-supplied function name.
	RunCustomFunction(ctx context.Context, method, function, options, payload string) (Result, error)

	// VCZKPCreateCredentialSchema creates a new credential schema. The schema
	// specifies the optional and mandatory properties a credential includes.
	VCZKPCreateCredentialSchema(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPCreateCredentialDefinition creates a new credential definition.
	// A definition holds cryptographic key material bound to one schema and
	// is needed by an issuer before issuance.
	VCZKPCreateCredentialDefinition(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPCreateCredentialProposal creates a credential proposal, the first
	// message in the credential issuance flow.
	VCZKPCreateCredentialProposal(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPCreateCredentialOffer creates a credential offer in response to a
	// credential proposal.
	VCZKPCreateCredentialOffer(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPRequestCredential creates a credential request in response to a
	// credential offer.
	VCZKPRequestCredential(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPCreateRevocationRegistryDefinition creates a new revocation
	// registry definition. The public part holds the material for
	// non-revocation proofs; the private part stays with the registry owner.
	VCZKPCreateRevocationRegistryDefinition(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPUpdateRevocationRegistry updates a revocation registry after one
	// or more credentials have been revoked.
	VCZKPUpdateRevocationRegistry(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPIssueCredential issues a new credential. Requires an issued
	// schema, a credential definition, an active revocation registry, and a
	// credential request.
	VCZKPIssueCredential(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPFinishCredential finishes a credential after issuance, e.g. by
	// incorporating the prover's master secret into the signature.
	VCZKPFinishCredential(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPRequestProof requests a zero-knowledge proof for one or more
	// credentials issued under one or more schemas.
	VCZKPRequestProof(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPPresentProof presents a proof in response to a proof request.
	VCZKPPresentProof(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPRevokeCredential revokes a credential. The published revocation
	// registry must afterwards be updated with the returned information.
	VCZKPRevokeCredential(ctx context.Context, method, options, payload string) (Result, error)

	// VCZKPVerifyProof verifies one or multiple proofs from a proof
	// presentation.
	VCZKPVerifyProof(ctx context.Context, method, options, payload string) (Result, error)
}

// UnimplementedPlugin provides NotImplemented defaults for every operation.
// Embed it in a plugin and override only the operations the plugin supports:
//
//	type ExamplePlugin struct {
//	    didway.UnimplementedPlugin
//	}
//
//	func (p *ExamplePlugin) DIDResolve(ctx context.Context, did string) (didway.Result, error) {
//	    if !strings.HasPrefix(did, "did:example:") {
//	        return didway.Ignored(), nil
//	    }
//	    return didway.Success(`{"id":"` + did + `"}`), nil
//	}
type UnimplementedPlugin struct{}

var _ Plugin = UnimplementedPlugin{}

// DIDCreate reports not implemented.
func (UnimplementedPlugin) DIDCreate(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// DIDResolve reports not implemented.
func (UnimplementedPlugin) DIDResolve(context.Context, string) (Result, error) {
	return NotImplemented(), nil
}

// DIDUpdate reports not implemented.
func (UnimplementedPlugin) DIDUpdate(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// DIDCommReceive reports not implemented.
func (UnimplementedPlugin) DIDCommReceive(context.Context, string, string) (Result, error) {
	return NotImplemented(), nil
}

// DIDCommSend reports not implemented.
func (UnimplementedPlugin) DIDCommSend(context.Context, string, string) (Result, error) {
	return NotImplemented(), nil
}

// RunCustomFunction reports not implemented.
func (UnimplementedPlugin) RunCustomFunction(context.Context, string, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPCreateCredentialSchema reports not implemented.
func (UnimplementedPlugin) VCZKPCreateCredentialSchema(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPCreateCredentialDefinition reports not implemented.
func (UnimplementedPlugin) VCZKPCreateCredentialDefinition(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPCreateCredentialProposal reports not implemented.
func (UnimplementedPlugin) VCZKPCreateCredentialProposal(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPCreateCredentialOffer reports not implemented.
func (UnimplementedPlugin) VCZKPCreateCredentialOffer(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPRequestCredential reports not implemented.
func (UnimplementedPlugin) VCZKPRequestCredential(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPCreateRevocationRegistryDefinition reports not implemented.
func (UnimplementedPlugin) VCZKPCreateRevocationRegistryDefinition(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPUpdateRevocationRegistry reports not implemented.
func (UnimplementedPlugin) VCZKPUpdateRevocationRegistry(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPIssueCredential reports not implemented.
func (UnimplementedPlugin) VCZKPIssueCredential(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPFinishCredential reports not implemented.
func (UnimplementedPlugin) VCZKPFinishCredential(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPRequestProof reports not implemented.
func (UnimplementedPlugin) VCZKPRequestProof(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPPresentProof reports not implemented.
func (UnimplementedPlugin) VCZKPPresentProof(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPRevokeCredential reports not implemented.
func (UnimplementedPlugin) VCZKPRevokeCredential(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}

// VCZKPVerifyProof reports not implemented.
func (UnimplementedPlugin) VCZKPVerifyProof(context.Context, string, string, string) (Result, error) {
	return NotImplemented(), nil
}
