// Package resolver aggregates DID and VC document resolvers under
// per-operation policies.
//
// Where the core dispatcher collects all successes, the resolver Library
// folds differently per operation kind:
//
//   - reads (GetDIDDocument, GetVCDocument) race all resolvers and take the
//     first successful response
//   - writes (SetDIDDocument, SetVCDocument) are all-or-nothing: every
//     resolver must succeed
//   - checks (CheckDID, CheckVC) need any one resolver to confirm
//
// Outside the collect-all policy, per-resolver error detail is discarded:
// callers receive one of the generic sentinel errors below.
package resolver

import (
	"context"
	"errors"
)

// Sentinel errors for the aggregation policies. These are always fresh,
// generic messages; individual resolver errors are not retained.
var (
	// ErrDIDNotValid indicates no resolver confirmed the DID document.
	ErrDIDNotValid = errors.New("did document not valid")

	// ErrVCNotValid indicates no resolver confirmed the VC document.
	ErrVCNotValid = errors.New("vc document not valid")

	// ErrGetDIDDocument indicates every resolver failed to fetch the DID
	// document.
	ErrGetDIDDocument = errors.New("could not get did document")

	// ErrGetVCDocument indicates every resolver failed to fetch the VC
	// document.
	ErrGetVCDocument = errors.New("could not get vc document")

	// ErrSetDIDDocument indicates at least one resolver failed to store the
	// DID document.
	ErrSetDIDDocument = errors.New("could not set did document")

	// ErrSetVCDocument indicates at least one resolver failed to store the
	// VC document.
	ErrSetVCDocument = errors.New("could not set vc document")
)

// DIDResolver fetches, stores, and checks DID documents by their id.
type DIDResolver interface {
	// CheckDID checks the given DID document. A nil return confirms the
	// document. An error signals both "not responsible for this DID" and
	// "DID considered invalid" - the aggregation deliberately does not
	// distinguish the two.
	CheckDID(ctx context.Context, did, value string) error

	// GetDIDDocument fetches the document for the given DID.
	GetDIDDocument(ctx context.Context, did string) (string, error)

	// SetDIDDocument stores the document for the given DID.
	SetDIDDocument(ctx context.Context, did, value string) error
}

// VCResolver fetches, stores, and checks VC documents by their id.
type VCResolver interface {
	// CheckVC checks the given VC document. A nil return confirms the
	// document; an error means not responsible or invalid, without
	// distinction.
	CheckVC(ctx context.Context, vcID, value string) error

	// GetVCDocument fetches the document for the given VC id.
	GetVCDocument(ctx context.Context, vcID string) (string, error)

	// SetVCDocument stores the document for the given VC id.
	SetVCDocument(ctx context.Context, vcID, value string) error
}

// Logger receives every message passed to Library.Log. Registered loggers
// form a fan-out list: each one is invoked for each message.
type Logger interface {
	// Log logs the message with the given level. Level may be empty;
	// levels may differ based on environment.
	Log(message, level string)
}
