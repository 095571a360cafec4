/*
Package didway provides provider-agnostic dispatch and aggregation for
identity-document plugins.

# Overview

didway is a Go library for frameworks that manage pluggable handlers for
DID-style subject management and VC-style credential and proof workflows.
Applications invoke one uniform operation; the Engine fans the call out to
every registered plugin concurrently and folds the heterogeneous outcomes
into one deterministic response. The actual cryptography, document
resolution, storage, and network logic live in the plugins - the core only
defines the capability interface and the aggregation semantics.

The library is agnostic to credential formats, cryptographic schemes,
storage engines, and wire protocols.

# Basic Usage

Implement a plugin by embedding UnimplementedPlugin and overriding the
operations it supports:

	type ExamplePlugin struct {
	    didway.UnimplementedPlugin
	}

	func (p *ExamplePlugin) DIDCreate(ctx context.Context, didMethod, options, payload string) (didway.Result, error) {
	    if didMethod != "did:example" {
	        return didway.Ignored(), nil
	    }
	    return didway.Success(`{"id":"did:example:123"}`), nil
	}

Register it with an Engine and dispatch:

	engine := didway.New()
	engine.RegisterPlugin(&ExamplePlugin{})

	results, err := engine.DIDCreate(ctx, "did:example", "", "")
	if err != nil {
	    log.Fatal(err)
	}
	for _, r := range results {
	    fmt.Println(r.Text)
	}

# Result Semantics

Every plugin invocation yields exactly one of three outcomes: not
implemented (the plugin does not support the operation), ignored (it
supports the operation but declined this request, e.g. a foreign DID
method), or success with an optional textual artifact. Dispatch drops the
first two and collects the successes in registration order, so a caller
cannot distinguish "no plugin implements this" from "every plugin declined"
- both produce an empty, non-error result.

A hard error from any plugin fails the whole dispatch with a DispatchError
naming the operation and target. Each plugin is invoked exactly once per
dispatch; there are no retries and no global timeout at this layer.

# Message Routing

The Engine also carries a topic-based message router. Consumers subscribe
to a fixed set of topics at registration; SendMessage parses a JSON
envelope, invokes only subscribed consumers, and returns their non-empty
replies in registration order. See the message package.

# Related Packages

The resolver package aggregates DID/VC document resolvers under three
further policies (race-first-success reads, all-or-nothing writes,
any-confirms checks). The storage package ships a reference resolver
backed by memory or SQLite with an optional expiring cache. The
observability package provides slog helpers, OpenTelemetry metrics, and
tracing for dispatches.
*/
package didway
