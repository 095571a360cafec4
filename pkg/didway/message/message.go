// Package message provides topic-based routing of generic messages to
// registered consumers.
//
// Unlike the general dispatcher, which always invokes every plugin and
// relies on Ignored results, the router filters participants before
// dispatch: a consumer declares its topic set once at registration and is
// only ever invoked for matching message types. Selected consumers are
// invoked concurrently with collect-all semantics - a hard error from any
// of them fails the whole send, naming the topic; otherwise the router
// returns the ordered list of non-empty replies.
package message

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for message routing.
var (
	// ErrInvalidEnvelope indicates the raw message was not a valid JSON
	// envelope.
	ErrInvalidEnvelope = errors.New("invalid message envelope")

	// ErrMissingType indicates the envelope carried no type field.
	ErrMissingType = errors.New("message type is required")
)

// Envelope is the generic message record. Type selects routing; Data is an
// embedded structured value passed through opaquely, as text, to the
// selected consumers.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ParseEnvelope decodes a raw message into an Envelope.
func ParseEnvelope(raw string) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if env.Type == "" {
		return Envelope{}, ErrMissingType
	}
	return env, nil
}

// DataText returns the embedded data as opaque text. A missing data field
// is rendered as "null" so consumers always receive valid JSON.
func (e Envelope) DataText() string {
	if len(e.Data) == 0 {
		return "null"
	}
	return string(e.Data)
}

// RouteError wraps a consumer failure with the topic being routed.
type RouteError struct {
	// Topic is the message type that was being routed.
	Topic string
	// ConsumerIndex is the registry position of the failing consumer.
	ConsumerIndex int
	// Err is the underlying consumer error.
	Err error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	return fmt.Sprintf("send message %q: consumer %d: %v", e.Topic, e.ConsumerIndex, e.Err)
}

// Unwrap returns the underlying consumer error.
func (e *RouteError) Unwrap() error {
	return e.Err
}
