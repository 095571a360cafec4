package message

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingConsumer replies with a running count of handled messages.
type countingConsumer struct {
	handled atomic.Int64
}

func (c *countingConsumer) Handle(_ context.Context, messageType, _ string) (string, bool, error) {
	n := c.handled.Add(1)
	return fmt.Sprintf("handled %d messages, last type %s", n, messageType), true, nil
}

// silentConsumer consumes without replying.
type silentConsumer struct {
	handled atomic.Int64
}

func (c *silentConsumer) Handle(context.Context, string, string) (string, bool, error) {
	c.handled.Add(1)
	return "", false, nil
}

// failingConsumer always returns a hard error.
type failingConsumer struct{}

func (failingConsumer) Handle(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("consumer exploded")
}

func TestSendRoutesBySubscribedType(t *testing.T) {
	counter := &countingConsumer{}

	router := NewRouter()
	router.Subscribe([]string{"message1", "message2"}, counter)

	replies, err := router.Send(context.Background(), `{"type":"message1","data":{}}`)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "handled 1 messages, last type message1", replies[0])

	replies, err = router.Send(context.Background(), `{"type":"message2","data":{}}`)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "handled 2 messages, last type message2", replies[0])

	// No subscriber for message3: zero replies, no error, counter untouched.
	replies, err = router.Send(context.Background(), `{"type":"message3","data":{}}`)
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.Equal(t, int64(2), counter.handled.Load())
}

func TestSendPreservesSubscriptionOrder(t *testing.T) {
	router := NewRouter()
	first := &countingConsumer{}
	second := &countingConsumer{}
	router.Subscribe([]string{"ping"}, first)
	router.Subscribe([]string{"ping"}, second)

	replies, err := router.Send(context.Background(), `{"type":"ping"}`)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "handled 1 messages, last type ping", replies[0])
	assert.Equal(t, "handled 1 messages, last type ping", replies[1])
}

func TestSendSilentConsumerProducesNoReply(t *testing.T) {
	router := NewRouter()
	silent := &silentConsumer{}
	router.Subscribe([]string{"ping"}, silent)

	replies, err := router.Send(context.Background(), `{"type":"ping"}`)
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.Equal(t, int64(1), silent.handled.Load())
}

func TestSendConsumerErrorFailsSend(t *testing.T) {
	router := NewRouter()
	router.Subscribe([]string{"ping"}, &countingConsumer{})
	router.Subscribe([]string{"ping"}, failingConsumer{})

	replies, err := router.Send(context.Background(), `{"type":"ping"}`)
	assert.Nil(t, replies)

	var rerr *RouteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "ping", rerr.Topic)
	assert.Equal(t, 1, rerr.ConsumerIndex)
}

func TestSendInvalidEnvelope(t *testing.T) {
	router := NewRouter()
	router.Subscribe([]string{"ping"}, &countingConsumer{})

	_, err := router.Send(context.Background(), `not json`)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)

	_, err = router.Send(context.Background(), `{"data":{}}`)
	assert.ErrorIs(t, err, ErrMissingType)
}

func TestSubscribeNilConsumer(t *testing.T) {
	router := NewRouter()
	router.Subscribe([]string{"ping"}, nil)
	assert.Zero(t, router.ConsumerCount())
}

func TestSubscribeNoTopics(t *testing.T) {
	counter := &countingConsumer{}
	router := NewRouter()
	router.Subscribe(nil, counter)

	replies, err := router.Send(context.Background(), `{"type":"ping"}`)
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.Zero(t, counter.handled.Load())
}

func TestSendPassesEnvelopeData(t *testing.T) {
	var got string
	router := NewRouter()
	router.Subscribe([]string{"echo"}, consumerFunc(func(_ context.Context, _, data string) (string, bool, error) {
		got = data
		return data, true, nil
	}))

	replies, err := router.Send(context.Background(), `{"type":"echo","data":{"key":"value"}}`)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.JSONEq(t, `{"key":"value"}`, got)

	// Missing data field surfaces as JSON null.
	_, err = router.Send(context.Background(), `{"type":"echo"}`)
	require.NoError(t, err)
	assert.Equal(t, "null", got)
}

// consumerFunc adapts a function to the Consumer interface.
type consumerFunc func(ctx context.Context, messageType, messageData string) (string, bool, error)

func (f consumerFunc) Handle(ctx context.Context, messageType, messageData string) (string, bool, error) {
	return f(ctx, messageType, messageData)
}
