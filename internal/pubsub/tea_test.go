package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousListener_RelaysBrokerEvents(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listener := NewContinuousListener(ctx, broker)

	broker.Publish(AttributesEvent, "caption")

	msg := listener.Listen()()
	event, ok := msg.(Event[string])
	require.True(t, ok)
	assert.Equal(t, AttributesEvent, event.Type)
	assert.Equal(t, "caption", event.Payload)
}

func TestContinuousListener_NilAfterBrokerClose(t *testing.T) {
	broker := NewBroker[string]()
	listener := NewContinuousListener(context.Background(), broker)
	broker.Close()

	assert.Nil(t, listener.Listen()())
}

func TestListenCmd_NilOnContextCancel(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	cancel()

	assert.Nil(t, ListenCmd(ctx, ch)())
}
