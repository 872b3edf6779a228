package websocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return &Client{
		ID:   uuid.New(),
		Send: make(chan []byte, 1),
		done: make(chan struct{}),
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()

	a := testClient()
	b := testClient()

	hub.Register(a)
	hub.Register(b)
	assert.Equal(t, 2, hub.Count())

	hub.Unregister(a)
	assert.Equal(t, 1, hub.Count())

	// Unregistering twice is harmless.
	hub.Unregister(a)
	assert.Equal(t, 1, hub.Count())
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	a := testClient()
	b := testClient()
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send:
			assert.Equal(t, "hello", string(msg))
		default:
			t.Fatal("expected a broadcast message")
		}
	}
}

func TestHubBroadcastSkipsFullBuffers(t *testing.T) {
	hub := NewHub()

	c := testClient()
	hub.Register(c)

	require.True(t, len(c.Send) < cap(c.Send))
	hub.Broadcast([]byte("one"))
	// Buffer is now full; the second broadcast is dropped, not blocked.
	hub.Broadcast([]byte("two"))

	msg := <-c.Send
	assert.Equal(t, "one", string(msg))
	assert.Empty(t, c.Send)
}
