package socket

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records emitted events; shared by the registry and router tests.
type fakeConn struct {
	id     string
	emits  []emittedEvent
	joined []string
}

type emittedEvent struct {
	event   string
	payload []interface{}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Emit(event string, v ...interface{}) {
	c.emits = append(c.emits, emittedEvent{event: event, payload: v})
}

func (c *fakeConn) Join(room string) { c.joined = append(c.joined, room) }

func TestRegistryResolveAfterRegister(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{id: "sock-1"}

	r.Register("alice", conn)

	got, ok := r.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "sock-1", got.ID())
	assert.Equal(t, 1, r.Count())
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", &fakeConn{id: "sock-old"})
	r.Register("alice", &fakeConn{id: "sock-new"})

	got, ok := r.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "sock-new", got.ID())
	assert.Equal(t, 1, r.Count())
}

func TestRegistryIgnoresEmptyNameAndNilConn(t *testing.T) {
	r := NewRegistry()
	r.Register("", &fakeConn{id: "sock-1"})
	r.Register("alice", nil)
	assert.Equal(t, 0, r.Count())
}

func TestRegistryUnregisterConn(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", &fakeConn{id: "sock-1"})

	r.UnregisterConn("sock-1")

	_, ok := r.Resolve("alice")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Count())
}

func TestRegistryStaleDisconnectKeepsNewerRegistration(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", &fakeConn{id: "sock-old"})
	r.Register("alice", &fakeConn{id: "sock-new"})

	// The old connection's disconnect arrives after the re-register.
	r.UnregisterConn("sock-old")

	got, ok := r.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, "sock-new", got.ID())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			name := fmt.Sprintf("user-%d", n)
			for j := 0; j < 100; j++ {
				r.Register(name, &fakeConn{id: fmt.Sprintf("sock-%d-%d", n, j)})
				r.Resolve(name)
				r.UnregisterConn(fmt.Sprintf("sock-%d-%d", n, j))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
