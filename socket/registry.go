package socket

import (
	"log"
	"sync"
)

// Conn is the live-connection handle the registry tracks. socketio.Conn
// satisfies it; tests use fakes.
type Conn interface {
	ID() string
	Emit(event string, v ...interface{})
	Join(room string)
}

// Registry maps a user's display name to their current live connection. At
// most one connection per name: a re-register replaces the old handle, so
// reconnects and extra tabs resolve last-authenticated-wins. Handlers run on
// OS threads, so access is mutex-guarded.
//
// The registry is constructed once at server start and injected where
// needed; it is not package state.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Conn)}
}

// Register binds username to conn, replacing any previous handle.
func (r *Registry) Register(username string, conn Conn) {
	if username == "" || conn == nil {
		return
	}
	r.mu.Lock()
	r.conns[username] = conn
	r.mu.Unlock()
	log.Printf("✅ User %s bound to socket %s", username, conn.ID())
}

// Resolve returns the current connection for username. A false return means
// the user is offline; pushes to them are dropped and only the durable
// record survives.
func (r *Registry) Resolve(username string) (Conn, bool) {
	r.mu.RLock()
	conn, ok := r.conns[username]
	r.mu.RUnlock()
	return conn, ok
}

// UnregisterConn removes whichever entry holds the connection with the given
// id. A disconnect of a stale handle never evicts a newer registration for
// the same user, because the ids differ. O(n) scan is fine at this scale.
func (r *Registry) UnregisterConn(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for username, conn := range r.conns {
		if conn.ID() == connID {
			delete(r.conns, username)
			log.Printf("❌ User %s unbound from socket %s", username, connID)
			return
		}
	}
}

// Count returns the number of live registrations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
