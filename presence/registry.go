// Package presence holds the in-process real-time state: who is online,
// what they are doing, and who has unread messages from whom. The three
// registries are pure data structures guarded by their own locks; all
// I/O and notification fan-out lives in the Hub.
package presence

import "sync"

// Registry is the authoritative "who is online right now" set for this
// process. It keeps a bidirectional user <-> connection mapping. A user
// holds at most one live connection: a later Record for the same user
// overwrites the earlier mapping.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string]string // user ID -> connection ID
	byConn map[string]string // connection ID -> user ID
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]string),
		byConn: make(map[string]string),
	}
}

// Record upserts the mapping for userID. Any previous connection for
// the same user is forgotten.
func (r *Registry) Record(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byUser[userID]; ok {
		delete(r.byConn, old)
	}
	r.byUser[userID] = connID
	r.byConn[connID] = userID
}

// Remove drops the mapping held by connID and returns the user it
// belonged to. A stale disconnect (no mapping) is not an error; the
// second return value is false.
func (r *Registry) Remove(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[connID]
	if !ok {
		return "", false
	}
	delete(r.byConn, connID)
	// Only drop the user entry if it still points at this connection;
	// a reconnect may already have overwritten it.
	if r.byUser[userID] == connID {
		delete(r.byUser, userID)
	}
	return userID, true
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUser[userID]
	return ok
}

// ConnectionFor returns the live connection ID for userID, if any.
func (r *Registry) ConnectionFor(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connID, ok := r.byUser[userID]
	return connID, ok
}

// OnlineUsers returns a snapshot of all online user IDs.
func (r *Registry) OnlineUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]string, 0, len(r.byUser))
	for userID := range r.byUser {
		users = append(users, userID)
	}
	return users
}
