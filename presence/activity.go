package presence

import "sync"

// ActivityRegistry maps a user ID to a free-text activity status, e.g.
// "Idle" or "Listening to X by Y". The string is stored opaquely; the
// registry attaches no meaning to it.
type ActivityRegistry struct {
	mu         sync.RWMutex
	activities map[string]string
}

func NewActivityRegistry() *ActivityRegistry {
	return &ActivityRegistry{activities: make(map[string]string)}
}

// Set upserts the activity for userID. No validation: any string goes.
func (a *ActivityRegistry) Set(userID, activity string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activities[userID] = activity
}

func (a *ActivityRegistry) Get(userID string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	activity, ok := a.activities[userID]
	return activity, ok
}

func (a *ActivityRegistry) Remove(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.activities, userID)
}

// Snapshot returns a copy of the whole activity map, for the
// initialize-state payload sent to a freshly identified connection.
func (a *ActivityRegistry) Snapshot() map[string]string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]string, len(a.activities))
	for userID, activity := range a.activities {
		out[userID] = activity
	}
	return out
}
