package presence

import (
	"sort"
	"sync"
)

type Set map[string]struct{}

// UnreadIndex is a denormalized cache over the message store's read
// flag: recipient ID -> set of sender IDs with at least one unread
// message. The persisted read flag stays authoritative; this index only
// exists so notifications do not need a live query.
type UnreadIndex struct {
	mu      sync.RWMutex
	senders map[string]Set
}

func NewUnreadIndex() *UnreadIndex {
	return &UnreadIndex{senders: make(map[string]Set)}
}

// MarkUnread records that senderID has unread messages for
// recipientID. Adding an existing member is a no-op.
func (u *UnreadIndex) MarkUnread(recipientID, senderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.senders[recipientID]; !ok {
		u.senders[recipientID] = make(Set)
	}
	u.senders[recipientID][senderID] = struct{}{}
}

// ClearSender removes senderID from recipientID's set. No-op if either
// side is absent. Empty sets are dropped to avoid leaking entries.
func (u *UnreadIndex) ClearSender(recipientID, senderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	members, ok := u.senders[recipientID]
	if !ok {
		return
	}
	delete(members, senderID)
	if len(members) == 0 {
		delete(u.senders, recipientID)
	}
}

// SendersFor returns the sorted sender IDs with unread messages for
// recipientID; empty slice if none.
func (u *UnreadIndex) SendersFor(recipientID string) []string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	members := u.senders[recipientID]
	out := make([]string, 0, len(members))
	for senderID := range members {
		out = append(out, senderID)
	}
	sort.Strings(out)
	return out
}

// ClearUser drops the whole entry for userID (disconnect cleanup).
func (u *UnreadIndex) ClearUser(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.senders, userID)
}

// Replace swaps userID's set with the given senders, used when the
// index is reconciled from persisted unread rows on identify.
func (u *UnreadIndex) Replace(userID string, senderIDs []string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(senderIDs) == 0 {
		delete(u.senders, userID)
		return
	}
	members := make(Set, len(senderIDs))
	for _, id := range senderIDs {
		members[id] = struct{}{}
	}
	u.senders[userID] = members
}
