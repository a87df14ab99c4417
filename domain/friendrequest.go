package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// FriendRequest links two users. At most one document exists per
// unordered user pair, whatever the direction or status.
// Pending transitions exactly once to accepted or rejected; both are
// terminal.
type FriendRequest struct {
	ID        uuid.UUID     `json:"id"`
	Sender    string        `json:"sender"`
	Recipient string        `json:"recipient"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Closed reports whether the request reached a terminal status.
func (r FriendRequest) Closed() bool {
	return r.Status == RequestAccepted || r.Status == RequestRejected
}
