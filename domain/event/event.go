// Package event defines the wire protocol between clients and the
// presence hub: one named event per frame, JSON encoded. The names and
// payload shapes are the compatibility surface for existing clients and
// must not drift.
package event

// Inbound event names (client -> hub).
const (
	Identify            = "identify"
	UpdateActivity      = "update-activity"
	SendMessage         = "send-message"
	MarkMessagesRead    = "mark-messages-read"
	SendFriendRequest   = "send-friend-request"
	AcceptFriendRequest = "accept-friend-request"
)

// Outbound event names (hub -> client).
const (
	InitializeState       = "initialize-state"
	UserOnline            = "user-online"
	UserOffline           = "user-offline"
	ActivityUpdated       = "activity-updated"
	MessageSent           = "message-sent"
	MessageReceived       = "message-received"
	MessageError          = "message-error"
	UnreadUpdated         = "unread-updated"
	FriendRequestReceived = "friend-request-received"
	FriendRequestAccepted = "friend-request-accepted"
)

// Event is the frame envelope. Data carries the payload for the named
// event; for user-online, user-offline, message-error and
// friend-request-accepted it is a bare string.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ActivityEntry is one [userId, activity] pair of the snapshot, encoded
// as a two-element JSON array.
type ActivityEntry [2]string

// StatePayload is the full-state snapshot sent to a connection right
// after it identifies itself.
type StatePayload struct {
	OnlineUsers []string        `json:"onlineUsers"`
	Activities  []ActivityEntry `json:"activities"`
}

type ActivityPayload struct {
	UserID   string `json:"userId" validate:"required"`
	Activity string `json:"activity" validate:"required"`
}

type UnreadPayload struct {
	UnreadFrom []string `json:"unreadFrom"`
}

type FriendRequestPayload struct {
	From string `json:"from"`
}
