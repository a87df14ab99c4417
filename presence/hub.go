package presence

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"soundbridge/contract"
	"soundbridge/domain"
	"soundbridge/domain/event"
	"soundbridge/errors"
)

// MessageStore is the slice of the persistence gateway the hub calls
// synchronously inside event handlers. Durability decides ordering:
// the sender is acknowledged only after Store returns.
type MessageStore interface {
	Store(message domain.Message) (domain.Message, error)
	MarkRead(sender, recipient string) (int, error)
	UnreadSenders(recipient string) ([]string, error)
}

// Censor scrubs message content before it is persisted.
type Censor interface {
	Censor(original string) string
}

// Conn is the hub-side view of one client connection. It starts
// unidentified, becomes identified once the client asserts its user ID,
// and is closed on disconnect. No events are accepted once closed.
type Conn struct {
	ID     string
	sink   contract.EventSink
	mu     sync.Mutex
	userID string
	closed bool
}

// UserID returns the identified user, or "" while unidentified.
func (c *Conn) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

func (c *Conn) identify(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
}

func (c *Conn) close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.closed = true
	return true
}

// Hub wires inbound client events to registry mutations and
// persistence calls, and fans out notifications to affected
// connections. One Hub per process; registries are created with it and
// live for its lifetime.
type Hub struct {
	log      *slog.Logger
	registry *Registry
	activity *ActivityRegistry
	unread   *UnreadIndex
	messages MessageStore
	censor   Censor

	mu    sync.RWMutex
	conns map[string]*Conn
}

func NewHub(log *slog.Logger, messages MessageStore, censor Censor) *Hub {
	return &Hub{
		log:      log,
		registry: NewRegistry(),
		activity: NewActivityRegistry(),
		unread:   NewUnreadIndex(),
		messages: messages,
		censor:   censor,
		conns:    make(map[string]*Conn),
	}
}

// Registry exposes the presence registry for read-side consumers
// (friend listings show online state).
func (h *Hub) Registry() *Registry { return h.registry }

// Attach registers a new unidentified connection and returns its
// hub-side handle.
func (h *Hub) Attach(sink contract.EventSink) *Conn {
	conn := &Conn{ID: uuid.New().String(), sink: sink}
	h.mu.Lock()
	h.conns[conn.ID] = conn
	h.mu.Unlock()
	h.log.Debug("connection attached", "conn", conn.ID)
	return conn
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Dispatch routes one raw inbound frame to its handler. Handler
// failures and panics never escape: they are reported back to the
// originating connection as a message-error and the hub keeps running.
func (h *Hub) Dispatch(ctx context.Context, conn *Conn, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("event handler panicked", "conn", conn.ID, "panic", r)
			h.send(ctx, conn, event.Event{Event: event.MessageError, Data: "internal error"})
		}
	}()

	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		h.send(ctx, conn, event.Event{Event: event.MessageError, Data: "malformed frame"})
		return
	}
	payload, err := event.Decode(f.Event, f.Data)
	if err != nil {
		h.send(ctx, conn, event.Event{Event: event.MessageError, Data: err.Error()})
		return
	}

	if err := h.handle(ctx, conn, f.Event, payload); err != nil {
		h.log.Warn("event rejected", "event", f.Event, "conn", conn.ID, "error", err)
		h.send(ctx, conn, event.Event{Event: event.MessageError, Data: err.Error()})
	}
}

func (h *Hub) handle(ctx context.Context, conn *Conn, name string, payload any) error {
	if name == event.Identify {
		h.Identify(ctx, conn, payload.(event.IdentifyPayload).UserID)
		return nil
	}
	// Every other event requires an identified connection.
	if conn.UserID() == "" {
		return errors.ErrNotIdentified
	}
	switch p := payload.(type) {
	case event.ActivityPayload:
		h.UpdateActivity(ctx, p.UserID, p.Activity)
		return nil
	case event.SendMessagePayload:
		return h.SendMessage(ctx, conn, p)
	case event.MarkReadPayload:
		return h.MarkMessagesRead(ctx, conn, p)
	case event.FriendRequestNotifyPayload:
		h.NotifyFriendRequest(ctx, p.From, p.To)
		return nil
	case event.AcceptFriendRequestPayload:
		h.NotifyFriendRequestAccepted(ctx, p.RequestID, p.From)
		return nil
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownEvent, name)
	}
}

// Identify binds the connection to a user, records presence, defaults
// the activity to Idle, reconciles the unread index from persisted
// unread rows, then replies with the full-state snapshot and announces
// the user to everyone.
func (h *Hub) Identify(ctx context.Context, conn *Conn, userID string) {
	conn.identify(userID)
	h.registry.Record(userID, conn.ID)
	if _, ok := h.activity.Get(userID); !ok {
		h.activity.Set(userID, domain.ActivityIdle)
	}

	// The in-memory index starts empty for users who were offline when
	// messages arrived; the read flags on disk are authoritative.
	senders, err := h.messages.UnreadSenders(userID)
	if err != nil {
		h.log.Warn("unread reconciliation failed", "user", userID, "error", err)
	} else {
		h.unread.Replace(userID, senders)
	}

	h.send(ctx, conn, event.Event{Event: event.InitializeState, Data: h.snapshot()})
	h.send(ctx, conn, event.Event{
		Event: event.UnreadUpdated,
		Data:  event.UnreadPayload{UnreadFrom: h.unread.SendersFor(userID)},
	})
	h.broadcast(ctx, event.Event{Event: event.UserOnline, Data: userID})
	h.log.Info("user identified", "user", userID, "conn", conn.ID)
}

// UpdateActivity upserts the activity and broadcasts the change to all
// connections, the sender included.
func (h *Hub) UpdateActivity(ctx context.Context, userID, activity string) {
	h.activity.Set(userID, activity)
	h.broadcast(ctx, event.Event{
		Event: event.ActivityUpdated,
		Data:  event.ActivityPayload{UserID: userID, Activity: activity},
	})
}

// SendMessage persists the message, then acknowledges the sender and,
// if the recipient is online, delivers it together with the updated
// unread set. The unread index is only touched after the store call
// succeeds, so a failed send leaves no trace.
func (h *Hub) SendMessage(ctx context.Context, conn *Conn, p event.SendMessagePayload) error {
	content := p.Content
	if h.censor != nil {
		content = h.censor.Censor(content)
	}
	stored, err := h.messages.Store(domain.Message{
		Sender:    p.Sender,
		Recipient: p.Recipient,
		Content:   content,
		SentAt:    p.SentAt,
		Read:      p.Read,
	})
	if err != nil {
		return fmt.Errorf("message not saved: %w", err)
	}

	h.unread.MarkUnread(p.Recipient, p.Sender)

	h.send(ctx, conn, event.Event{Event: event.MessageSent, Data: stored})
	if recipient, online := h.connFor(p.Recipient); online {
		h.send(ctx, recipient, event.Event{Event: event.MessageReceived, Data: stored})
		h.send(ctx, recipient, event.Event{
			Event: event.UnreadUpdated,
			Data:  event.UnreadPayload{UnreadFrom: h.unread.SendersFor(p.Recipient)},
		})
	}
	return nil
}

// MarkMessagesRead flips all unread messages from p.From to the calling
// user. The recipient is always the identified user of the connection;
// a payload naming someone else is refused.
func (h *Hub) MarkMessagesRead(ctx context.Context, conn *Conn, p event.MarkReadPayload) error {
	to := conn.UserID()
	if p.To != "" && p.To != to {
		return fmt.Errorf("%w: cannot mark another user's messages", errors.ErrNotAuthorized)
	}

	if _, err := h.messages.MarkRead(p.From, to); err != nil {
		return fmt.Errorf("mark read not persisted: %w", err)
	}
	h.unread.ClearSender(to, p.From)

	h.send(ctx, conn, event.Event{
		Event: event.UnreadUpdated,
		Data:  event.UnreadPayload{UnreadFrom: h.unread.SendersFor(to)},
	})
	return nil
}

// NotifyFriendRequest forwards a friend-request ping to the recipient
// if online. Persistence happened on the HTTP side; this is presence
// only.
func (h *Hub) NotifyFriendRequest(ctx context.Context, from, to string) {
	if conn, online := h.connFor(to); online {
		h.send(ctx, conn, event.Event{
			Event: event.FriendRequestReceived,
			Data:  event.FriendRequestPayload{From: from},
		})
	}
}

// NotifyFriendRequestAccepted tells the original sender, if online,
// that their request was accepted.
func (h *Hub) NotifyFriendRequestAccepted(ctx context.Context, requestID, from string) {
	if conn, online := h.connFor(from); online {
		h.send(ctx, conn, event.Event{Event: event.FriendRequestAccepted, Data: requestID})
	}
}

// Disconnect tears the connection down. If it had identified, presence
// and activity entries are dropped and the departure is broadcast. A
// second disconnect for the same connection is a no-op.
func (h *Hub) Disconnect(ctx context.Context, conn *Conn) {
	if !conn.close() {
		return
	}
	h.mu.Lock()
	delete(h.conns, conn.ID)
	h.mu.Unlock()

	userID, found := h.registry.Remove(conn.ID)
	if !found {
		return
	}
	h.activity.Remove(userID)
	h.unread.ClearUser(userID)
	h.broadcast(ctx, event.Event{Event: event.UserOffline, Data: userID})
	h.log.Info("user disconnected", "user", userID, "conn", conn.ID)
}

// snapshot builds the initialize-state payload. Sorted so two clients
// identifying at the same moment see identical state.
func (h *Hub) snapshot() event.StatePayload {
	online := h.registry.OnlineUsers()
	sort.Strings(online)

	activities := h.activity.Snapshot()
	entries := make([]event.ActivityEntry, 0, len(activities))
	for userID, activity := range activities {
		entries = append(entries, event.ActivityEntry{userID, activity})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })

	return event.StatePayload{OnlineUsers: online, Activities: entries}
}

func (h *Hub) connFor(userID string) (*Conn, bool) {
	connID, ok := h.registry.ConnectionFor(userID)
	if !ok {
		return nil, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	conn, ok := h.conns[connID]
	return conn, ok
}

func (h *Hub) send(ctx context.Context, conn *Conn, e event.Event) {
	if err := conn.sink.Consume(ctx, e); err != nil {
		h.log.Warn("sink rejected event", "conn", conn.ID, "event", e.Event, "error", err)
	}
}

func (h *Hub) broadcast(ctx context.Context, e event.Event) {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	// Deterministic delivery order keeps scenario tests reproducible.
	sort.Slice(conns, func(i, j int) bool { return conns[i].ID < conns[j].ID })
	for _, conn := range conns {
		h.send(ctx, conn, e)
	}
}
