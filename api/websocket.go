package api

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"

	"soundbridge/domain/event"
	"soundbridge/errors"
)

// sendBuffer bounds how far a slow reader may lag before the hub stops
// waiting for it.
const sendBuffer = 64

// ConnLike is the slice of *websocket.Conn the client pumps need,
// narrowed so tests can drive them with an in-memory fake.
type ConnLike interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(int, []byte) error
	Close() error
}

// Client adapts one websocket connection into an event sink the hub can
// push to. Consume never blocks the hub: frames go through a buffered
// channel drained by WritePump, and a full channel drops the client.
type Client struct {
	conn ConnLike
	send chan []byte
	done chan struct{}
}

func NewClient(conn ConnLike) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// Consume queues one outbound frame. Implements contract.EventSink.
func (c *Client) Consume(_ context.Context, e event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return errors.ErrAlreadyClosed
	case c.send <- data:
		return nil
	default:
		return errors.ErrSlowConsumer
	}
}

// WritePump drains the send channel onto the wire. Runs in its own
// goroutine until Stop or a write failure.
func (c *Client) WritePump() {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}

// Stop wakes the write pump and closes the underlying connection.
// Safe to call more than once.
func (c *Client) Stop() {
	select {
	case <-c.done:
		return
	default:
		close(c.done)
	}
	_ = c.conn.Close()
}

// handleSocket is the websocket endpoint body: attach to the hub, pump
// writes in the background, and feed every inbound frame to the hub
// until the connection drops.
func (s *Server) handleSocket(wsConn *websocket.Conn) {
	ctx := context.Background()
	client := NewClient(wsConn)
	conn := s.hub.Attach(client)

	go client.WritePump()
	defer func() {
		s.hub.Disconnect(ctx, conn)
		client.Stop()
	}()

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			return
		}
		s.hub.Dispatch(ctx, conn, data)
	}
}
