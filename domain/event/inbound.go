package event

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"soundbridge/errors"
)

var validate = validator.New()

type IdentifyPayload struct {
	UserID string `json:"userId" validate:"required"`
}

type SendMessagePayload struct {
	Sender    string    `json:"sender" validate:"required"`
	Recipient string    `json:"recipient" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	SentAt    time.Time `json:"sentAt"`
	Read      bool      `json:"read"`
}

type MarkReadPayload struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to"`
}

type FriendRequestNotifyPayload struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type AcceptFriendRequestPayload struct {
	RequestID string `json:"requestId" validate:"required"`
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
}

// Decode parses and validates the payload for an inbound event.
// Malformed or incomplete payloads are rejected here, before any
// registry logic runs.
func Decode(name string, data json.RawMessage) (any, error) {
	switch name {
	case Identify:
		return DecodeIdentify(data)
	case UpdateActivity:
		return decodeAs[ActivityPayload](data)
	case SendMessage:
		return decodeAs[SendMessagePayload](data)
	case MarkMessagesRead:
		return decodeAs[MarkReadPayload](data)
	case SendFriendRequest:
		return decodeAs[FriendRequestNotifyPayload](data)
	case AcceptFriendRequest:
		return decodeAs[AcceptFriendRequestPayload](data)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEvent, name)
	}
}

func decodeAs[T any](data json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("malformed payload: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("invalid payload: %w", err)
	}
	return payload, nil
}

// Identify payloads may arrive as a bare string (the user ID) for
// compatibility with the original clients; Decode handles the object
// form, DecodeIdentify accepts both.
func DecodeIdentify(data json.RawMessage) (IdentifyPayload, error) {
	var userID string
	if err := json.Unmarshal(data, &userID); err == nil {
		payload := IdentifyPayload{UserID: userID}
		if err = validate.Struct(payload); err != nil {
			return payload, fmt.Errorf("invalid payload: %w", err)
		}
		return payload, nil
	}
	return decodeAs[IdentifyPayload](data)
}
