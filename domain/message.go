// Package domain contains core concepts of the music-sharing system.
// This file defines direct messages exchanged between users.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users.
// Content is immutable once stored; only Read may flip, and only from
// false to true.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sentAt"`
	Read      bool      `json:"read"`
}
