//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"soundbridge/domain"
)

type IMessageRepository interface {
	Store(message domain.Message) (domain.Message, error)
	Between(a, b string) ([]domain.Message, error)
	MarkRead(sender, recipient string) (int, error)
	UnreadSenders(recipient string) ([]string, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// conversationKey builds the primary key
// "msg:{a}:{b}:{timestamp_padded}:{uuid}" where {a}:{b} is the
// lexicographically ordered user pair, so both directions of a
// conversation share one prefix and 19-digit zero padding keeps
// chronological order under lexicographical iteration. The UUID is a
// collision disconnector for same-nanosecond messages.
func conversationKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		pairKey(message.Sender, message.Recipient),
		message.SentAt.UnixNano(),
		message.ID,
	))
}

// unreadKey is the secondary index "unread:{recipient}:{sender}:..."
// pointing at the primary key. It exists while the message is unread
// and is deleted by MarkRead, so unread lookups are pure prefix scans.
func unreadKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("unread:%s:%s:%019d:%s",
		message.Recipient,
		message.Sender,
		message.SentAt.UnixNano(),
		message.ID,
	))
}

func pairKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// Store persists a message, assigning the server-side ID and timestamp
// when absent. The returned message is exactly what later reads will
// see; callers acknowledge senders with it.
func (m MessageRepository) Store(message domain.Message) (domain.Message, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}
	bytes, err := json.Marshal(message)
	if err != nil {
		return domain.Message{}, err
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(conversationKey(message), bytes); err != nil {
			return err
		}
		if message.Read {
			return nil
		}
		return txn.Set(unreadKey(message), conversationKey(message))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// Between returns every message exchanged between the two users,
// ascending by sent time. Key padding makes the natural iteration
// order chronological.
func (m MessageRepository) Between(a, b string) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:" + pairKey(a, b) + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var message domain.Message
				if err := json.Unmarshal(value, &message); err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return messages, err
}

// MarkRead flips every unread message from sender to recipient to
// read=true and drops the matching index entries, in a single
// transaction. Returns how many messages changed; zero matches is a
// valid no-op, so calling twice is safe.
func (m MessageRepository) MarkRead(sender, recipient string) (int, error) {
	flipped := 0
	err := m.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("unread:%s:%s:", recipient, sender))

		// Collect first: deleting while iterating is undefined.
		var indexKeys, primaryKeys [][]byte
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			indexKeys = append(indexKeys, item.KeyCopy(nil))
			primary, err := item.ValueCopy(nil)
			if err != nil {
				it.Close()
				return err
			}
			primaryKeys = append(primaryKeys, primary)
		}
		it.Close()

		for i, primary := range primaryKeys {
			item, err := txn.Get(primary)
			if err != nil {
				return err
			}
			var message domain.Message
			if err = item.Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			}); err != nil {
				return err
			}
			message.Read = true
			bytes, err := json.Marshal(message)
			if err != nil {
				return err
			}
			if err = txn.Set(primary, bytes); err != nil {
				return err
			}
			if err = txn.Delete(indexKeys[i]); err != nil {
				return err
			}
			flipped++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return flipped, nil
}

// UnreadSenders returns the distinct users with at least one unread
// message to recipient, sorted. Key-only scan over the unread index.
func (m MessageRepository) UnreadSenders(recipient string) ([]string, error) {
	seen := make(map[string]struct{})
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := "unread:" + recipient + ":"
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rest := string(it.Item().Key()[len(prefixStr):])
			sender, _, found := strings.Cut(rest, ":")
			if found {
				seen[sender] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	senders := make([]string, 0, len(seen))
	for sender := range seen {
		senders = append(senders, sender)
	}
	sort.Strings(senders)
	return senders, nil
}
