package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"soundbridge/errors"
)

func TestDecode(t *testing.T) {
	t.Run("should accept identify as a bare string", func(t *testing.T) {
		req := require.New(t)

		payload, err := Decode(Identify, []byte(`"alice"`))

		req.NoError(err)
		req.Equal(IdentifyPayload{UserID: "alice"}, payload)
	})

	t.Run("should accept identify as an object", func(t *testing.T) {
		req := require.New(t)

		payload, err := Decode(Identify, []byte(`{"userId":"alice"}`))

		req.NoError(err)
		req.Equal(IdentifyPayload{UserID: "alice"}, payload)
	})

	t.Run("should reject an empty identify", func(t *testing.T) {
		req := require.New(t)

		_, err := Decode(Identify, []byte(`""`))
		req.Error(err)

		_, err = Decode(Identify, []byte(`{}`))
		req.Error(err)
	})

	t.Run("should decode a complete send-message payload", func(t *testing.T) {
		req := require.New(t)

		payload, err := Decode(SendMessage,
			[]byte(`{"sender":"alice","recipient":"bob","content":"hey"}`))

		req.NoError(err)
		p := payload.(SendMessagePayload)
		req.Equal("alice", p.Sender)
		req.Equal("bob", p.Recipient)
		req.Equal("hey", p.Content)
	})

	t.Run("should reject a send-message without content", func(t *testing.T) {
		req := require.New(t)

		_, err := Decode(SendMessage, []byte(`{"sender":"alice","recipient":"bob"}`))

		req.Error(err)
	})

	t.Run("should allow mark-messages-read without the optional to field", func(t *testing.T) {
		req := require.New(t)

		payload, err := Decode(MarkMessagesRead, []byte(`{"from":"bob"}`))

		req.NoError(err)
		req.Equal(MarkReadPayload{From: "bob"}, payload)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		req := require.New(t)

		_, err := Decode(UpdateActivity, []byte(`{`))

		req.Error(err)
	})

	t.Run("should reject an unknown event name", func(t *testing.T) {
		req := require.New(t)

		_, err := Decode("self-destruct", []byte(`{}`))

		req.ErrorIs(err, errors.ErrUnknownEvent)
	})
}
