package presence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("should report online after record and offline after remove", func(t *testing.T) {
		req := require.New(t)
		registry := NewRegistry()

		registry.Record("alice", "conn-1")

		req.True(registry.IsOnline("alice"))
		connID, ok := registry.ConnectionFor("alice")
		req.True(ok)
		req.Equal("conn-1", connID)

		userID, found := registry.Remove("conn-1")
		req.True(found)
		req.Equal("alice", userID)
		req.False(registry.IsOnline("alice"))
	})

	t.Run("should keep at most one connection per user", func(t *testing.T) {
		req := require.New(t)
		registry := NewRegistry()

		registry.Record("alice", "conn-1")
		registry.Record("alice", "conn-2")

		connID, ok := registry.ConnectionFor("alice")
		req.True(ok)
		req.Equal("conn-2", connID)
		req.Len(registry.OnlineUsers(), 1)

		// The overwritten connection no longer maps to anyone.
		_, found := registry.Remove("conn-1")
		req.False(found)
		req.True(registry.IsOnline("alice"))
	})

	t.Run("should not drop a reconnected user when the old connection leaves late", func(t *testing.T) {
		req := require.New(t)
		registry := NewRegistry()

		registry.Record("alice", "conn-1")
		registry.Record("alice", "conn-2")

		// conn-1's disconnect arrives after the reconnect.
		_, found := registry.Remove("conn-1")
		req.False(found)
		req.True(registry.IsOnline("alice"))

		userID, found := registry.Remove("conn-2")
		req.True(found)
		req.Equal("alice", userID)
		req.False(registry.IsOnline("alice"))
	})

	t.Run("should tolerate removing an unknown connection", func(t *testing.T) {
		req := require.New(t)
		registry := NewRegistry()

		_, found := registry.Remove("ghost")
		req.False(found)
	})

	t.Run("should snapshot all online users", func(t *testing.T) {
		req := require.New(t)
		registry := NewRegistry()

		registry.Record("alice", "conn-1")
		registry.Record("bob", "conn-2")

		req.ElementsMatch([]string{"alice", "bob"}, registry.OnlineUsers())
	})
}

func TestActivityRegistry(t *testing.T) {
	t.Run("should upsert and read back the activity", func(t *testing.T) {
		req := require.New(t)
		registry := NewActivityRegistry()

		registry.Set("alice", "Idle")
		registry.Set("alice", "Listening to Kind of Blue by Miles Davis")

		activity, ok := registry.Get("alice")
		req.True(ok)
		req.Equal("Listening to Kind of Blue by Miles Davis", activity)
	})

	t.Run("should forget a removed user", func(t *testing.T) {
		req := require.New(t)
		registry := NewActivityRegistry()

		registry.Set("alice", "Idle")
		registry.Remove("alice")

		_, ok := registry.Get("alice")
		req.False(ok)
	})

	t.Run("should snapshot a copy, not the live map", func(t *testing.T) {
		req := require.New(t)
		registry := NewActivityRegistry()
		registry.Set("alice", "Idle")

		snapshot := registry.Snapshot()
		snapshot["alice"] = "mutated"

		activity, _ := registry.Get("alice")
		req.Equal("Idle", activity)
	})
}

func TestUnreadIndex(t *testing.T) {
	t.Run("should collect distinct senders sorted", func(t *testing.T) {
		req := require.New(t)
		index := NewUnreadIndex()

		index.MarkUnread("alice", "carol")
		index.MarkUnread("alice", "bob")
		index.MarkUnread("alice", "bob")

		req.Equal([]string{"bob", "carol"}, index.SendersFor("alice"))
	})

	t.Run("should clear one sender and keep the rest", func(t *testing.T) {
		req := require.New(t)
		index := NewUnreadIndex()

		index.MarkUnread("alice", "bob")
		index.MarkUnread("alice", "carol")
		index.ClearSender("alice", "bob")

		req.Equal([]string{"carol"}, index.SendersFor("alice"))
	})

	t.Run("should tolerate clearing absent entries", func(t *testing.T) {
		req := require.New(t)
		index := NewUnreadIndex()

		index.ClearSender("alice", "bob")
		index.ClearUser("alice")

		req.Empty(index.SendersFor("alice"))
	})

	t.Run("should replace the whole set on reconciliation", func(t *testing.T) {
		req := require.New(t)
		index := NewUnreadIndex()

		index.MarkUnread("alice", "stale")
		index.Replace("alice", []string{"bob", "carol"})
		req.Equal([]string{"bob", "carol"}, index.SendersFor("alice"))

		index.Replace("alice", nil)
		req.Empty(index.SendersFor("alice"))
	})
}
