package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"soundbridge/domain"
	"soundbridge/errors"
)

func TestFriendRequestRepository_Create(t *testing.T) {
	t.Run("should create a pending request readable by id", func(t *testing.T) {
		req := require.New(t)
		repo := NewFriendRequestRepository(newTestDB(t))

		request, err := repo.Create("alice", "bob")
		req.NoError(err)
		req.Equal(domain.RequestPending, request.Status)

		found, err := repo.Get(request.ID)
		req.NoError(err)
		req.Equal(request.ID, found.ID)
		req.Equal("alice", found.Sender)
		req.Equal("bob", found.Recipient)
	})

	t.Run("should enforce one request per pair in either direction", func(t *testing.T) {
		req := require.New(t)
		repo := NewFriendRequestRepository(newTestDB(t))

		_, err := repo.Create("alice", "bob")
		req.NoError(err)

		_, err = repo.Create("alice", "bob")
		req.ErrorIs(err, errors.ErrRequestExists)
		_, err = repo.Create("bob", "alice")
		req.ErrorIs(err, errors.ErrRequestExists)
	})

	t.Run("should report a missing request", func(t *testing.T) {
		req := require.New(t)
		repo := NewFriendRequestRepository(newTestDB(t))

		_, err := repo.Get(uuid.New())
		req.ErrorIs(err, errors.ErrRequestNotFound)
	})
}

func TestFriendRequestRepository_SetStatus(t *testing.T) {
	t.Run("should accept a pending request exactly once", func(t *testing.T) {
		req := require.New(t)
		repo := NewFriendRequestRepository(newTestDB(t))
		request, err := repo.Create("alice", "bob")
		req.NoError(err)

		accepted, err := repo.SetStatus(request.ID, domain.RequestAccepted)
		req.NoError(err)
		req.Equal(domain.RequestAccepted, accepted.Status)

		// Terminal states never revert.
		_, err = repo.SetStatus(request.ID, domain.RequestRejected)
		req.ErrorIs(err, errors.ErrRequestClosed)
	})
}

func TestFriendRequestRepository_Listings(t *testing.T) {
	t.Run("should split listings by direction and status", func(t *testing.T) {
		req := require.New(t)
		repo := NewFriendRequestRepository(newTestDB(t))

		incoming, err := repo.Create("bob", "alice")
		req.NoError(err)
		accepted, err := repo.Create("alice", "carol")
		req.NoError(err)
		_, err = repo.SetStatus(accepted.ID, domain.RequestAccepted)
		req.NoError(err)
		rejected, err := repo.Create("alice", "dave")
		req.NoError(err)
		_, err = repo.SetStatus(rejected.ID, domain.RequestRejected)
		req.NoError(err)

		pending, err := repo.IncomingPending("alice")
		req.NoError(err)
		req.Len(pending, 1)
		req.Equal(incoming.ID, pending[0].ID)

		acceptedOut, err := repo.OutgoingByStatus("alice", domain.RequestAccepted)
		req.NoError(err)
		req.Len(acceptedOut, 1)
		req.Equal(accepted.ID, acceptedOut[0].ID)

		rejectedOut, err := repo.OutgoingByStatus("alice", domain.RequestRejected)
		req.NoError(err)
		req.Len(rejectedOut, 1)
		req.Equal(rejected.ID, rejectedOut[0].ID)
	})
}
