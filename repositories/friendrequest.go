//go:generate go run go.uber.org/mock/mockgen -source=friendrequest.go -destination=../mocks/mock_friendrequest_repository.go -package=mocks
package repositories

import (
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"soundbridge/domain"
	"soundbridge/errors"
)

type IFriendRequestRepository interface {
	Create(sender, recipient string) (domain.FriendRequest, error)
	Get(id uuid.UUID) (domain.FriendRequest, error)
	SetStatus(id uuid.UUID, status domain.RequestStatus) (domain.FriendRequest, error)
	IncomingPending(userID string) ([]domain.FriendRequest, error)
	OutgoingByStatus(userID string, status domain.RequestStatus) ([]domain.FriendRequest, error)
}

type FriendRequestRepository struct {
	db *badger.DB
}

func NewFriendRequestRepository(db *badger.DB) FriendRequestRepository {
	return FriendRequestRepository{db: db}
}

// The primary key is "freq:{a}:{b}" over the ordered user pair, so the
// store itself enforces the one-document-per-pair invariant whatever
// the direction. "freqid:{id}" resolves request IDs to pair keys.
func requestKey(a, b string) []byte    { return []byte("freq:" + pairKey(a, b)) }
func requestIDKey(id uuid.UUID) []byte { return []byte("freqid:" + id.String()) }

// Create inserts a pending request. Any existing request between the
// pair, in either direction and whatever its status, blocks creation.
func (f FriendRequestRepository) Create(sender, recipient string) (domain.FriendRequest, error) {
	request := domain.FriendRequest{
		ID:        uuid.New(),
		Sender:    sender,
		Recipient: recipient,
		Status:    domain.RequestPending,
		CreatedAt: time.Now().UTC(),
	}
	err := f.db.Update(func(txn *badger.Txn) error {
		key := requestKey(sender, recipient)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrRequestExists
		}
		bytes, err := json.Marshal(request)
		if err != nil {
			return err
		}
		if err = txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(requestIDKey(request.ID), key)
	})
	if err != nil {
		return domain.FriendRequest{}, err
	}
	return request, nil
}

func (f FriendRequestRepository) Get(id uuid.UUID) (domain.FriendRequest, error) {
	var request domain.FriendRequest
	err := f.db.View(func(txn *badger.Txn) error {
		var err error
		request, err = getRequest(txn, id)
		return err
	})
	return request, err
}

// SetStatus moves a pending request into a terminal status. Terminal
// states never revert; a second transition is refused.
func (f FriendRequestRepository) SetStatus(id uuid.UUID, status domain.RequestStatus) (domain.FriendRequest, error) {
	var request domain.FriendRequest
	err := f.db.Update(func(txn *badger.Txn) error {
		var err error
		request, err = getRequest(txn, id)
		if err != nil {
			return err
		}
		if request.Closed() {
			return errors.ErrRequestClosed
		}
		request.Status = status
		bytes, err := json.Marshal(request)
		if err != nil {
			return err
		}
		return txn.Set(requestKey(request.Sender, request.Recipient), bytes)
	})
	if err != nil {
		return domain.FriendRequest{}, err
	}
	return request, nil
}

// IncomingPending lists the pending requests addressed to userID.
func (f FriendRequestRepository) IncomingPending(userID string) ([]domain.FriendRequest, error) {
	all, err := f.scanRequests()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(r domain.FriendRequest, _ int) bool {
		return r.Recipient == userID && r.Status == domain.RequestPending
	}), nil
}

// OutgoingByStatus lists requests userID sent that carry the given
// status, for the notification page's outgoing/rejected tabs.
func (f FriendRequestRepository) OutgoingByStatus(userID string, status domain.RequestStatus) ([]domain.FriendRequest, error) {
	all, err := f.scanRequests()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(r domain.FriendRequest, _ int) bool {
		return r.Sender == userID && r.Status == status
	}), nil
}

func (f FriendRequestRepository) scanRequests() ([]domain.FriendRequest, error) {
	var requests []domain.FriendRequest
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte("freq:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var request domain.FriendRequest
				if err := json.Unmarshal(value, &request); err != nil {
					return err
				}
				requests = append(requests, request)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return requests, err
}

func getRequest(txn *badger.Txn, id uuid.UUID) (domain.FriendRequest, error) {
	item, err := txn.Get(requestIDKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.FriendRequest{}, errors.ErrRequestNotFound
	}
	if err != nil {
		return domain.FriendRequest{}, err
	}
	var pairRef []byte
	if err = item.Value(func(value []byte) error {
		pairRef = append([]byte(nil), value...)
		return nil
	}); err != nil {
		return domain.FriendRequest{}, err
	}

	item, err = txn.Get(pairRef)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	var request domain.FriendRequest
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &request)
	})
	return request, err
}
