//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"soundbridge/domain"
	"soundbridge/errors"
)

type IUserRepository interface {
	Upsert(user domain.User) (domain.User, error)
	Get(id string) (domain.User, error)
	GetByExternalID(externalID string) (domain.User, error)
	AddFriendship(a, b string) error
	Friends(id string) ([]domain.User, error)
	Recommended(id string) ([]domain.User, error)
	Count() (int, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) UserRepository {
	return UserRepository{db: db}
}

func userKey(id string) []byte      { return []byte("user:" + id) }
func externalKey(ext string) []byte { return []byte("userext:" + ext) }

// Upsert creates or refreshes the user record for an external identity.
// The identity provider is the source of profile fields; the friend set
// and internal ID survive updates untouched.
func (u UserRepository) Upsert(user domain.User) (domain.User, error) {
	err := u.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(externalKey(user.ExternalID))
		switch err {
		case nil:
			var id string
			if err = item.Value(func(value []byte) error {
				id = string(value)
				return nil
			}); err != nil {
				return err
			}
			existing, err := getUser(txn, id)
			if err != nil {
				return err
			}
			existing.FullName = user.FullName
			existing.ImageURL = user.ImageURL
			existing.Email = user.Email
			user = existing
		case badger.ErrKeyNotFound:
			user.ID = uuid.New().String()
			user.CreatedAt = time.Now().UTC()
			if err = txn.Set(externalKey(user.ExternalID), []byte(user.ID)); err != nil {
				return err
			}
		default:
			return err
		}
		return setUser(txn, user)
	})
	return user, err
}

func (u UserRepository) Get(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

func (u UserRepository) GetByExternalID(externalID string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(externalKey(externalID))
		if err == badger.ErrKeyNotFound {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		var id string
		if err = item.Value(func(value []byte) error {
			id = string(value)
			return nil
		}); err != nil {
			return err
		}
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

// AddFriendship inserts each user into the other's friend set in one
// transaction, keeping the relation symmetric. Adding an existing
// friend is a no-op, like $addToSet.
func (u UserRepository) AddFriendship(a, b string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		userA, err := getUser(txn, a)
		if err != nil {
			return err
		}
		userB, err := getUser(txn, b)
		if err != nil {
			return err
		}
		if !userA.IsFriend(b) {
			userA.Friends = append(userA.Friends, b)
			if err = setUser(txn, userA); err != nil {
				return err
			}
		}
		if !userB.IsFriend(a) {
			userB.Friends = append(userB.Friends, a)
			if err = setUser(txn, userB); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u UserRepository) Friends(id string) ([]domain.User, error) {
	var friends []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		user, err := getUser(txn, id)
		if err != nil {
			return err
		}
		for _, friendID := range user.Friends {
			friend, err := getUser(txn, friendID)
			if err != nil {
				return err
			}
			friends = append(friends, friend)
		}
		return nil
	})
	return friends, err
}

// Recommended lists users who are neither the given user nor already
// friends, for the "people you may know" panel.
func (u UserRepository) Recommended(id string) ([]domain.User, error) {
	me, err := u.Get(id)
	if err != nil {
		return nil, err
	}
	all, err := u.scanUsers()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(candidate domain.User, _ int) bool {
		return candidate.ID != me.ID && !me.IsFriend(candidate.ID)
	}), nil
}

func (u UserRepository) Count() (int, error) {
	users, err := u.scanUsers()
	return len(users), err
}

func (u UserRepository) scanUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte("user:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var user domain.User
				if err := json.Unmarshal(value, &user); err != nil {
					return err
				}
				users = append(users, user)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return users, err
}

func getUser(txn *badger.Txn, id string) (domain.User, error) {
	item, err := txn.Get(userKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	if err != nil {
		return domain.User{}, err
	}
	var user domain.User
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &user)
	})
	return user, err
}

func setUser(txn *badger.Txn, user domain.User) error {
	bytes, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return txn.Set(userKey(user.ID), bytes)
}
