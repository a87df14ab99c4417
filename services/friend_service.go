package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"soundbridge/domain"
	"soundbridge/errors"
	"soundbridge/repositories"
)

type IFriendService interface {
	Send(senderID, recipientID string) (domain.FriendRequest, error)
	Accept(requestID uuid.UUID, byUserID string) (domain.FriendRequest, error)
	Reject(requestID uuid.UUID, byUserID string) (domain.FriendRequest, error)
	Overview(userID string) (RequestsOverview, error)
	OutgoingPending(userID string) ([]domain.FriendRequest, error)
	Friends(userID string) ([]domain.User, error)
	Recommended(userID string) ([]domain.User, error)
}

// FriendService owns the friend-request lifecycle: creation rules,
// recipient-only transitions, and the symmetric friend-set update on
// acceptance.
type FriendService struct {
	users    repositories.IUserRepository
	requests repositories.IFriendRequestRepository
	log      *slog.Logger
}

func NewFriendService(users repositories.IUserRepository,
	requests repositories.IFriendRequestRepository, log *slog.Logger) *FriendService {
	return &FriendService{users: users, requests: requests, log: log}
}

// RequestsOverview groups the listings the notification page shows.
type RequestsOverview struct {
	Incoming []domain.FriendRequest `json:"incoming"`
	Outgoing []domain.FriendRequest `json:"outgoing"`
	Rejected []domain.FriendRequest `json:"rejected"`
}

// Send creates a pending request. Blocked when sender and recipient
// are the same user, already friends, or any request already exists
// between the pair in either direction.
func (s *FriendService) Send(senderID, recipientID string) (domain.FriendRequest, error) {
	if senderID == recipientID {
		return domain.FriendRequest{}, errors.ErrSelfRequest
	}
	recipient, err := s.users.Get(recipientID)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	if _, err = s.users.Get(senderID); err != nil {
		return domain.FriendRequest{}, err
	}
	if recipient.IsFriend(senderID) {
		return domain.FriendRequest{}, errors.ErrAlreadyFriends
	}

	request, err := s.requests.Create(senderID, recipientID)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	s.log.Info("friend request created", "sender", senderID, "recipient", recipientID)
	return request, nil
}

// Accept moves the request to accepted and makes the friendship
// symmetric. Only the recipient may accept.
func (s *FriendService) Accept(requestID uuid.UUID, byUserID string) (domain.FriendRequest, error) {
	request, err := s.authorize(requestID, byUserID)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	request, err = s.requests.SetStatus(requestID, domain.RequestAccepted)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	if err = s.users.AddFriendship(request.Sender, request.Recipient); err != nil {
		return domain.FriendRequest{}, err
	}
	s.log.Info("friend request accepted", "request", requestID, "by", byUserID)
	return request, nil
}

// Reject moves the request to rejected. Only the recipient may reject.
func (s *FriendService) Reject(requestID uuid.UUID, byUserID string) (domain.FriendRequest, error) {
	if _, err := s.authorize(requestID, byUserID); err != nil {
		return domain.FriendRequest{}, err
	}
	request, err := s.requests.SetStatus(requestID, domain.RequestRejected)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	s.log.Info("friend request rejected", "request", requestID, "by", byUserID)
	return request, nil
}

func (s *FriendService) authorize(requestID uuid.UUID, byUserID string) (domain.FriendRequest, error) {
	request, err := s.requests.Get(requestID)
	if err != nil {
		return domain.FriendRequest{}, err
	}
	if request.Recipient != byUserID {
		return domain.FriendRequest{}, fmt.Errorf(
			"%w: only the recipient may act on a friend request", errors.ErrNotAuthorized)
	}
	return request, nil
}

func (s *FriendService) Overview(userID string) (RequestsOverview, error) {
	incoming, err := s.requests.IncomingPending(userID)
	if err != nil {
		return RequestsOverview{}, err
	}
	outgoing, err := s.requests.OutgoingByStatus(userID, domain.RequestAccepted)
	if err != nil {
		return RequestsOverview{}, err
	}
	rejected, err := s.requests.OutgoingByStatus(userID, domain.RequestRejected)
	if err != nil {
		return RequestsOverview{}, err
	}
	return RequestsOverview{Incoming: incoming, Outgoing: outgoing, Rejected: rejected}, nil
}

func (s *FriendService) OutgoingPending(userID string) ([]domain.FriendRequest, error) {
	return s.requests.OutgoingByStatus(userID, domain.RequestPending)
}

func (s *FriendService) Friends(userID string) ([]domain.User, error) {
	return s.users.Friends(userID)
}

func (s *FriendService) Recommended(userID string) ([]domain.User, error) {
	return s.users.Recommended(userID)
}
