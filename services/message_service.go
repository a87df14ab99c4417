package services

import (
	"soundbridge/domain"
	"soundbridge/repositories"
)

type IMessageService interface {
	History(userID, otherUserID string) ([]domain.Message, error)
	UnreadSenders(userID string) ([]string, error)
}

// MessageService serves the read side of messaging over HTTP; writes
// go through the presence hub.
type MessageService struct {
	messages repositories.IMessageRepository
}

func NewMessageService(messages repositories.IMessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// History returns the conversation between two users, ascending by
// sent time.
func (s *MessageService) History(userID, otherUserID string) ([]domain.Message, error) {
	return s.messages.Between(userID, otherUserID)
}

// UnreadSenders lists who has unread messages for the user, from the
// persisted read flags.
func (s *MessageService) UnreadSenders(userID string) ([]string, error) {
	return s.messages.UnreadSenders(userID)
}
