package errors

import "fmt"

var (
	ErrSelfRequest        = fmt.Errorf("cannot send a friend request to yourself")
	ErrAlreadyFriends     = fmt.Errorf("users are already friends")
	ErrRequestExists      = fmt.Errorf("friend request already exists between users")
	ErrRequestNotFound    = fmt.Errorf("friend request not found")
	ErrRequestClosed      = fmt.Errorf("friend request already accepted or rejected")
	ErrNotAuthorized      = fmt.Errorf("not authorized")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserExists         = fmt.Errorf("user already exists")
	ErrEmptyContent       = fmt.Errorf("message content is empty")
	ErrNotIdentified      = fmt.Errorf("connection has not identified itself")
	ErrAlreadyClosed      = fmt.Errorf("connection is closed")
	ErrUnknownEvent       = fmt.Errorf("unknown event")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrSongNotFound       = fmt.Errorf("song not found")
	ErrAlbumNotFound      = fmt.Errorf("album not found")
	ErrUnsupportedMedia   = fmt.Errorf("unsupported media type")
	ErrEmptyWords         = fmt.Errorf("word list is empty")
	ErrWorkerPanic        = fmt.Errorf("worker panicked")
	ErrSlowConsumer       = fmt.Errorf("consumer cannot keep up")
)
