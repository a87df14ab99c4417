package api

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundbridge/errors"
)

var validate = validator.New()

// fail maps domain errors onto HTTP statuses with the {message} body
// every client error shares.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &validationErrs),
		stderrors.Is(err, fiber.ErrUnprocessableEntity):
		status = fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrRequestNotFound),
		stderrors.Is(err, errors.ErrSongNotFound),
		stderrors.Is(err, errors.ErrAlbumNotFound):
		status = fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrSelfRequest),
		stderrors.Is(err, errors.ErrAlreadyFriends),
		stderrors.Is(err, errors.ErrEmptyContent):
		status = fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrRequestExists),
		stderrors.Is(err, errors.ErrRequestClosed):
		status = fiber.StatusConflict
	case stderrors.Is(err, errors.ErrNotAuthorized):
		status = fiber.StatusForbidden
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case stderrors.Is(err, errors.ErrUnsupportedMedia):
		status = fiber.StatusUnsupportedMediaType
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

type callbackRequest struct {
	ExternalID string `json:"externalId" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	ImageURL   string `json:"imageUrl"`
	Email      string `json:"email" validate:"required,email"`
}

// handleAuthCallback maps the identity provider's profile onto a user
// record and returns the session token.
func (s *Server) handleAuthCallback(c *fiber.Ctx) error {
	req, err := parseBody[callbackRequest](c)
	if err != nil {
		return fail(c, err)
	}
	user, token, err := s.auth.Callback(req.ExternalID, req.FullName, req.ImageURL, req.Email)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "token": token})
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	req, err := parseBody[adminLoginRequest](c)
	if err != nil {
		return fail(c, err)
	}
	token, err := s.auth.AdminLogin(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// handleRecommendedUsers lists users the caller could befriend.
func (s *Server) handleRecommendedUsers(c *fiber.Ctx) error {
	users, err := s.friends.Recommended(claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// handleFriends lists the caller's friends with their live online state.
func (s *Server) handleFriends(c *fiber.Ctx) error {
	friends, err := s.friends.Friends(claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	type friendView struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
		ImageURL string `json:"imageUrl"`
		Online   bool   `json:"online"`
	}
	views := make([]friendView, 0, len(friends))
	for _, friend := range friends {
		views = append(views, friendView{
			ID:       friend.ID,
			FullName: friend.FullName,
			ImageURL: friend.ImageURL,
			Online:   s.hub.Registry().IsOnline(friend.ID),
		})
	}
	return c.JSON(views)
}

func (s *Server) handleSendFriendRequest(c *fiber.Ctx) error {
	senderID := claimsOf(c).UserID
	request, err := s.friends.Send(senderID, c.Params("recipientId"))
	if err != nil {
		return fail(c, err)
	}
	s.hub.NotifyFriendRequest(c.Context(), senderID, request.Recipient)
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (s *Server) handleAcceptFriendRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return fail(c, errors.ErrRequestNotFound)
	}
	request, err := s.friends.Accept(requestID, claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	s.hub.NotifyFriendRequestAccepted(c.Context(), request.ID.String(), request.Sender)
	return c.JSON(request)
}

func (s *Server) handleRejectFriendRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return fail(c, errors.ErrRequestNotFound)
	}
	request, err := s.friends.Reject(requestID, claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(request)
}

// handleFriendRequests returns the notification page listings: incoming
// pending, plus the caller's accepted and rejected outgoing requests.
func (s *Server) handleFriendRequests(c *fiber.Ctx) error {
	overview, err := s.friends.Overview(claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(overview)
}

func (s *Server) handleOutgoingFriendRequests(c *fiber.Ctx) error {
	outgoing, err := s.friends.OutgoingPending(claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(outgoing)
}

// handleMessages returns the caller's conversation with another user,
// oldest first.
func (s *Server) handleMessages(c *fiber.Ctx) error {
	history, err := s.messages.History(claimsOf(c).UserID, c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(history)
}

// handleUnread lists who has unread messages for the caller, from the
// persisted read flags.
func (s *Server) handleUnread(c *fiber.Ctx) error {
	senders, err := s.messages.UnreadSenders(claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"unreadFrom": senders})
}

func (s *Server) handleGetSong(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, errors.ErrSongNotFound)
	}
	song, err := s.catalog.GetSong(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(song)
}

func (s *Server) handleListSongs(c *fiber.Ctx) error {
	songs, err := s.catalog.ListSongs()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(songs)
}

func (s *Server) handleSearchSongs(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.JSON([]any{})
	}
	songs, err := s.catalog.SearchSongs(c.Context(), query, c.QueryInt("limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(songs)
}

func (s *Server) handleListAlbums(c *fiber.Ctx) error {
	albums, err := s.catalog.ListAlbums()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(albums)
}

// handleAlbumSongs returns the album together with its songs.
func (s *Server) handleAlbumSongs(c *fiber.Ctx) error {
	albumID, err := uuid.Parse(c.Params("albumId"))
	if err != nil {
		return fail(c, errors.ErrAlbumNotFound)
	}
	album, err := s.catalog.GetAlbum(albumID)
	if err != nil {
		return fail(c, err)
	}
	songs, err := s.catalog.AlbumSongs(albumID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"album": album, "songs": songs})
}

func parseBody[T any](c *fiber.Ctx) (T, error) {
	var body T
	if err := c.BodyParser(&body); err != nil {
		return body, err
	}
	if err := validate.Struct(body); err != nil {
		return body, err
	}
	return body, nil
}
