package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"soundbridge/auth"
	"soundbridge/domain"
	"soundbridge/mocks"
	"soundbridge/presence"
	"soundbridge/services"
)

type serverFixture struct {
	app      *fiber.App
	issuer   *auth.Issuer
	users    *mocks.MockIUserRepository
	requests *mocks.MockIFriendRequestRepository
	messages *mocks.MockIMessageRepository
	catalog  *mocks.MockICatalogRepository
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.Default()

	f := &serverFixture{
		app:      fiber.New(),
		issuer:   auth.NewIssuer("test-secret", time.Hour),
		users:    mocks.NewMockIUserRepository(ctrl),
		requests: mocks.NewMockIFriendRequestRepository(ctrl),
		messages: mocks.NewMockIMessageRepository(ctrl),
		catalog:  mocks.NewMockICatalogRepository(ctrl),
	}

	hub := presence.NewHub(log, f.messages, nil)
	server := NewServer(log, hub,
		services.NewAuthService(f.users, f.issuer, "", "", log),
		services.NewFriendService(f.users, f.requests, log),
		services.NewMessageService(f.messages),
		nil,
		f.catalog,
		t.TempDir())
	server.Register(f.app)
	return f
}

func (f *serverFixture) request(t *testing.T, method, target, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_CatalogRoutes(t *testing.T) {
	t.Run("should list songs without authentication", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		f.catalog.EXPECT().ListSongs().Return([]domain.Song{
			{Title: "So What", Artist: "Miles Davis"},
		}, nil)

		resp := f.request(t, http.MethodGet, "/api/songs", "")

		req.Equal(http.StatusOK, resp.StatusCode)
		songs := decodeInto[[]domain.Song](t, resp)
		req.Len(songs, 1)
		req.Equal("So What", songs[0].Title)
	})

	t.Run("should return an empty result for a blank search", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		resp := f.request(t, http.MethodGet, "/api/songs/search", "")

		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("should pass the search query through", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		f.catalog.EXPECT().SearchSongs(gomock.Any(), "miles", 5).
			Return([]domain.Song{{Title: "So What"}}, nil)

		resp := f.request(t, http.MethodGet, "/api/songs/search?q=miles&limit=5", "")

		req.Equal(http.StatusOK, resp.StatusCode)
	})
}

func TestServer_Authentication(t *testing.T) {
	t.Run("should refuse social routes without a token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		resp := f.request(t, http.MethodGet, "/api/users/friends", "")

		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("should refuse a garbage token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		resp := f.request(t, http.MethodGet, "/api/users/friends", "garbage")

		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("should serve friends for a valid token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		token, err := f.issuer.Issue("u-1", false)
		req.NoError(err)
		f.users.EXPECT().Friends("u-1").Return([]domain.User{
			{ID: "u-2", FullName: "Grace Hopper"},
		}, nil)

		resp := f.request(t, http.MethodGet, "/api/users/friends", token)

		req.Equal(http.StatusOK, resp.StatusCode)
		body := decodeInto[[]map[string]any](t, resp)
		req.Len(body, 1)
		req.Equal("Grace Hopper", body[0]["fullName"])
		req.Equal(false, body[0]["online"])
	})

	t.Run("should keep non-admins out of the console", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		token, err := f.issuer.Issue("u-1", false)
		req.NoError(err)

		resp := f.request(t, http.MethodGet, "/api/admin/check", token)

		req.Equal(http.StatusForbidden, resp.StatusCode)
	})

	t.Run("should let admins into the console", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		token, err := f.issuer.Issue("u-1", true)
		req.NoError(err)

		resp := f.request(t, http.MethodGet, "/api/admin/check", token)

		req.Equal(http.StatusOK, resp.StatusCode)
	})
}

func TestServer_AuthCallback(t *testing.T) {
	t.Run("should exchange a provider profile for a working token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		f.users.EXPECT().Upsert(gomock.Any()).Return(domain.User{ID: "u-1"}, nil)

		body := strings.NewReader(`{"externalId":"ext-1","fullName":"Ada Lovelace","email":"ada@example.com"}`)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/auth/callback", body)
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := f.app.Test(httpReq, -1)
		req.NoError(err)
		req.Equal(http.StatusOK, resp.StatusCode)

		payload := decodeInto[map[string]any](t, resp)
		claims, err := f.issuer.Validate(payload["token"].(string))
		req.NoError(err)
		req.Equal("u-1", claims.UserID)
	})

	t.Run("should reject a callback without required fields", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		body := strings.NewReader(`{"fullName":"Ada"}`)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/auth/callback", body)
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := f.app.Test(httpReq, -1)
		req.NoError(err)

		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_FriendRequestRoutes(t *testing.T) {
	t.Run("should create a request and report conflicts", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		token, err := f.issuer.Issue("u-1", false)
		req.NoError(err)

		f.users.EXPECT().Get("u-2").Return(domain.User{ID: "u-2"}, nil)
		f.users.EXPECT().Get("u-1").Return(domain.User{ID: "u-1"}, nil)
		f.requests.EXPECT().Create("u-1", "u-2").Return(domain.FriendRequest{
			Sender: "u-1", Recipient: "u-2", Status: domain.RequestPending,
		}, nil)

		resp := f.request(t, http.MethodPost, "/api/users/friend-request/u-2", token)
		req.Equal(http.StatusCreated, resp.StatusCode)
	})

	t.Run("should refuse befriending yourself", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)
		token, err := f.issuer.Issue("u-1", false)
		req.NoError(err)

		resp := f.request(t, http.MethodPost, "/api/users/friend-request/u-1", token)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}
