// Package api is the HTTP and websocket surface: Fiber routes for
// identity, the social graph, message history and the song catalog,
// plus the realtime endpoint feeding the presence hub.
package api

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"soundbridge/presence"
	"soundbridge/repositories"
	"soundbridge/services"
)

type Server struct {
	log      *slog.Logger
	hub      *presence.Hub
	auth     services.IAuthService
	friends  services.IFriendService
	messages services.IMessageService
	stats    services.IStatsService
	catalog  repositories.ICatalogRepository
	mediaDir string
}

func NewServer(log *slog.Logger, hub *presence.Hub, auth services.IAuthService,
	friends services.IFriendService, messages services.IMessageService,
	stats services.IStatsService, catalog repositories.ICatalogRepository,
	mediaDir string) *Server {
	return &Server{
		log:      log,
		hub:      hub,
		auth:     auth,
		friends:  friends,
		messages: messages,
		stats:    stats,
		catalog:  catalog,
		mediaDir: mediaDir,
	}
}

// Register mounts every route on the app. Catalog reads and auth are
// public; everything social requires a session token; the admin console
// additionally requires the admin claim.
func (s *Server) Register(app *fiber.App) {
	app.Static("/media", s.mediaDir)

	apiGroup := app.Group("/api")
	apiGroup.Post("/auth/callback", s.handleAuthCallback)
	apiGroup.Post("/auth/admin-login", s.handleAdminLogin)
	apiGroup.Get("/songs", s.handleListSongs)
	apiGroup.Get("/songs/search", s.handleSearchSongs)
	apiGroup.Get("/songs/:id", s.handleGetSong)
	apiGroup.Get("/albums", s.handleListAlbums)
	apiGroup.Get("/albums/:albumId", s.handleAlbumSongs)

	authed := apiGroup.Group("", s.requireUser)
	authed.Get("/users/recommended", s.handleRecommendedUsers)
	authed.Get("/users/friends", s.handleFriends)
	authed.Get("/users/unread", s.handleUnread)
	authed.Get("/users/friend-requests", s.handleFriendRequests)
	authed.Get("/users/outgoing-friend-requests", s.handleOutgoingFriendRequests)
	authed.Post("/users/friend-request/:recipientId", s.handleSendFriendRequest)
	authed.Post("/users/friend-request/:requestId/accept", s.handleAcceptFriendRequest)
	authed.Post("/users/friend-request/:requestId/reject", s.handleRejectFriendRequest)
	authed.Get("/users/messages/:userId", s.handleMessages)
	authed.Get("/stats", s.handleStats)

	authed.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	authed.Get("/ws", websocket.New(s.handleSocket))

	admin := apiGroup.Group("/admin", s.requireUser, s.requireAdmin)
	admin.Get("/check", s.handleAdminCheck)
	admin.Post("/songs", s.handleCreateSong)
	admin.Delete("/songs/:id", s.handleDeleteSong)
	admin.Post("/albums", s.handleCreateAlbum)
	admin.Delete("/albums/:id", s.handleDeleteAlbum)
}
