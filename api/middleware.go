package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"soundbridge/auth"
)

const claimsKey = "claims"

// requireUser validates the bearer token and stores its claims in the
// request locals. Websocket upgrades may carry the token as a query
// parameter instead, since browsers cannot set headers on upgrades.
func (s *Server) requireUser(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing token"})
	}

	claims, err := s.auth.Resolve(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// requireAdmin runs after requireUser and refuses non-admin claims.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if !claimsOf(c).Admin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	return c.Next()
}

func claimsOf(c *fiber.Ctx) *auth.Claims {
	return c.Locals(claimsKey).(*auth.Claims)
}
