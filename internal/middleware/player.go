// Package middleware carries the request guards shared by the REST
// and websocket routes.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const playerCookie = "playerId"

// EnsurePlayerID resolves the caller's player identity from the
// X-Player-ID header, the playerId cookie or the playerId query
// parameter, minting a fresh ID when none is present. The ID lands in
// c.Locals("playerID") for downstream handlers and is echoed back as a
// cookie so the same browser keeps one identity across requests.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Cookies(playerCookie)
		}
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			playerID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     playerCookie,
				Value:    playerID,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals("playerID", playerID)
		return c.Next()
	}
}
