package middleware

import (
	"github.com/gofiber/fiber/v2"

	"membersite/internal/session"
)

// IdentityKey is the Locals key under which RequireSession stores the
// authenticated identity for downstream handlers.
const IdentityKey = "identity"

// RequireSession redirects to target unless the request carries a session
// with an authenticated identity. A missing or expired session is not an
// error page, just the redirect.
func RequireSession(sessions *session.Store, target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			return c.Redirect(target)
		}

		id, ok := session.IdentityFrom(sess)
		if !ok {
			return c.Redirect(target)
		}

		c.Locals(IdentityKey, id)
		return c.Next()
	}
}

// Identity returns the identity stored by RequireSession, if any.
func Identity(c *fiber.Ctx) (session.Identity, bool) {
	id, ok := c.Locals(IdentityKey).(session.Identity)
	return id, ok
}
