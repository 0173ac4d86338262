package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"membersite/internal/models"
	"membersite/internal/store"
)

// RequireAdmin ensures the session's account still exists and currently
// holds the admin role. It runs after RequireSession and re-fetches the
// record so a stale session snapshot cannot authorize a role change.
// Non-admins are sent back to /admin, where the view hides the controls.
func RequireAdmin(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := Identity(c)
		if !ok {
			return c.Redirect("/login")
		}

		user, err := users.GetByEmail(c.Context(), id.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Account vanished since login.
				return c.Redirect("/login")
			}
			return c.Render("views/error", fiber.Map{
				"Message":  "Database error.",
				"BackLink": "/",
				"BackText": "Return to Home",
			})
		}

		if user.Role != models.RoleAdmin {
			return c.Redirect("/admin")
		}
		return c.Next()
	}
}
