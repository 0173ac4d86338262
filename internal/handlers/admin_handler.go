package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"membersite/internal/middleware"
	"membersite/internal/models"
	"membersite/internal/store"
)

// AdminPage renders the admin panel. The role is re-fetched from the store
// rather than read from the session snapshot, so a promote shows up here
// without a re-login. Non-admins still get the page, with the user listing
// withheld and the controls suppressed by the view.
func (s *Server) AdminPage(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return c.Redirect("/login")
	}

	user, err := s.users.GetByEmail(c.Context(), id.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Account vanished since login.
			return c.Redirect("/login")
		}
		s.log.Error("fetching user failed", "email", id.Email, "err", err)
		return s.renderError(c, "Database error.", "/", "Return to Home")
	}

	isAdmin := user.Role == models.RoleAdmin
	users := []models.UserSummary{}
	if isAdmin {
		users, err = s.users.ListAll(c.Context())
		if err != nil {
			s.log.Error("listing users failed", "err", err)
			return s.renderError(c, "Database error.", "/", "Return to Home")
		}
	}

	return c.Render("views/admin", fiber.Map{
		"Username": user.Username,
		"IsAdmin":  isAdmin,
		"Users":    users,
	})
}

// Promote grants the admin role to the account named in the path.
func (s *Server) Promote(c *fiber.Ctx) error {
	return s.setRole(c, models.RoleAdmin)
}

// Demote reverts the account named in the path to the user role.
func (s *Server) Demote(c *fiber.Ctx) error {
	return s.setRole(c, models.RoleUser)
}

func (s *Server) setRole(c *fiber.Ctx, role string) error {
	email := c.Params("email")
	if _, err := s.users.SetRole(c.Context(), email, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.NotFound(c)
		}
		s.log.Error("role update failed", "email", email, "role", role, "err", err)
		return s.renderError(c, "Database error.", "/admin", "Back to Admin")
	}
	return c.Redirect("/admin")
}
