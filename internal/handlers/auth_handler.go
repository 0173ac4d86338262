package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"membersite/internal/services"
	"membersite/internal/session"
	"membersite/internal/store"
	"membersite/internal/validation"
)

func (s *Server) SignupForm(c *fiber.Ctx) error {
	return c.Render("views/signup", fiber.Map{})
}

func (s *Server) LoginForm(c *fiber.Ctx) error {
	return c.Render("views/login", fiber.Map{})
}

// SignupSubmit validates the form, creates the account with a hashed
// password, establishes the session and redirects to the members area.
// Creating the user and saving the session are two independent steps with
// no rollback: a session failure leaves the account in place.
func (s *Server) SignupSubmit(c *fiber.Ctx) error {
	var form validation.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return s.renderError(c, "Invalid request body.", "/signup", "Go back to Sign Up")
	}

	if err := form.Validate(); err != nil {
		return s.renderError(c, err.Error(), "/signup", "Go back to Sign Up")
	}

	user, err := s.auth.Register(c.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return s.renderError(c, "Database error: email already in use.", "/signup", "Go back to Sign Up")
		}
		s.log.Error("signup failed", "email", form.Email, "err", err)
		return s.renderError(c, "Database error.", "/signup", "Go back to Sign Up")
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		s.log.Error("session create failed", "email", user.Email, "err", err)
		return s.renderError(c, "Session error.", "/login", "Go back to Log In")
	}
	id := session.Identity{Username: user.Username, Email: user.Email, Role: user.Role}
	if err := session.SaveIdentity(sess, id); err != nil {
		s.log.Error("session save failed", "email", user.Email, "err", err)
		return s.renderError(c, "Session error.", "/login", "Go back to Log In")
	}

	return c.Redirect("/members")
}

// LoginSubmit authenticates and establishes a session whose identity is a
// snapshot of the stored record at this moment, role included.
func (s *Server) LoginSubmit(c *fiber.Ctx) error {
	var form validation.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return s.renderError(c, "Invalid request body.", "/login", "Go back to Log In")
	}

	if err := form.Validate(); err != nil {
		return s.renderError(c, err.Error(), "/login", "Go back to Log In")
	}

	user, err := s.auth.Login(c.Context(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return s.renderError(c, "User not found.", "/login", "Go back to Log In")
		case errors.Is(err, services.ErrInvalidPassword):
			return s.renderError(c, "Invalid password.", "/login", "Go back to Log In")
		default:
			s.log.Error("login failed", "email", form.Email, "err", err)
			return s.renderError(c, "Database error.", "/login", "Go back to Log In")
		}
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		s.log.Error("session create failed", "email", user.Email, "err", err)
		return s.renderError(c, "Session error.", "/login", "Go back to Log In")
	}
	id := session.Identity{Username: user.Username, Email: user.Email, Role: user.Role}
	if err := session.SaveIdentity(sess, id); err != nil {
		s.log.Error("session save failed", "email", user.Email, "err", err)
		return s.renderError(c, "Session error.", "/login", "Go back to Log In")
	}

	return c.Redirect("/members")
}

// Logout destroys the session unconditionally and sends the caller home.
func (s *Server) Logout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return s.renderError(c, "Error logging out.", "/", "Return to Home")
	}
	if err := sess.Destroy(); err != nil {
		s.log.Error("session destroy failed", "err", err)
		return s.renderError(c, "Error logging out.", "/", "Return to Home")
	}
	return c.Redirect("/")
}
