// Package handlers holds the HTTP surface: route handlers and their wiring.
// The Server bundles the store handles so the whole layer can run against
// fakes in tests.
package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"membersite/internal/middleware"
	"membersite/internal/services"
	"membersite/internal/session"
	"membersite/internal/store"
)

type Server struct {
	users    store.UserStore
	auth     *services.AuthService
	sessions *session.Store
	log      *slog.Logger
}

func NewServer(users store.UserStore, sessions *session.Store, log *slog.Logger) *Server {
	return &Server{
		users:    users,
		auth:     services.NewAuthService(users),
		sessions: sessions,
		log:      log,
	}
}

// RegisterRoutes mounts every route, including the trailing 404 fallback,
// so it must be called after any static-asset middleware.
func (s *Server) RegisterRoutes(app *fiber.App) {
	app.Get("/", s.Home)
	app.Get("/signup", s.SignupForm)
	app.Post("/signupSubmit", s.SignupSubmit)
	app.Get("/login", s.LoginForm)
	app.Post("/loginSubmit", s.LoginSubmit)
	app.Get("/members", middleware.RequireSession(s.sessions, "/"), s.Members)
	app.Get("/logout", s.Logout)

	admin := app.Group("/admin", middleware.RequireSession(s.sessions, "/login"))
	admin.Get("/", s.AdminPage)
	// Role mutations demand a current admin role, re-checked against the
	// store rather than trusted from the session snapshot.
	admin.Post("/promote/:email", middleware.RequireAdmin(s.users), s.Promote)
	admin.Post("/demote/:email", middleware.RequireAdmin(s.users), s.Demote)

	app.Use(s.NotFound)
}

// renderError renders the shared error page with a link back to from.
func (s *Server) renderError(c *fiber.Ctx, message, backLink, backText string) error {
	return c.Render("views/error", fiber.Map{
		"Message":  message,
		"BackLink": backLink,
		"BackText": backText,
	})
}

// NotFound renders the 404 page for unmatched routes.
func (s *Server) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("views/notfound", fiber.Map{})
}
