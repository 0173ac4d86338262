package handlers

import (
	"math/rand"

	"github.com/gofiber/fiber/v2"

	"membersite/internal/middleware"
	"membersite/internal/session"
)

// memberImages is the fixed set shown on the members page. The pick is
// uniform and not security-sensitive.
var memberImages = []string{
	"/static/image1.svg",
	"/static/image2.svg",
	"/static/image3.svg",
}

// Home renders the authenticated view when a session exists, otherwise the
// anonymous one. It never mutates anything.
func (s *Server) Home(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err == nil {
		if id, ok := session.IdentityFrom(sess); ok {
			return c.Render("views/home", fiber.Map{"Username": id.Username})
		}
	}
	return c.Render("views/home", fiber.Map{})
}

// Members renders the greeting and a randomly chosen image. RequireSession
// has already redirected anonymous callers to /.
func (s *Server) Members(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return c.Redirect("/")
	}

	img := memberImages[rand.Intn(len(memberImages))]
	return c.Render("views/members", fiber.Map{
		"Username": id.Username,
		"Image":    img,
	})
}
