// Package session configures cookie-referenced server-side sessions and the
// identity snapshot they carry. Sessions live in a MongoDB collection with a
// fixed one-hour expiry; the client only ever holds the opaque token.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fsession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mongodb"
	"github.com/google/uuid"
)

// Aliased so the rest of the codebase imports one session package.
type (
	Store   = fsession.Store
	Session = fsession.Session
)

// CookieName carries the opaque session token.
const CookieName = "session_id"

// Lifetime is the absolute session TTL. Not sliding: the expiry is fixed at
// creation time.
const Lifetime = time.Hour

// New builds the session store. A nil storage falls back to the middleware's
// in-memory storage, which tests rely on. Sessions that never hold an
// identity are never saved, so anonymous requests persist nothing.
func New(storage fiber.Storage) *Store {
	cfg := fsession.Config{
		Expiration:     Lifetime,
		KeyLookup:      "cookie:" + CookieName,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return fsession.New(cfg)
}

// NewMongoStorage returns session storage backed by the "sessions"
// collection of the same database that holds the users.
func NewMongoStorage(uri, database string) fiber.Storage {
	return mongodb.New(mongodb.Config{
		ConnectionURI: uri,
		Database:      database,
		Collection:    "sessions",
	})
}

// Identity is the snapshot stored in the session at signup or login time.
// It is a point-in-time copy: a later role change does not show up here
// until the holder logs in again.
type Identity struct {
	Username string
	Email    string
	Role     string
}

// SaveIdentity writes the snapshot into the session and persists it.
func SaveIdentity(sess *Session, id Identity) error {
	sess.Set("username", id.Username)
	sess.Set("email", id.Email)
	sess.Set("role", id.Role)
	return sess.Save()
}

// IdentityFrom reads the snapshot back. The second return is false when the
// session carries no authenticated identity.
func IdentityFrom(sess *Session) (Identity, bool) {
	email, _ := sess.Get("email").(string)
	if email == "" {
		return Identity{}, false
	}
	username, _ := sess.Get("username").(string)
	role, _ := sess.Get("role").(string)
	return Identity{Username: username, Email: email, Role: role}, true
}
