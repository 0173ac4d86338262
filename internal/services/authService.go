package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"membersite/internal/models"
	"membersite/internal/store"
)

// ErrInvalidPassword is returned by Login when the password does not match.
var ErrInvalidPassword = errors.New("invalid password")

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthService registers and authenticates users against a UserStore.
type AuthService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register hashes the password and creates the user with the default role.
// The plaintext password never reaches the store.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}
	return s.users.Create(ctx, user)
}

// Login authenticates by email and password and returns the stored record.
// Returns store.ErrNotFound for an unknown email and ErrInvalidPassword for
// a wrong password; callers render the two differently.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	if !VerifyPassword(password, user.Password) {
		return models.User{}, ErrInvalidPassword
	}
	return user, nil
}
