package store

import (
	"context"
	"sort"
	"sync"

	"membersite/internal/models"
)

// MemoryStore is an in-memory UserStore used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]models.User)}
}

func (s *MemoryStore) Create(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return models.User{}, ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return user, nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]models.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.UserSummary, 0, len(s.users))
	for _, u := range s.users {
		summaries = append(summaries, models.UserSummary{
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Email < summaries[j].Email })
	return summaries, nil
}

func (s *MemoryStore) SetRole(_ context.Context, email, role string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	user.Role = role
	s.users[email] = user
	return user, nil
}
