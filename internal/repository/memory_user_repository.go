package repository

import (
	"context"
	"sync"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// memoryUserRepository is the in-process fallback UserRepository. It mirrors
// the document-store behavior closely enough for demo use but, like the
// durable store, does not serialize concurrent check-then-insert sequences.
type memoryUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*domain.User
	emailIndex map[string]*domain.User
}

// NewMemoryUserRepository creates an in-memory UserRepository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[u.ID] = &u
	r.emailIndex[u.Email] = &u
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.emailIndex[email]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.emailIndex[email]
	return ok, nil
}

func (r *memoryUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	if existing, ok := r.emailIndex[u.Email]; ok {
		// Keep the original id, as the document store would.
		u.ID = existing.ID
		delete(r.users, existing.ID)
	}
	r.users[u.ID] = &u
	r.emailIndex[u.Email] = &u
	return nil
}
