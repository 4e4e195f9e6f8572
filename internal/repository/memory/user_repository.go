package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"jf-travels-be/internal/entity"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository backs the local identity provider. Registration writes are
// accepted but live only for the process lifetime.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository(seed []*entity.User) *UserRepository {
	users := make(map[uuid.UUID]*entity.User, len(seed))
	for _, u := range seed {
		users[u.Id] = u
	}
	return &UserRepository{users: users}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	r.users[user.Id] = user
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id], nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
