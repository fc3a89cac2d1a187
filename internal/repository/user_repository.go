package repository

import (
	"context"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// UserRepository defines read access to the fixed account list.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type userRepository struct {
	byID       map[string]domain.User
	byUsername map[string]string
}

// NewUserRepository returns a read-only repository over already hashed users.
func NewUserRepository(users []domain.User) UserRepository {
	r := &userRepository{
		byID:       make(map[string]domain.User, len(users)),
		byUsername: make(map[string]string, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u.ID
	}
	return r
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	id, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}
