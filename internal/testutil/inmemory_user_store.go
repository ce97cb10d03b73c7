package testutil

import (
	"context"
	"strings"

	"github.com/contractorpro/contractorpro/internal/domain/user"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

type InMemoryUserStore struct {
	*InMemoryStore[user.User]
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[user.User]("User not found", nil),
	}
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if _, taken := s.Find(func(existing *user.User) bool {
		return strings.EqualFold(existing.Email, u.Email)
	}); taken {
		return ierr.NewError("email taken").
			WithHint("A record with these details already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, u.ID, u)
}

func (s *InMemoryUserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := s.Find(func(existing *user.User) bool {
		return strings.EqualFold(existing.Email, email)
	})
	if !ok {
		return nil, s.notFound()
	}
	return u, nil
}
