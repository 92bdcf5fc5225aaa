package ports

import (
	"context"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// SessionStore defines the interface for server-side session state. Save
// applies the store's expiry policy; Find never returns expired entries.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
