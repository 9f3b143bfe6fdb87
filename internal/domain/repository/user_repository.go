package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
)

// UserRepository defines the interface for identity storage.
// Lookups return ErrNotFound when no row matches. Create returns
// ErrDuplicateUsername or ErrDuplicateEmail when a unique index rejects the row.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
