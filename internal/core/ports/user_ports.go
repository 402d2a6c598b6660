package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type UserRepository interface {
	// Create inserts the user and fills its ID. A taken email yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns domain.ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
