package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

type TokenService interface {
	Issue(subject string) (string, error)
	Subject(token string) (string, error)
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}
