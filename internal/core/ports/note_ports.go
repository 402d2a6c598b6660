package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Note, error)
	// Update and Delete only touch the row when it is still owned by note.UserID / userID.
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, userID int64) error
}

type NoteInput struct {
	Title   string
	Content string
}

type NoteService interface {
	Create(ctx context.Context, owner *domain.User, input NoteInput) (*domain.Note, error)
	List(ctx context.Context, owner *domain.User) ([]*domain.Note, error)
	Update(ctx context.Context, owner *domain.User, id int64, input NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, owner *domain.User, id int64) error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
