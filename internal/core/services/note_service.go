package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type noteService struct {
	repo ports.NoteRepository
}

func NewNoteService(repo ports.NoteRepository) ports.NoteService {
	return &noteService{
		repo: repo,
	}
}

func (s *noteService) Create(ctx context.Context, owner *domain.User, input ports.NoteInput) (*domain.Note, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	note := &domain.Note{
		Title:   input.Title,
		Content: input.Content,
		UserID:  owner.ID,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *noteService) List(ctx context.Context, owner *domain.User) ([]*domain.Note, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.repo.ListByUser(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []*domain.Note{}
	}

	return notes, nil
}

func (s *noteService) Update(ctx context.Context, owner *domain.User, id int64, input ports.NoteInput) (*domain.Note, error) {
	note, err := s.ownedNote(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	note.Title = input.Title
	note.Content = input.Content
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, owner *domain.User, id int64) error {
	note, err := s.ownedNote(ctx, owner, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, note.ID, owner.ID)
}

func (s *noteService) ownedNote(ctx context.Context, owner *domain.User, id int64) (*domain.Note, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.OwnedBy(owner) {
		return nil, domain.ErrForbidden
	}

	return note, nil
}
