package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

var (
	ann = &domain.User{ID: 1, Email: "a@x.com", Name: "Ann"}
	bob = &domain.User{ID: 2, Email: "b@x.com", Name: "Bob"}
)

func TestNoteService_Create(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	note, err := svc.Create(context.Background(), ann, ports.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "t", note.Title)
	assert.Equal(t, "c", note.Content)
	assert.Equal(t, ann.ID, note.UserID)
}

func TestNoteService_Create_AcceptsEmpty(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	note, err := svc.Create(context.Background(), ann, ports.NoteInput{})
	require.NoError(t, err)
	assert.Empty(t, note.Title)
	assert.Empty(t, note.Content)
}

func TestNoteService_RequiresOwner(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, nil, ports.NoteInput{Title: "t"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.List(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Update(ctx, nil, 1, ports.NoteInput{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(ctx, nil, 1), domain.ErrUnauthorized)
}

func TestNoteService_List_OnlyOwnNotes(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, ann, ports.NoteInput{Title: "ann-1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, ports.NoteInput{Title: "bob-1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ann, ports.NoteInput{Title: "ann-2"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, ann)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	for _, n := range notes {
		assert.Equal(t, ann.ID, n.UserID)
	}

	notes, err = svc.List(ctx, &domain.User{ID: 3})
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteService_List_StoreError(t *testing.T) {
	repo := newFakeNoteRepo()
	repo.err = errors.New("db down")
	svc := NewNoteService(repo)

	_, err := svc.List(context.Background(), ann)
	assert.Error(t, err)
}

func TestNoteService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  *domain.User
		id      func(created int64) int64
		wantErr error
	}{
		{name: "owner", caller: ann, id: func(c int64) int64 { return c }},
		{name: "other user", caller: bob, id: func(c int64) int64 { return c }, wantErr: domain.ErrForbidden},
		{name: "unknown id", caller: ann, id: func(c int64) int64 { return c + 100 }, wantErr: domain.ErrNoteNotFound},
	}

	for _, tt := range tests {
		t.Run("update/"+tt.name, func(t *testing.T) {
			repo := newFakeNoteRepo()
			svc := NewNoteService(repo)
			created, err := svc.Create(ctx, ann, ports.NoteInput{Title: "t", Content: "c"})
			require.NoError(t, err)

			updated, err := svc.Update(ctx, tt.caller, tt.id(created.ID), ports.NoteInput{Title: "t2", Content: "c2"})
			stored, getErr := repo.GetByID(ctx, created.ID)
			require.NoError(t, getErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "t", stored.Title, "note must be left untouched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t2", updated.Title)
			assert.Equal(t, "c2", updated.Content)
			assert.Equal(t, ann.ID, updated.UserID)
			assert.Equal(t, "t2", stored.Title)
			assert.Equal(t, "c2", stored.Content)
		})

		t.Run("delete/"+tt.name, func(t *testing.T) {
			repo := newFakeNoteRepo()
			svc := NewNoteService(repo)
			created, err := svc.Create(ctx, ann, ports.NoteInput{Title: "t", Content: "c"})
			require.NoError(t, err)

			err = svc.Delete(ctx, tt.caller, tt.id(created.ID))
			_, getErr := repo.GetByID(ctx, created.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NoError(t, getErr, "note must still exist")
				return
			}
			require.NoError(t, err)
			assert.ErrorIs(t, getErr, domain.ErrNoteNotFound)
		})
	}
}
