package http

import (
	"context"
	"errors"
	"sync"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type memoryStore struct {
	mu         sync.Mutex
	users      map[string]*domain.User
	notes      map[int64]*domain.Note
	nextUserID int64
	nextNoteID int64
	pingErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: map[string]*domain.User{},
		notes: map[int64]*domain.Note{},
	}
}

func (s *memoryStore) PingContext(ctx context.Context) error { return s.pingErr }

type memoryUsers struct{ *memoryStore }

func (r memoryUsers) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	r.nextUserID++
	user.ID = r.nextUserID
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

type memoryNotes struct{ *memoryStore }

func (r memoryNotes) Create(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextNoteID++
	note.ID = r.nextNoteID
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r memoryNotes) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	found := *note
	return &found, nil
}

func (r memoryNotes) ListByUser(ctx context.Context, userID int64) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := []*domain.Note{}
	for id := int64(1); id <= r.nextNoteID; id++ {
		if note, ok := r.notes[id]; ok && note.UserID == userID {
			found := *note
			notes = append(notes, &found)
		}
	}
	return notes, nil
}

func (r memoryNotes) Update(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return domain.ErrNoteNotFound
	}
	stored.Title, stored.Content = note.Title, note.Content
	return nil
}

func (r memoryNotes) Delete(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notes[id]
	if !ok || stored.UserID != userID {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}
