package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// plainHasher prefixes instead of hashing so tests stay fast.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokens encodes the subject directly in the token.
type fakeTokens struct {
	issueErr error
}

func (f fakeTokens) Issue(subject string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token:" + subject, nil
}

func (f fakeTokens) Subject(token string) (string, error) {
	subject, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return "", errors.New("bad token")
	}
	return subject, nil
}

type fakeNoteRepo struct {
	mu     sync.Mutex
	nextID int64
	notes  map[int64]*domain.Note
	err    error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[int64]*domain.Note{}}
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	note.ID = r.nextID
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNoteRepo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	found := *note
	return &found, nil
}

func (r *fakeNoteRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var notes []*domain.Note
	for id := int64(1); id <= r.nextID; id++ {
		if note, ok := r.notes[id]; ok && note.UserID == userID {
			found := *note
			notes = append(notes, &found)
		}
	}
	return notes, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return domain.ErrNoteNotFound
	}
	stored.Title = note.Title
	stored.Content = note.Content
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.notes[id]
	if !ok || stored.UserID != userID {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}
