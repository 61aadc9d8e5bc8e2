package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/repository"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[uint]*model.User
	nextID  uint
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uint]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Phone == user.Phone {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	c := *user
	r.byID[user.ID] = &c
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Phone == phone {
			c := *u
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePerformanceRepo struct {
	mu        sync.Mutex
	logs      []model.PerformanceLog
	createErr error
}

func (r *fakePerformanceRepo) Create(_ context.Context, entry *model.PerformanceLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	entry.ID = uint(len(r.logs) + 1)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *fakePerformanceRepo) FindPageByUser(_ context.Context, userID uint, page, pageSize int) ([]model.PerformanceLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var mine []model.PerformanceLog
	for _, l := range r.logs {
		if l.UserID == userID {
			mine = append(mine, l)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].ID > mine[j].ID })

	start := (page - 1) * pageSize
	if start >= len(mine) {
		return []model.PerformanceLog{}, int64(len(mine)), nil
	}
	end := min(start+pageSize, len(mine))
	return mine[start:end], int64(len(mine)), nil
}

type fakeSavedRepo struct {
	mu      sync.Mutex
	notes   map[string]model.SavedNote
	sets    map[string]model.SavedQuestionSet
	seq     int
	saveErr error
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{notes: map[string]model.SavedNote{}, sets: map[string]model.SavedQuestionSet{}}
}

func (r *fakeSavedRepo) stamp() time.Time {
	r.seq++
	return time.UnixMilli(int64(1_700_000_000_000 + r.seq))
}

func (r *fakeSavedRepo) SaveNote(_ context.Context, userID uint, note *model.SavedNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	ts := r.stamp()
	note.Key = repository.NoteKey(userID, ts)
	note.SavedAt = ts
	r.notes[note.Key] = *note
	return nil
}

func (r *fakeSavedRepo) ListNotes(_ context.Context, userID uint) ([]model.SavedNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.SavedNote
	for k, n := range r.notes {
		if r.owns(userID, k) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (r *fakeSavedRepo) SaveQuestionSet(_ context.Context, userID uint, set *model.SavedQuestionSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	ts := r.stamp()
	set.Key = repository.QuestionSetKey(userID, set.Set.QuestionType, ts)
	set.SavedAt = ts
	r.sets[set.Key] = *set
	return nil
}

func (r *fakeSavedRepo) ListQuestionSets(_ context.Context, userID uint, qt quiz.QuestionType) ([]model.SavedQuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.SavedQuestionSet
	for _, s := range r.sets {
		if r.owns(userID, s.Key) && (qt == "" || s.Set.QuestionType == qt) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (r *fakeSavedRepo) GetQuestionSet(_ context.Context, userID uint, key string) (*model.SavedQuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sets[key]
	if !ok || !r.owns(userID, key) {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSavedRepo) Delete(_ context.Context, userID uint, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(userID, key) {
		return repository.ErrNotFound
	}
	if _, ok := r.notes[key]; ok {
		delete(r.notes, key)
		return nil
	}
	if _, ok := r.sets[key]; ok {
		delete(r.sets, key)
		return nil
	}
	return repository.ErrNotFound
}

func (r *fakeSavedRepo) Ping(context.Context) error { return nil }

func (r *fakeSavedRepo) owns(userID uint, key string) bool {
	prefix := strings.SplitN(repository.NoteKey(userID, time.UnixMilli(0)), "studyAid_note_", 2)[0]
	return strings.HasPrefix(key, prefix)
}

var errStoreDown = errors.New("connection refused")
