package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace       = "studyAid"
	notePrefix         = "studyAid_note_"
	questionSetPrefix  = "studyAid_questionSet_"
	scanBatch          = 100
	maxKeyCollisionTry = 5
)

// SavedContentRepository keeps saved notes and question sets per user. Each
// save creates a new record keyed by its timestamp.
type SavedContentRepository interface {
	SaveNote(ctx context.Context, userID uint, note *model.SavedNote) error
	ListNotes(ctx context.Context, userID uint) ([]model.SavedNote, error)
	SaveQuestionSet(ctx context.Context, userID uint, set *model.SavedQuestionSet) error
	// ListQuestionSets lists the user's saved sets; an empty qt lists every type.
	ListQuestionSets(ctx context.Context, userID uint, qt quiz.QuestionType) ([]model.SavedQuestionSet, error)
	GetQuestionSet(ctx context.Context, userID uint, key string) (*model.SavedQuestionSet, error)
	Delete(ctx context.Context, userID uint, key string) error
	Ping(ctx context.Context) error
}

type savedContentRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewSavedContentRepository(client *redis.Client) SavedContentRepository {
	return &savedContentRepository{client: client, now: time.Now}
}

func userPrefix(userID uint) string {
	return keyNamespace + ":" + strconv.FormatUint(uint64(userID), 10) + ":"
}

// NoteKey is the store key for a note saved at ts.
func NoteKey(userID uint, ts time.Time) string {
	return fmt.Sprintf("%s%s%d", userPrefix(userID), notePrefix, ts.UnixMilli())
}

// QuestionSetKey is the store key for a question set of type qt saved at ts.
func QuestionSetKey(userID uint, qt quiz.QuestionType, ts time.Time) string {
	return fmt.Sprintf("%s%s%s_%d", userPrefix(userID), questionSetPrefix, qt, ts.UnixMilli())
}

func (r *savedContentRepository) SaveNote(ctx context.Context, userID uint, note *model.SavedNote) error {
	return r.saveNew(ctx, note, func(ts time.Time) string {
		note.Key = NoteKey(userID, ts)
		note.SavedAt = ts.UTC()
		return note.Key
	})
}

func (r *savedContentRepository) SaveQuestionSet(ctx context.Context, userID uint, set *model.SavedQuestionSet) error {
	return r.saveNew(ctx, set, func(ts time.Time) string {
		set.Key = QuestionSetKey(userID, set.Set.QuestionType, ts)
		set.SavedAt = ts.UTC()
		return set.Key
	})
}

// saveNew stores v under a key that does not exist yet. stamp assigns the key
// and timestamp to v; on a collision the timestamp moves forward by 1ms.
func (r *savedContentRepository) saveNew(ctx context.Context, v any, stamp func(time.Time) string) error {
	ts := r.now()
	for range maxKeyCollisionTry {
		key := stamp(ts)
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		ok, err := r.client.SetNX(ctx, key, data, 0).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		ts = ts.Add(time.Millisecond)
	}
	return ErrDuplicate
}

func (r *savedContentRepository) ListNotes(ctx context.Context, userID uint) ([]model.SavedNote, error) {
	values, err := r.scanValues(ctx, userPrefix(userID)+notePrefix+"*")
	if err != nil {
		return nil, err
	}

	notes := make([]model.SavedNote, 0, len(values))
	for key, raw := range values {
		var n model.SavedNote
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		n.Key = key
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return newerFirst(notes[i].SavedAt, notes[j].SavedAt, notes[i].Key, notes[j].Key)
	})
	return notes, nil
}

func (r *savedContentRepository) ListQuestionSets(ctx context.Context, userID uint, qt quiz.QuestionType) ([]model.SavedQuestionSet, error) {
	pattern := userPrefix(userID) + questionSetPrefix + "*"
	if qt != "" {
		pattern = userPrefix(userID) + questionSetPrefix + string(qt) + "_*"
	}
	values, err := r.scanValues(ctx, pattern)
	if err != nil {
		return nil, err
	}

	sets := make([]model.SavedQuestionSet, 0, len(values))
	for key, raw := range values {
		var s model.SavedQuestionSet
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		s.Key = key
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool {
		return newerFirst(sets[i].SavedAt, sets[j].SavedAt, sets[i].Key, sets[j].Key)
	})
	return sets, nil
}

func (r *savedContentRepository) GetQuestionSet(ctx context.Context, userID uint, key string) (*model.SavedQuestionSet, error) {
	if !strings.HasPrefix(key, userPrefix(userID)+questionSetPrefix) {
		return nil, ErrNotFound
	}
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var s model.SavedQuestionSet
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	s.Key = key
	return &s, nil
}

// Delete removes one of the user's saved records. Keys owned by another
// user are reported as not found.
func (r *savedContentRepository) Delete(ctx context.Context, userID uint, key string) error {
	if !strings.HasPrefix(key, userPrefix(userID)) {
		return ErrNotFound
	}
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *savedContentRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// scanValues returns the values of every key matching pattern. Keys that
// vanish between SCAN and MGET are skipped.
func (r *savedContentRepository) scanValues(ctx context.Context, pattern string) (map[string][]byte, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return map[string][]byte{}, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(keys))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[keys[i]] = []byte(s)
		}
	}
	return out, nil
}

func newerFirst(a, b time.Time, keyA, keyB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return keyA > keyB
}
