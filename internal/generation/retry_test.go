package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/studyaid/internal/llm"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	return ctx.Err()
}

func testPolicy(s *recordingSleeper) Policy {
	p := DefaultPolicy()
	p.Sleep = s.sleep
	return p
}

func validInput() Input {
	return Input{
		ChapterText:  strings.Repeat("Plants make food through photosynthesis. ", 3),
		QuestionType: quiz.MultipleChoice,
		Count:        5,
		Grade:        "7",
		Subject:      "Science",
	}
}

// scriptedGenerator fails with errs in order, then returns set.
type scriptedGenerator struct {
	errs  []error
	set   *quiz.QuestionSet
	calls int
}

func (g *scriptedGenerator) Generate(_ context.Context, in Input) (*quiz.QuestionSet, error) {
	g.calls++
	if g.calls <= len(g.errs) {
		return nil, g.errs[g.calls-1]
	}
	if g.set != nil {
		return g.set, nil
	}
	return &quiz.QuestionSet{QuestionType: in.QuestionType, Questions: []quiz.Question{{QuestionText: "q"}}}, nil
}

func TestGenerateWithRetry_SucceedsAfterRateLimits(t *testing.T) {
	sleeper := &recordingSleeper{}
	gen := &scriptedGenerator{errs: []error{errors.New("429 Too Many Requests"), errors.New("429 Too Many Requests")}}

	set, err := GenerateWithRetry(context.Background(), gen, validInput(), testPolicy(sleeper))
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Len(t, set.Questions, 1)
	assert.Equal(t, 3, gen.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.delays)
}

func TestGenerateWithRetry_TerminalErrorFailsImmediately(t *testing.T) {
	sleeper := &recordingSleeper{}
	gen := &scriptedGenerator{errs: []error{errors.New("invalid response: schema validation failed: missing questions")}}

	_, err := GenerateWithRetry(context.Background(), gen, validInput(), testPolicy(sleeper))
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, CategoryGeneric, ge.Category)
	assert.Equal(t, 1, ge.Attempts)
	assert.Contains(t, ge.Message, "Failed to generate questions:")
	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, sleeper.delays)
}

func TestGenerateWithRetry_ExhaustsRetries(t *testing.T) {
	sleeper := &recordingSleeper{}
	overloaded := errors.New("503 model overloaded")
	gen := &scriptedGenerator{errs: []error{overloaded, overloaded, overloaded, overloaded, overloaded}}

	_, err := GenerateWithRetry(context.Background(), gen, validInput(), testPolicy(sleeper))

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 4, gen.calls)
	assert.Equal(t, 4, ge.Attempts)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeper.delays)

	var total time.Duration
	for _, d := range sleeper.delays {
		total += d
	}
	assert.Equal(t, 7*time.Second, total)
	assert.ErrorIs(t, err, overloaded)
}

func TestGenerateWithRetry_TypedProviderErrorsRetry(t *testing.T) {
	sleeper := &recordingSleeper{}
	gen := &scriptedGenerator{errs: []error{
		&llm.ErrRateLimit{Err: errors.New("quota")},
		&llm.ErrProviderUnavailable{},
		&llm.ErrEmptyOutput{},
	}}

	_, err := GenerateWithRetry(context.Background(), gen, validInput(), testPolicy(sleeper))
	require.NoError(t, err)
	assert.Equal(t, 4, gen.calls)
}

func TestGenerateWithRetry_EmptyResultPassesThrough(t *testing.T) {
	sleeper := &recordingSleeper{}
	gen := &scriptedGenerator{set: &quiz.QuestionSet{QuestionType: quiz.ShortAnswer, Questions: []quiz.Question{}}}

	set, err := GenerateWithRetry(context.Background(), gen, validInput(), testPolicy(sleeper))
	require.NoError(t, err)
	assert.Empty(t, set.Questions)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateWithRetry_RejectsInvalidInputWithoutCalling(t *testing.T) {
	gen := &scriptedGenerator{}
	in := validInput()
	in.ChapterText = "too short"

	_, err := GenerateWithRetry(context.Background(), gen, in, testPolicy(&recordingSleeper{}))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "chapterText", ve.Field)
	assert.Zero(t, gen.calls)
}

func TestDo_ParentCancellationIsTerminal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := Do(ctx, testPolicy(&recordingSleeper{}), func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("503 service unavailable")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_AttemptTimeoutIsRetried(t *testing.T) {
	sleeper := &recordingSleeper{}
	p := testPolicy(sleeper)
	p.AttemptTimeout = 10 * time.Millisecond
	calls := 0

	v, err := Do(context.Background(), p, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{time.Second}, sleeper.delays)
}

func TestDo_SleepCancelledStops(t *testing.T) {
	p := DefaultPolicy()
	p.InitialDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	done := make(chan error, 1)
	go func() {
		_, err := Do(ctx, p, func(context.Context) (int, error) {
			calls++
			return 0, errors.New("rate limit")
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop did not stop on cancellation")
	}
}

func TestPolicy_Delay(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, time.Second, p.Delay(1))
	assert.Equal(t, 2*time.Second, p.Delay(2))
	assert.Equal(t, 4*time.Second, p.Delay(3))
	assert.Equal(t, time.Second, p.Delay(0))
}

func TestDo_ZeroRetries(t *testing.T) {
	p := testPolicy(&recordingSleeper{})
	p.MaxRetries = 0
	calls := 0

	_, err := Do(context.Background(), p, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("429")
	})

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, ge.Attempts)
}
