package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/rs/zerolog/log"
)

// Policy bounds how a generation call is retried.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// InitialDelay is the wait after the first failed attempt; it doubles each retry.
	InitialDelay time.Duration
	// AttemptTimeout caps a single attempt. Zero means no per-attempt cap.
	AttemptTimeout time.Duration
	// Sleep waits between attempts; nil uses a timer that honours ctx.
	Sleep func(ctx context.Context, d time.Duration) error
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:     3,
		InitialDelay:   time.Second,
		AttemptTimeout: 60 * time.Second,
	}
}

// Delay is the wait after the given failed attempt (1-based): InitialDelay * 2^(attempt-1).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.InitialDelay << (attempt - 1)
}

// Do runs op until it succeeds, fails with a terminal error, or runs out of
// retries. Attempts are strictly sequential. Any failure is returned as a
// *GenerationError.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var zero T
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	maxRetries := max(p.MaxRetries, 0)

	for attempt := 1; ; attempt++ {
		v, err := runAttempt(ctx, p.AttemptTimeout, op)
		if err == nil {
			return v, nil
		}

		if ctx.Err() != nil {
			return zero, NewGenerationError(ctx.Err(), attempt)
		}
		if !IsRetryable(err) {
			log.Error().Err(err).Int("attempt", attempt).Msg("generation failed with a non-retryable error")
			return zero, NewGenerationError(err, attempt)
		}
		if attempt > maxRetries {
			log.Error().Err(err).Int("attempts", attempt).Msg("generation retries exhausted")
			return zero, NewGenerationError(err, attempt)
		}

		delay := p.Delay(attempt)
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("retries_left", maxRetries-attempt+1).
			Dur("delay", delay).
			Msg("retrying generation")
		if err := sleep(ctx, delay); err != nil {
			return zero, NewGenerationError(err, attempt)
		}
	}
}

func runAttempt[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := op(attemptCtx)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("attempt timed out after %s: %w", timeout, err)
	}
	return v, err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// GenerateWithRetry validates in, then calls gen under the policy. The result
// is structurally complete or the call fails; an empty question list is
// logged and passed through, leaving the decision to the caller.
func GenerateWithRetry(ctx context.Context, gen QuestionGenerator, in Input, p Policy) (*quiz.QuestionSet, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	return Do(ctx, p, func(ctx context.Context) (*quiz.QuestionSet, error) {
		set, err := gen.Generate(ctx, in)
		if err != nil {
			return nil, err
		}
		if set == nil {
			return nil, errors.New("failed to parse generation result: no question set")
		}
		if len(set.Questions) == 0 && in.Count > 0 {
			log.Warn().
				Str("question_type", string(in.QuestionType)).
				Int("requested", in.Count).
				Msg("generator returned no questions")
		}
		return set, nil
	})
}
