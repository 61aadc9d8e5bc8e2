package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/studyaid/internal/llm"
)

// Category groups terminal generation failures by what the user is told.
type Category string

const (
	CategoryInvalidFormat   Category = "invalid_format"
	CategoryContentFiltered Category = "content_filtered"
	CategoryEmptyResponse   Category = "empty_response"
	CategoryGeneric         Category = "generic"
)

// GenerationError is the single error a retried generation returns once the
// policy gives up. Message is safe to show to the user.
type GenerationError struct {
	Category Category
	Message  string
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError categorises err and builds the user-facing message.
func NewGenerationError(err error, attempts int) *GenerationError {
	ge := &GenerationError{Attempts: attempts, Err: err}
	switch ge.Category = categorize(err); ge.Category {
	case CategoryInvalidFormat:
		ge.Message = "The AI response format was invalid. Please try again."
	case CategoryContentFiltered:
		ge.Message = "Generation failed due to content filtering. Try a different section of the text."
	case CategoryEmptyResponse:
		ge.Message = "Failed to generate content (empty response). Please try again."
	default:
		ge.Message = fmt.Sprintf("Failed to generate questions: %v", err)
	}
	return ge
}

func categorize(err error) Category {
	var filtered *llm.ErrContentFiltered
	var empty *llm.ErrEmptyOutput
	switch {
	case errors.As(err, &filtered):
		return CategoryContentFiltered
	case errors.As(err, &empty):
		return CategoryEmptyResponse
	}

	msg := strings.ToLower(err.Error())
	switch {
	case isJSONFailure(err):
		return CategoryInvalidFormat
	case strings.Contains(msg, "content filter") || strings.Contains(msg, "safety") || strings.Contains(msg, "blocked"):
		return CategoryContentFiltered
	case strings.Contains(msg, "empty output") || strings.Contains(msg, "empty response"):
		return CategoryEmptyResponse
	}
	return CategoryGeneric
}

func isJSONFailure(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid json") ||
		strings.Contains(msg, "failed to parse") ||
		strings.Contains(msg, "unexpected end of json")
}

// retryableMarkers are the message fragments that mark a transient failure.
var retryableMarkers = []string{
	"503",
	"service unavailable",
	"429",
	"rate limit",
	"too many requests",
	"overloaded",
	"empty output",
	"timed out",
	"timeout",
	"invalid json",
	"failed to parse",
}

// IsRetryable reports whether err is a transient failure worth another attempt.
// Cancellation of the caller's context is never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var rl *llm.ErrRateLimit
	var unavail *llm.ErrProviderUnavailable
	var empty *llm.ErrEmptyOutput
	if errors.As(err, &rl) || errors.As(err, &unavail) || errors.As(err, &empty) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range retryableMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// ValidationError rejects generation input before any generator call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrEmptyResult marks a well-formed result with no content when some was requested.
var ErrEmptyResult = errors.New("empty output: generator returned no questions")
