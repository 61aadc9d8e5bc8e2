package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	ErrPhoneTaken = errors.New("phone number is already registered")
	ErrForbidden  = errors.New("not allowed to access another user's data")
	ErrNotFound   = repository.ErrNotFound
)

// StorageError wraps a database or key-value store failure. It is reported
// to the user as a generic save/load failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageError(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("Storage operation failed")
	return &StorageError{Op: op, Err: err}
}

func invalid(field, reason string) error {
	return &generation.ValidationError{Field: field, Reason: reason}
}

func parseQuestionType(s string) (quiz.QuestionType, error) {
	qt, err := quiz.ParseQuestionType(s)
	if err != nil {
		return "", invalid("questionType", err.Error())
	}
	return qt, nil
}
