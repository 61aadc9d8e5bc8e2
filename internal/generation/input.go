package generation

import (
	"strings"

	"github.com/lshigami/studyaid/internal/quiz"
)

const (
	MinChapterTextLength = 50
	DefaultCount         = 10
	MinCount             = 5
	MaxCount             = 30
)

// Input is what a question generator works from.
type Input struct {
	ChapterText  string
	QuestionType quiz.QuestionType
	Count        int
	Grade        string
	Subject      string
	StartPage    *int
	EndPage      *int
}

// Validate rejects input that must never reach a generator.
func (in Input) Validate() error {
	_, err := in.Normalize()
	return err
}

// Normalize applies the default count and validates the result.
func (in Input) Normalize() (Input, error) {
	if err := validateSource(in.ChapterText, in.Grade, in.Subject, in.StartPage, in.EndPage); err != nil {
		return in, err
	}
	if !in.QuestionType.Valid() {
		return in, &ValidationError{Field: "questionType", Reason: "unknown question type " + string(in.QuestionType)}
	}
	if in.Count == 0 {
		in.Count = DefaultCount
	}
	if in.Count < MinCount || in.Count > MaxCount {
		return in, &ValidationError{Field: "count", Reason: "must be between 5 and 30"}
	}
	return in, nil
}

// NotesInput is what the note generator works from.
type NotesInput struct {
	ChapterText string
	Grade       string
	Subject     string
	StartPage   *int
	EndPage     *int
}

func (in NotesInput) Validate() error {
	return validateSource(in.ChapterText, in.Grade, in.Subject, in.StartPage, in.EndPage)
}

func validateSource(text, grade, subject string, start, end *int) error {
	if len(strings.TrimSpace(text)) < MinChapterTextLength {
		return &ValidationError{Field: "chapterText", Reason: "must be at least 50 characters"}
	}
	if strings.TrimSpace(grade) == "" {
		return &ValidationError{Field: "grade", Reason: "is required"}
	}
	if strings.TrimSpace(subject) == "" {
		return &ValidationError{Field: "subject", Reason: "is required"}
	}
	if start != nil && *start < 1 {
		return &ValidationError{Field: "startPage", Reason: "must be positive"}
	}
	if start != nil && end != nil && *end < *start {
		return &ValidationError{Field: "endPage", Reason: "must not precede startPage"}
	}
	return nil
}
