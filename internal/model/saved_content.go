package model

import (
	"time"

	"github.com/lshigami/studyaid/internal/quiz"
)

// SavedNote is a notes snapshot kept in the key-value store.
type SavedNote struct {
	Key     string     `json:"key"`
	Notes   quiz.Notes `json:"notes"`
	SavedAt time.Time  `json:"savedAt"`
}

// SavedQuestionSet is a question slot snapshot kept in the key-value store.
type SavedQuestionSet struct {
	Key       string               `json:"key"`
	Set       quiz.QuestionSet     `json:"questionSet"`
	Answers   quiz.SelectedAnswers `json:"selectedAnswers,omitempty"`
	Submitted bool                 `json:"submitted"`
	Score     *quiz.ScoreResult    `json:"score,omitempty"`
	SavedAt   time.Time            `json:"savedAt"`
}
