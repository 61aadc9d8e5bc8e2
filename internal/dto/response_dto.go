package dto

import (
	"encoding/json"
	"time"

	"github.com/lshigami/studyaid/internal/quiz"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type PerformanceLogResponse struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Score     int             `json:"score"`
	Subject   string          `json:"subject"`
	Grade     string          `json:"grade"`
	QuizType  string          `json:"quizType"`
	Total     int             `json:"total"`
	Correct   int             `json:"correct"`
	Breakdown json.RawMessage `json:"breakdown,omitempty" swaggertype:"array,object"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PerformanceLogPage struct {
	Logs       []PerformanceLogResponse `json:"logs"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	Total      int64                    `json:"total"`
	TotalPages int                      `json:"totalPages"`
}

type SlotsResponse struct {
	Slots      []quiz.SlotSnapshot `json:"slots"`
	Notes      quiz.NotesSnapshot  `json:"notes"`
	Generating int                 `json:"generating"`
}

// BatchResult is the outcome of one slot in a multi-type generation.
type BatchResult struct {
	QuestionType quiz.QuestionType  `json:"questionType"`
	Slot         *quiz.SlotSnapshot `json:"slot,omitempty"`
	Error        string             `json:"error,omitempty"`
	Category     string             `json:"category,omitempty"`
}

type BatchGenerateResponse struct {
	Results []BatchResult `json:"results"`
}

type SubmitResponse struct {
	Slot             quiz.SlotSnapshot `json:"slot"`
	Score            quiz.ScoreResult  `json:"score"`
	Percent          int               `json:"percent"`
	PerformanceLogID *uint             `json:"performanceLogId,omitempty"`
	Warning          string            `json:"warning,omitempty"`
}

type SavedNoteResponse struct {
	Key     string     `json:"key"`
	Notes   quiz.Notes `json:"notes"`
	SavedAt time.Time  `json:"savedAt"`
}

type SavedQuestionSetResponse struct {
	Key       string               `json:"key"`
	Set       quiz.QuestionSet     `json:"questionSet"`
	Answers   quiz.SelectedAnswers `json:"selectedAnswers,omitempty"`
	Submitted bool                 `json:"submitted"`
	Score     *quiz.ScoreResult    `json:"score,omitempty"`
	SavedAt   time.Time            `json:"savedAt"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
