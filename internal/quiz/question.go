package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// QuestionType identifies the kind of questions held by a set (and the slot that owns it).
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	ShortAnswer    QuestionType = "short_answer"
	FillInTheBlank QuestionType = "fill_in_the_blank"
	TrueFalse      QuestionType = "true_false"
)

// QuestionTypes lists every supported type in display order.
var QuestionTypes = []QuestionType{MultipleChoice, ShortAnswer, FillInTheBlank, TrueFalse}

// ParseQuestionType accepts the canonical names plus the short forms used by the web client.
func ParseQuestionType(s string) (QuestionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiple_choice", "multiple-choice", "mcq":
		return MultipleChoice, nil
	case "short_answer", "short-answer":
		return ShortAnswer, nil
	case "fill_in_the_blank", "fill-in-the-blank", "fill_in_the_blanks":
		return FillInTheBlank, nil
	case "true_false", "true-false":
		return TrueFalse, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

func (t QuestionType) Valid() bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Question is one quiz item as produced by a content generator.
type Question struct {
	QuestionText       string   `json:"questionText"`
	Answer             *string  `json:"answer,omitempty"`
	Options            []string `json:"options,omitempty"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex,omitempty"`
	Explanation        *string  `json:"explanation,omitempty"`
}

// ErrEmptyQuestionText is returned by Validate for a question without text.
var ErrEmptyQuestionText = errors.New("question text is empty")

// Validate rejects questions that cannot be shown to a user.
func (q Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return ErrEmptyQuestionText
	}
	return nil
}

// QuestionSet is an ordered group of questions of one declared type.
type QuestionSet struct {
	QuestionType QuestionType `json:"questionType"`
	Subject      string       `json:"subject"`
	Grade        string       `json:"grade"`
	StartPage    *int         `json:"startPage,omitempty"`
	EndPage      *int         `json:"endPage,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
	Questions    []Question   `json:"questions"`
}

// Clone returns a deep copy so slot snapshots never alias slot internals.
func (s QuestionSet) Clone() QuestionSet {
	out := s
	out.StartPage = clonePtr(s.StartPage)
	out.EndPage = clonePtr(s.EndPage)
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = q.clone()
	}
	return out
}

func (q Question) clone() Question {
	out := q
	out.Answer = clonePtr(q.Answer)
	out.CorrectAnswerIndex = clonePtr(q.CorrectAnswerIndex)
	out.Explanation = clonePtr(q.Explanation)
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SelectedAnswers maps a question position (0-based) to the chosen option index.
// Missing positions mean no answer was chosen.
type SelectedAnswers map[int]int

func (a SelectedAnswers) clone() SelectedAnswers {
	out := make(SelectedAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ScoreResult is produced once per submit.
type ScoreResult struct {
	UserScore         int `json:"userScore"`
	ScorableQuestions int `json:"scorableQuestions"`
	TotalQuestions    int `json:"totalQuestions"`
}

// Percent is the share of scorable questions answered correctly, rounded to an int.
func (r ScoreResult) Percent() int {
	if r.ScorableQuestions == 0 {
		return 0
	}
	return (r.UserScore*200 + r.ScorableQuestions) / (2 * r.ScorableQuestions)
}
