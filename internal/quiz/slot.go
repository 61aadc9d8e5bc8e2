package quiz

import (
	"errors"
	"fmt"
)

// SlotState is the lifecycle position of one question-type slot.
type SlotState string

const (
	SlotEmpty      SlotState = "empty"
	SlotGenerating SlotState = "generating"
	SlotReady      SlotState = "ready"
	SlotSubmitted  SlotState = "submitted"
)

// Progress refines SlotReady.
type Progress string

const (
	Unanswered Progress = "unanswered"
	Partial    Progress = "partially_answered"
	Answered   Progress = "answered"
)

var (
	ErrSlotBusy         = errors.New("a generation is already in progress for this slot")
	ErrNotReady         = errors.New("slot has no question set ready")
	ErrAlreadySubmitted = errors.New("question set was already submitted")
	ErrNotGradable      = errors.New("only multiple-choice sets are graded")
	ErrAnswerOutOfRange = errors.New("answer is out of range")
	ErrNotesBlocked     = errors.New("notes cannot be generated while questions are generating")
	ErrWrongType        = errors.New("question set type does not match slot")
)

// Slot holds the state of one question type. It is not safe for concurrent use;
// Workspace serialises access.
type Slot struct {
	qtype   QuestionType
	state   SlotState
	set     *QuestionSet
	answers SelectedAnswers
	score   *ScoreResult
	lastErr string
}

func NewSlot(t QuestionType) *Slot {
	return &Slot{qtype: t, state: SlotEmpty}
}

func (s *Slot) State() SlotState { return s.state }

// BeginGeneration moves the slot to Generating, discarding any previous set,
// answers and score.
func (s *Slot) BeginGeneration() error {
	if s.state == SlotGenerating {
		return ErrSlotBusy
	}
	s.state = SlotGenerating
	s.set = nil
	s.answers = nil
	s.score = nil
	s.lastErr = ""
	return nil
}

// CompleteGeneration installs a freshly generated set. Only valid while Generating.
func (s *Slot) CompleteGeneration(set QuestionSet) error {
	if s.state != SlotGenerating {
		return fmt.Errorf("complete generation in state %s: %w", s.state, ErrNotReady)
	}
	if set.QuestionType != s.qtype {
		return ErrWrongType
	}
	c := set.Clone()
	s.set = &c
	s.answers = SelectedAnswers{}
	s.state = SlotReady
	return nil
}

// FailGeneration returns a Generating slot to Empty and remembers the message.
func (s *Slot) FailGeneration(msg string) {
	if s.state != SlotGenerating {
		return
	}
	s.state = SlotEmpty
	s.lastErr = msg
}

// SelectAnswer records the option chosen for the question at pos.
func (s *Slot) SelectAnswer(pos, option int) error {
	switch s.state {
	case SlotReady:
	case SlotSubmitted:
		return ErrAlreadySubmitted
	default:
		return ErrNotReady
	}
	if pos < 0 || pos >= len(s.set.Questions) {
		return fmt.Errorf("question %d: %w", pos, ErrAnswerOutOfRange)
	}
	if n := len(s.set.Questions[pos].Options); option < 0 || option >= n {
		return fmt.Errorf("option %d of question %d: %w", option, pos, ErrAnswerOutOfRange)
	}
	s.answers[pos] = option
	return nil
}

// Submit grades the set and freezes the slot.
func (s *Slot) Submit() (ScoreResult, error) {
	switch s.state {
	case SlotReady:
	case SlotSubmitted:
		return ScoreResult{}, ErrAlreadySubmitted
	default:
		return ScoreResult{}, ErrNotReady
	}
	if s.qtype != MultipleChoice {
		return ScoreResult{}, ErrNotGradable
	}
	res := Score(*s.set, s.answers)
	s.score = &res
	s.state = SlotSubmitted
	return res, nil
}

// Restore loads a previously saved set. A submitted multiple-choice snapshot
// comes back frozen with its score recomputed from the same answers.
func (s *Slot) Restore(set QuestionSet, answers SelectedAnswers, submitted bool) error {
	if s.state == SlotGenerating {
		return ErrSlotBusy
	}
	if set.QuestionType != s.qtype {
		return ErrWrongType
	}
	c := set.Clone()
	s.set = &c
	s.answers = SelectedAnswers{}
	for pos, opt := range answers {
		if pos >= 0 && pos < len(c.Questions) && opt >= 0 && opt < len(c.Questions[pos].Options) {
			s.answers[pos] = opt
		}
	}
	s.score = nil
	s.lastErr = ""
	s.state = SlotReady
	if submitted && s.qtype == MultipleChoice {
		res := Score(c, s.answers)
		s.score = &res
		s.state = SlotSubmitted
	}
	return nil
}

// SlotSnapshot is a copy of a slot that is safe to hand out.
type SlotSnapshot struct {
	QuestionType QuestionType     `json:"questionType"`
	State        SlotState        `json:"state"`
	Progress     Progress         `json:"progress,omitempty"`
	Set          *QuestionSet     `json:"set,omitempty"`
	Answers      SelectedAnswers  `json:"answers,omitempty"`
	Score        *ScoreResult     `json:"score,omitempty"`
	Review       []QuestionReview `json:"review,omitempty"`
	Error        string           `json:"error,omitempty"`
}

func (s *Slot) Snapshot() SlotSnapshot {
	snap := SlotSnapshot{QuestionType: s.qtype, State: s.state, Error: s.lastErr}
	if s.set != nil {
		c := s.set.Clone()
		snap.Set = &c
		snap.Answers = s.answers.clone()
	}
	if s.state == SlotReady {
		snap.Progress = s.progress()
	}
	if s.score != nil {
		sc := *s.score
		snap.Score = &sc
		snap.Review = Review(*s.set, s.answers)
	}
	return snap
}

func (s *Slot) progress() Progress {
	switch n := len(s.answers); {
	case n == 0:
		return Unanswered
	case n < len(s.set.Questions):
		return Partial
	default:
		return Answered
	}
}
