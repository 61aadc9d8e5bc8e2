package quiz

import (
	"sync"
	"time"
)

// Notes are generated study notes for a page range of a chapter.
type Notes struct {
	Subject   string    `json:"subject"`
	Grade     string    `json:"grade"`
	StartPage *int      `json:"startPage,omitempty"`
	EndPage   *int      `json:"endPage,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NotesSnapshot mirrors SlotSnapshot for the notes slot.
type NotesSnapshot struct {
	State SlotState `json:"state"`
	Notes *Notes    `json:"notes,omitempty"`
	Error string    `json:"error,omitempty"`
}

// Workspace is one user's set of slots: one per question type plus notes.
// Each transition is applied under the workspace lock so it is atomic with
// respect to the slot's prior state; generation itself runs outside the lock.
type Workspace struct {
	mu    sync.Mutex
	slots map[QuestionType]*Slot

	notesState SlotState
	notes      *Notes
	notesErr   string
}

func NewWorkspace() *Workspace {
	w := &Workspace{slots: make(map[QuestionType]*Slot, len(QuestionTypes)), notesState: SlotEmpty}
	for _, t := range QuestionTypes {
		w.slots[t] = NewSlot(t)
	}
	return w
}

func (w *Workspace) slot(t QuestionType) (*Slot, error) {
	s, ok := w.slots[t]
	if !ok {
		return nil, ErrWrongType
	}
	return s, nil
}

func (w *Workspace) BeginGeneration(t QuestionType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(t)
	if err != nil {
		return err
	}
	return s.BeginGeneration()
}

func (w *Workspace) CompleteGeneration(t QuestionType, set QuestionSet) (SlotSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(t)
	if err != nil {
		return SlotSnapshot{}, err
	}
	if err := s.CompleteGeneration(set); err != nil {
		return SlotSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (w *Workspace) FailGeneration(t QuestionType, msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, err := w.slot(t); err == nil {
		s.FailGeneration(msg)
	}
}

func (w *Workspace) SelectAnswer(t QuestionType, pos, option int) (SlotSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(t)
	if err != nil {
		return SlotSnapshot{}, err
	}
	if err := s.SelectAnswer(pos, option); err != nil {
		return SlotSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (w *Workspace) Submit(t QuestionType) (SlotSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(t)
	if err != nil {
		return SlotSnapshot{}, err
	}
	if _, err := s.Submit(); err != nil {
		return SlotSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (w *Workspace) Restore(set QuestionSet, answers SelectedAnswers, submitted bool) (SlotSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(set.QuestionType)
	if err != nil {
		return SlotSnapshot{}, err
	}
	if err := s.Restore(set, answers, submitted); err != nil {
		return SlotSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (w *Workspace) Snapshot(t QuestionType) (SlotSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.slot(t)
	if err != nil {
		return SlotSnapshot{}, err
	}
	return s.Snapshot(), nil
}

// Snapshots returns every question slot in QuestionTypes order.
func (w *Workspace) Snapshots() []SlotSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]SlotSnapshot, 0, len(QuestionTypes))
	for _, t := range QuestionTypes {
		out = append(out, w.slots[t].Snapshot())
	}
	return out
}

// Generating counts question slots with a generation in flight.
func (w *Workspace) Generating() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generatingLocked()
}

func (w *Workspace) generatingLocked() int {
	n := 0
	for _, s := range w.slots {
		if s.state == SlotGenerating {
			n++
		}
	}
	return n
}

// BeginNotes starts notes generation. It is refused while any question slot is generating.
func (w *Workspace) BeginNotes() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.notesState == SlotGenerating {
		return ErrSlotBusy
	}
	if w.generatingLocked() > 0 {
		return ErrNotesBlocked
	}
	w.notesState = SlotGenerating
	w.notes = nil
	w.notesErr = ""
	return nil
}

func (w *Workspace) CompleteNotes(n Notes) (NotesSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.notesState != SlotGenerating {
		return NotesSnapshot{}, ErrNotReady
	}
	w.notes = &n
	w.notesState = SlotReady
	return w.notesSnapshotLocked(), nil
}

func (w *Workspace) FailNotes(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.notesState != SlotGenerating {
		return
	}
	w.notesState = SlotEmpty
	w.notesErr = msg
}

func (w *Workspace) NotesSnapshot() NotesSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.notesSnapshotLocked()
}

func (w *Workspace) notesSnapshotLocked() NotesSnapshot {
	snap := NotesSnapshot{State: w.notesState, Error: w.notesErr}
	if w.notes != nil {
		n := *w.notes
		snap.Notes = &n
	}
	return snap
}
