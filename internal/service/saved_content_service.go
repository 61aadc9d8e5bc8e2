package service

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/rs/zerolog/log"
)

// SavedContentService persists slot contents so they can be reloaded later.
type SavedContentService interface {
	SaveSlot(ctx context.Context, userID uint, qt quiz.QuestionType) (*dto.SavedQuestionSetResponse, error)
	SaveNotes(ctx context.Context, userID uint) (*dto.SavedNoteResponse, error)
	ListNotes(ctx context.Context, userID uint) ([]dto.SavedNoteResponse, error)
	// ListQuestionSets lists saved sets, optionally only those of questionType.
	ListQuestionSets(ctx context.Context, userID uint, questionType string) ([]dto.SavedQuestionSetResponse, error)
	Delete(ctx context.Context, userID uint, key string) error
	// LoadQuestionSet restores a saved set into its slot.
	LoadQuestionSet(ctx context.Context, userID uint, key string) (quiz.SlotSnapshot, error)
}

type savedContentService struct {
	repo       repository.SavedContentRepository
	workspaces *WorkspaceRegistry
}

func NewSavedContentService(repo repository.SavedContentRepository, workspaces *WorkspaceRegistry) SavedContentService {
	return &savedContentService{repo: repo, workspaces: workspaces}
}

func (s *savedContentService) SaveSlot(ctx context.Context, userID uint, qt quiz.QuestionType) (*dto.SavedQuestionSetResponse, error) {
	snap, err := s.workspaces.Get(userID).Snapshot(qt)
	if err != nil {
		return nil, err
	}
	if snap.Set == nil {
		return nil, quiz.ErrNotReady
	}

	saved := &model.SavedQuestionSet{
		Set:       *snap.Set,
		Answers:   snap.Answers,
		Submitted: snap.State == quiz.SlotSubmitted,
		Score:     snap.Score,
	}
	if err := s.repo.SaveQuestionSet(ctx, userID, saved); err != nil {
		return nil, storageError("save question set", err)
	}
	log.Info().Uint("userID", userID).Str("key", saved.Key).Msg("Question set saved")

	var resp dto.SavedQuestionSetResponse
	if err := copier.Copy(&resp, saved); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *savedContentService) SaveNotes(ctx context.Context, userID uint) (*dto.SavedNoteResponse, error) {
	snap := s.workspaces.Get(userID).NotesSnapshot()
	if snap.Notes == nil {
		return nil, quiz.ErrNotReady
	}

	saved := &model.SavedNote{Notes: *snap.Notes}
	if err := s.repo.SaveNote(ctx, userID, saved); err != nil {
		return nil, storageError("save notes", err)
	}
	log.Info().Uint("userID", userID).Str("key", saved.Key).Msg("Notes saved")

	var resp dto.SavedNoteResponse
	if err := copier.Copy(&resp, saved); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *savedContentService) ListNotes(ctx context.Context, userID uint) ([]dto.SavedNoteResponse, error) {
	notes, err := s.repo.ListNotes(ctx, userID)
	if err != nil {
		return nil, storageError("list notes", err)
	}
	resp := make([]dto.SavedNoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, dto.SavedNoteResponse{Key: n.Key, Notes: n.Notes, SavedAt: n.SavedAt})
	}
	return resp, nil
}

func (s *savedContentService) ListQuestionSets(ctx context.Context, userID uint, questionType string) ([]dto.SavedQuestionSetResponse, error) {
	var qt quiz.QuestionType
	if questionType != "" {
		var err error
		if qt, err = parseQuestionType(questionType); err != nil {
			return nil, err
		}
	}

	sets, err := s.repo.ListQuestionSets(ctx, userID, qt)
	if err != nil {
		return nil, storageError("list question sets", err)
	}
	resp := make([]dto.SavedQuestionSetResponse, len(sets))
	for i := range sets {
		if err := copier.Copy(&resp[i], &sets[i]); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *savedContentService) Delete(ctx context.Context, userID uint, key string) error {
	err := s.repo.Delete(ctx, userID, key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	}
	return storageError("delete saved content", err)
}

func (s *savedContentService) LoadQuestionSet(ctx context.Context, userID uint, key string) (quiz.SlotSnapshot, error) {
	saved, err := s.repo.GetQuestionSet(ctx, userID, key)
	if errors.Is(err, repository.ErrNotFound) {
		return quiz.SlotSnapshot{}, ErrNotFound
	}
	if err != nil {
		return quiz.SlotSnapshot{}, storageError("load question set", err)
	}
	return s.workspaces.Get(userID).Restore(saved.Set, saved.Answers, saved.Submitted)
}
