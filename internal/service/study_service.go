package service

import (
	"context"
	"errors"
	"sync"

	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// WorkspaceRegistry holds one in-memory quiz.Workspace per user.
type WorkspaceRegistry struct {
	mu         sync.Mutex
	workspaces map[uint]*quiz.Workspace
}

func NewWorkspaceRegistry() *WorkspaceRegistry {
	return &WorkspaceRegistry{workspaces: make(map[uint]*quiz.Workspace)}
}

func (r *WorkspaceRegistry) Get(userID uint) *quiz.Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.workspaces[userID]
	if !ok {
		ws = quiz.NewWorkspace()
		r.workspaces[userID] = ws
	}
	return ws
}

type StudyService interface {
	Slots(userID uint) dto.SlotsResponse
	Generate(ctx context.Context, userID uint, qt quiz.QuestionType, req dto.GenerateQuestionsRequest) (quiz.SlotSnapshot, error)
	// GenerateAll fills several slots concurrently; each slot succeeds or fails on its own.
	GenerateAll(ctx context.Context, userID uint, req dto.GenerateBatchRequest) (*dto.BatchGenerateResponse, error)
	SelectAnswer(userID uint, qt quiz.QuestionType, position, option int) (quiz.SlotSnapshot, error)
	Submit(ctx context.Context, userID uint, qt quiz.QuestionType) (*dto.SubmitResponse, error)
	GenerateNotes(ctx context.Context, userID uint, req dto.GenerateNotesRequest) (quiz.NotesSnapshot, error)
}

type studyService struct {
	workspaces  *WorkspaceRegistry
	questions   generation.QuestionGenerator
	notes       generation.NotesGenerator
	policy      generation.Policy
	performance PerformanceService
}

func NewStudyService(
	workspaces *WorkspaceRegistry,
	questions generation.QuestionGenerator,
	notes generation.NotesGenerator,
	policy generation.Policy,
	performance PerformanceService,
) StudyService {
	return &studyService{
		workspaces:  workspaces,
		questions:   questions,
		notes:       notes,
		policy:      policy,
		performance: performance,
	}
}

func (s *studyService) Slots(userID uint) dto.SlotsResponse {
	ws := s.workspaces.Get(userID)
	return dto.SlotsResponse{
		Slots:      ws.Snapshots(),
		Notes:      ws.NotesSnapshot(),
		Generating: ws.Generating(),
	}
}

func questionInput(qt quiz.QuestionType, req dto.GenerateQuestionsRequest) generation.Input {
	return generation.Input{
		ChapterText:  req.ChapterText,
		QuestionType: qt,
		Count:        req.Count,
		Grade:        req.Grade,
		Subject:      req.Subject,
		StartPage:    req.StartPage,
		EndPage:      req.EndPage,
	}
}

// requireQuestions turns a well-formed but empty result into a retryable
// failure whenever questions were requested.
func requireQuestions(gen generation.QuestionGenerator) generation.QuestionGenerator {
	return generation.QuestionGeneratorFunc(func(ctx context.Context, in generation.Input) (*quiz.QuestionSet, error) {
		set, err := gen.Generate(ctx, in)
		if err != nil {
			return nil, err
		}
		if set != nil && len(set.Questions) == 0 && in.Count > 0 {
			return nil, generation.ErrEmptyResult
		}
		return set, nil
	})
}

func (s *studyService) Generate(ctx context.Context, userID uint, qt quiz.QuestionType, req dto.GenerateQuestionsRequest) (quiz.SlotSnapshot, error) {
	in, err := questionInput(qt, req).Normalize()
	if err != nil {
		return quiz.SlotSnapshot{}, err
	}

	ws := s.workspaces.Get(userID)
	if err := ws.BeginGeneration(qt); err != nil {
		return quiz.SlotSnapshot{}, err
	}
	// The slot leaves Generating on every exit, panics included.
	failure := "Question generation stopped unexpectedly."
	defer func() {
		if failure != "" {
			ws.FailGeneration(qt, failure)
		}
	}()

	set, err := generation.GenerateWithRetry(ctx, requireQuestions(s.questions), in, s.policy)
	if err != nil {
		failure = err.Error()
		log.Error().Err(err).Uint("userID", userID).Str("questionType", string(qt)).Msg("Question generation failed")
		return quiz.SlotSnapshot{}, err
	}

	snap, err := ws.CompleteGeneration(qt, *set)
	if err != nil {
		failure = err.Error()
		return quiz.SlotSnapshot{}, err
	}
	failure = ""
	log.Info().
		Uint("userID", userID).
		Str("questionType", string(qt)).
		Int("questions", len(set.Questions)).
		Msg("Question set generated")
	return snap, nil
}

func (s *studyService) GenerateAll(ctx context.Context, userID uint, req dto.GenerateBatchRequest) (*dto.BatchGenerateResponse, error) {
	var types []quiz.QuestionType
	seen := make(map[quiz.QuestionType]bool)
	for _, raw := range req.QuestionTypes {
		qt, err := parseQuestionType(raw)
		if err != nil {
			return nil, err
		}
		if !seen[qt] {
			seen[qt] = true
			types = append(types, qt)
		}
	}
	if len(types) == 0 {
		return nil, invalid("questionTypes", "at least one question type is required")
	}
	// Every slot shares the input, so one check covers them all.
	if _, err := questionInput(types[0], req.GenerateQuestionsRequest).Normalize(); err != nil {
		return nil, err
	}

	results := make([]dto.BatchResult, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, qt := range types {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Uint("userID", userID).Str("questionType", string(qt)).Msg("Question generation panicked")
					results[i] = batchResult(qt, quiz.SlotSnapshot{}, errBatchPanic)
				}
			}()
			snap, genErr := s.Generate(gctx, userID, qt, req.GenerateQuestionsRequest)
			results[i] = batchResult(qt, snap, genErr)
			// Slot failures stay in their result; only a departed caller ends the batch.
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.BatchGenerateResponse{Results: results}, nil
}

var errBatchPanic = errors.New("question generation stopped unexpectedly")

func batchResult(qt quiz.QuestionType, snap quiz.SlotSnapshot, err error) dto.BatchResult {
	res := dto.BatchResult{QuestionType: qt}
	if err == nil {
		res.Slot = &snap
		return res
	}
	res.Error = err.Error()
	var ge *generation.GenerationError
	if errors.As(err, &ge) {
		res.Category = string(ge.Category)
	}
	return res
}

func (s *studyService) SelectAnswer(userID uint, qt quiz.QuestionType, position, option int) (quiz.SlotSnapshot, error) {
	return s.workspaces.Get(userID).SelectAnswer(qt, position, option)
}

func (s *studyService) Submit(ctx context.Context, userID uint, qt quiz.QuestionType) (*dto.SubmitResponse, error) {
	snap, err := s.workspaces.Get(userID).Submit(qt)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubmitResponse{Slot: snap, Score: *snap.Score, Percent: snap.Score.Percent()}
	entry, err := s.performance.LogSubmission(ctx, userID, snap)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("Submitted quiz could not be logged")
		resp.Warning = "Your score was calculated but could not be saved to your performance history."
		return resp, nil
	}
	resp.PerformanceLogID = &entry.ID
	return resp, nil
}

func (s *studyService) GenerateNotes(ctx context.Context, userID uint, req dto.GenerateNotesRequest) (quiz.NotesSnapshot, error) {
	in := generation.NotesInput{
		ChapterText: req.ChapterText,
		Grade:       req.Grade,
		Subject:     req.Subject,
		StartPage:   req.StartPage,
		EndPage:     req.EndPage,
	}
	if err := in.Validate(); err != nil {
		return quiz.NotesSnapshot{}, err
	}

	ws := s.workspaces.Get(userID)
	if err := ws.BeginNotes(); err != nil {
		return quiz.NotesSnapshot{}, err
	}
	failure := "Notes generation stopped unexpectedly."
	defer func() {
		if failure != "" {
			ws.FailNotes(failure)
		}
	}()

	notes, err := generation.GenerateNotesWithRetry(ctx, s.notes, in, s.policy)
	if err != nil {
		failure = err.Error()
		log.Error().Err(err).Uint("userID", userID).Msg("Notes generation failed")
		return quiz.NotesSnapshot{}, err
	}
	snap, err := ws.CompleteNotes(*notes)
	if err != nil {
		failure = err.Error()
		return quiz.NotesSnapshot{}, err
	}
	failure = ""
	return snap, nil
}
