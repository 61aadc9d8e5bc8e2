package service

import (
	"context"
	"encoding/json"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PerformanceService interface {
	// Log records a result reported by the client on behalf of callerID.
	Log(ctx context.Context, callerID uint, req dto.LogPerformanceRequest) (*dto.PerformanceLogResponse, error)
	// LogSubmission records the result of a submitted slot.
	LogSubmission(ctx context.Context, userID uint, snap quiz.SlotSnapshot) (*dto.PerformanceLogResponse, error)
	List(ctx context.Context, callerID uint, q dto.PerformanceLogQuery) (*dto.PerformanceLogPage, error)
}

type performanceService struct {
	logs repository.PerformanceLogRepository
}

func NewPerformanceService(logs repository.PerformanceLogRepository) PerformanceService {
	return &performanceService{logs: logs}
}

func (s *performanceService) Log(ctx context.Context, callerID uint, req dto.LogPerformanceRequest) (*dto.PerformanceLogResponse, error) {
	if req.UserID != callerID {
		return nil, ErrForbidden
	}
	if req.Correct > req.Total {
		return nil, invalid("correct", "must not exceed total")
	}

	entry := &model.PerformanceLog{
		UserID:   req.UserID,
		Score:    req.Score,
		Subject:  req.Subject,
		Grade:    req.Grade,
		QuizType: req.QuizType,
		Total:    req.Total,
		Correct:  req.Correct,
	}
	return s.create(ctx, entry)
}

func (s *performanceService) LogSubmission(ctx context.Context, userID uint, snap quiz.SlotSnapshot) (*dto.PerformanceLogResponse, error) {
	if snap.Set == nil || snap.Score == nil {
		return nil, quiz.ErrNotReady
	}

	breakdown, err := json.Marshal(snap.Review)
	if err != nil {
		return nil, err
	}

	entry := &model.PerformanceLog{
		UserID:    userID,
		Score:     snap.Score.Percent(),
		Subject:   snap.Set.Subject,
		Grade:     snap.Set.Grade,
		QuizType:  string(snap.QuestionType),
		Total:     snap.Score.TotalQuestions,
		Correct:   snap.Score.UserScore,
		Breakdown: datatypes.JSON(breakdown),
	}
	return s.create(ctx, entry)
}

func (s *performanceService) create(ctx context.Context, entry *model.PerformanceLog) (*dto.PerformanceLogResponse, error) {
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, storageError("insert performance log", err)
	}
	log.Info().
		Uint("userID", entry.UserID).
		Str("quizType", entry.QuizType).
		Int("score", entry.Score).
		Msg("Performance logged")

	var resp dto.PerformanceLogResponse
	if err := copier.Copy(&resp, entry); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *performanceService) List(ctx context.Context, callerID uint, q dto.PerformanceLogQuery) (*dto.PerformanceLogPage, error) {
	if q.UserID != callerID {
		return nil, ErrForbidden
	}

	page, pageSize := q.Page, q.PageSize
	switch {
	case page == 0:
		page = 1
	case page < 0:
		return nil, invalid("page", "must be at least 1")
	}
	switch {
	case pageSize == 0:
		pageSize = defaultPageSize
	case pageSize < 0 || pageSize > maxPageSize:
		return nil, invalid("pageSize", "must be between 1 and 100")
	}

	logs, total, err := s.logs.FindPageByUser(ctx, q.UserID, page, pageSize)
	if err != nil {
		return nil, storageError("list performance logs", err)
	}

	resp := &dto.PerformanceLogPage{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	if err := copier.Copy(&resp.Logs, &logs); err != nil {
		return nil, err
	}
	if resp.Logs == nil {
		resp.Logs = []dto.PerformanceLogResponse{}
	}
	return resp, nil
}
