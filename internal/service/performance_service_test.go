package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logRequest(userID uint) dto.LogPerformanceRequest {
	return dto.LogPerformanceRequest{UserID: userID, Score: 80, Subject: "Math", Grade: "7", QuizType: "multiple_choice", Total: 5, Correct: 4}
}

func TestPerformanceService_Log(t *testing.T) {
	ctx := context.Background()
	repo := &fakePerformanceRepo{}
	svc := NewPerformanceService(repo)

	resp, err := svc.Log(ctx, 1, logRequest(1))
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.UserID)
	assert.Equal(t, 80, resp.Score)
	assert.Len(t, repo.logs, 1)

	_, err = svc.Log(ctx, 2, logRequest(1))
	assert.ErrorIs(t, err, ErrForbidden)

	bad := logRequest(1)
	bad.Correct = 6
	_, err = svc.Log(ctx, 1, bad)
	var ve *generation.ValidationError
	assert.ErrorAs(t, err, &ve)

	repo.createErr = errStoreDown
	_, err = svc.Log(ctx, 1, logRequest(1))
	var se *StorageError
	assert.ErrorAs(t, err, &se)
}

func TestPerformanceService_List(t *testing.T) {
	ctx := context.Background()
	repo := &fakePerformanceRepo{}
	svc := NewPerformanceService(repo)
	for range 12 {
		_, err := svc.Log(ctx, 1, logRequest(1))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, dto.PerformanceLogQuery{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.EqualValues(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Logs, 10)
	assert.Equal(t, uint(12), page.Logs[0].ID)

	page, err = svc.List(ctx, 1, dto.PerformanceLogQuery{UserID: 1, Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Logs, 2)

	page, err = svc.List(ctx, 1, dto.PerformanceLogQuery{UserID: 1, Page: 9})
	require.NoError(t, err)
	assert.NotNil(t, page.Logs)
	assert.Empty(t, page.Logs)

	_, err = svc.List(ctx, 2, dto.PerformanceLogQuery{UserID: 1})
	assert.ErrorIs(t, err, ErrForbidden)

	var ve *generation.ValidationError
	_, err = svc.List(ctx, 1, dto.PerformanceLogQuery{UserID: 1, PageSize: 101})
	assert.ErrorAs(t, err, &ve)
	_, err = svc.List(ctx, 1, dto.PerformanceLogQuery{UserID: 1, Page: -1})
	assert.ErrorAs(t, err, &ve)
}

func TestPerformanceService_LogSubmission(t *testing.T) {
	ctx := context.Background()
	repo := &fakePerformanceRepo{}
	svc := NewPerformanceService(repo)

	set := mcqQuestionSet()
	answers := quiz.SelectedAnswers{0: 0, 1: 3}
	score := quiz.Score(set, answers)
	snap := quiz.SlotSnapshot{
		QuestionType: quiz.MultipleChoice,
		State:        quiz.SlotSubmitted,
		Set:          &set,
		Answers:      answers,
		Score:        &score,
		Review:       quiz.Review(set, answers),
	}

	resp, err := svc.LogSubmission(ctx, 5, snap)
	require.NoError(t, err)
	assert.Equal(t, 33, resp.Score)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Correct)
	assert.Equal(t, "multiple_choice", resp.QuizType)
	assert.Equal(t, "Science", resp.Subject)

	var breakdown []quiz.QuestionReview
	require.NoError(t, json.Unmarshal(resp.Breakdown, &breakdown))
	assert.Len(t, breakdown, 3)

	_, err = svc.LogSubmission(ctx, 5, quiz.SlotSnapshot{})
	assert.ErrorIs(t, err, quiz.ErrNotReady)
}
