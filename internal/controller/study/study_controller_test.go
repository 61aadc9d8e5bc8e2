package study

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLogs struct {
	mu   sync.Mutex
	logs []model.PerformanceLog
}

func (m *memoryLogs) Create(_ context.Context, entry *model.PerformanceLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uint(len(m.logs) + 1)
	m.logs = append(m.logs, *entry)
	return nil
}

func (m *memoryLogs) FindPageByUser(context.Context, uint, int, int) ([]model.PerformanceLog, int64, error) {
	return nil, 0, nil
}

func idx(i int) *int { return &i }

func cannedSet(qt quiz.QuestionType) *quiz.QuestionSet {
	opts := []string{"Sun", "Moon", "Rain", "Soil"}
	return &quiz.QuestionSet{
		QuestionType: qt,
		Subject:      "Science",
		Grade:        "7",
		Questions: []quiz.Question{
			{QuestionText: "Plants need?", Options: opts, CorrectAnswerIndex: idx(0)},
			{QuestionText: "Night light?", Options: opts, CorrectAnswerIndex: idx(1)},
		},
	}
}

type testServer struct {
	router *gin.Engine
	token  string
	logs   *memoryLogs
}

func newTestServer(t *testing.T, gen generation.QuestionGenerator) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	token, _, err := issuer.Issue(42)
	require.NoError(t, err)

	policy := generation.DefaultPolicy()
	policy.Sleep = func(context.Context, time.Duration) error { return nil }

	logs := &memoryLogs{}
	workspaces := service.NewWorkspaceRegistry()
	studySvc := service.NewStudyService(workspaces, gen, nil, policy, service.NewPerformanceService(logs))

	r := gin.New()
	api := r.Group("/api")
	protected := api.Group("", auth.Middleware(issuer))
	NewStudyController(studySvc).RegisterRoutes(api, protected)

	return testServer{router: r, token: token, logs: logs}
}

func (s testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

var chapter = strings.Repeat("Photosynthesis happens in the leaves of green plants. ", 3)

func generateBody() dto.GenerateQuestionsRequest {
	return dto.GenerateQuestionsRequest{ChapterText: chapter, Count: 5, Grade: "7", Subject: "Science"}
}

func TestStudyController_GenerateAnswerSubmit(t *testing.T) {
	srv := newTestServer(t, generation.QuestionGeneratorFunc(func(_ context.Context, in generation.Input) (*quiz.QuestionSet, error) {
		return cannedSet(in.QuestionType), nil
	}))

	w := srv.do(t, http.MethodPost, "/api/study/slots/multiple-choice/generate", generateBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var snap quiz.SlotSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, quiz.SlotReady, snap.State)
	assert.Equal(t, quiz.Unanswered, snap.Progress)

	w = srv.do(t, http.MethodPut, "/api/study/slots/mcq/answers", dto.SelectAnswerRequest{Position: idx(0), Option: idx(0)})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, quiz.Partial, snap.Progress)

	w = srv.do(t, http.MethodPut, "/api/study/slots/mcq/answers", dto.SelectAnswerRequest{Position: idx(1), Option: idx(7)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodPost, "/api/study/slots/mcq/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Score.UserScore)
	assert.Equal(t, 2, resp.Score.ScorableQuestions)
	assert.Equal(t, 50, resp.Percent)
	require.NotNil(t, resp.PerformanceLogID)
	require.Len(t, srv.logs.logs, 1)
	assert.Equal(t, uint(42), srv.logs.logs[0].UserID)

	w = srv.do(t, http.MethodPost, "/api/study/slots/mcq/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(t, http.MethodGet, "/api/study/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots.Slots, len(quiz.QuestionTypes))
	assert.Equal(t, quiz.SlotSubmitted, slots.Slots[0].State)
	assert.Zero(t, slots.Generating)
}

func TestStudyController_Errors(t *testing.T) {
	srv := newTestServer(t, generation.QuestionGeneratorFunc(func(context.Context, generation.Input) (*quiz.QuestionSet, error) {
		return nil, &generation.ValidationError{Field: "x", Reason: "never reached"}
	}))

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown type", http.MethodPost, "/api/study/slots/essay/generate", generateBody(), http.StatusBadRequest},
		{"short text", http.MethodPost, "/api/study/slots/mcq/generate", dto.GenerateQuestionsRequest{ChapterText: "short", Grade: "7", Subject: "Science"}, http.StatusBadRequest},
		{"count too high", http.MethodPost, "/api/study/slots/mcq/generate", dto.GenerateQuestionsRequest{ChapterText: chapter, Count: 31, Grade: "7", Subject: "Science"}, http.StatusBadRequest},
		{"answer before generate", http.MethodPut, "/api/study/slots/true_false/answers", dto.SelectAnswerRequest{Position: idx(0), Option: idx(0)}, http.StatusConflict},
		{"missing option", http.MethodPut, "/api/study/slots/true_false/answers", map[string]int{"position": 0}, http.StatusBadRequest},
		{"submit empty slot", http.MethodPost, "/api/study/slots/mcq/submit", nil, http.StatusConflict},
		{"batch without types", http.MethodPost, "/api/study/generate", generateBody(), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestStudyController_GenerationFailureIs502(t *testing.T) {
	srv := newTestServer(t, generation.QuestionGeneratorFunc(func(context.Context, generation.Input) (*quiz.QuestionSet, error) {
		return nil, generation.ErrEmptyResult
	}))

	w := srv.do(t, http.MethodPost, "/api/study/slots/short_answer/generate", generateBody())
	require.Equal(t, http.StatusBadGateway, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to generate content (empty response). Please try again.", body.Message)
	assert.Equal(t, string(generation.CategoryEmptyResponse), body.Details)
}

func TestStudyController_BatchReportsEachSlot(t *testing.T) {
	srv := newTestServer(t, generation.QuestionGeneratorFunc(func(_ context.Context, in generation.Input) (*quiz.QuestionSet, error) {
		return cannedSet(in.QuestionType), nil
	}))

	req := dto.GenerateBatchRequest{QuestionTypes: []string{"true_false", "fill_in_the_blank"}, GenerateQuestionsRequest: generateBody()}
	w := srv.do(t, http.MethodPost, "/api/study/generate", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.BatchGenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, quiz.TrueFalse, resp.Results[0].QuestionType)
	assert.Equal(t, quiz.FillInTheBlank, resp.Results[1].QuestionType)
	for _, r := range resp.Results {
		require.NotNil(t, r.Slot)
		assert.Equal(t, quiz.SlotReady, r.Slot.State)
		assert.Empty(t, r.Error)
	}
}

func TestStudyController_RequiresToken(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/study/slots", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
