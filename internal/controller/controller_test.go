package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", &generation.ValidationError{Field: "count", Reason: "must be between 5 and 30"}, http.StatusBadRequest, "invalid count: must be between 5 and 30"},
		{"generation", generation.NewGenerationError(errors.New("invalid JSON"), 4), http.StatusBadGateway, "The AI response format was invalid. Please try again."},
		{"storage", &service.StorageError{Op: "save notes", Err: errors.New("dial tcp")}, http.StatusInternalServerError, storageFailureMessage},
		{"busy", quiz.ErrSlotBusy, http.StatusConflict, quiz.ErrSlotBusy.Error()},
		{"wrapped out of range", fmt.Errorf("question 9: %w", quiz.ErrAnswerOutOfRange), http.StatusBadRequest, "question 9: answer is out of range"},
		{"not gradable", quiz.ErrNotGradable, http.StatusConflict, quiz.ErrNotGradable.Error()},
		{"phone taken", service.ErrPhoneTaken, http.StatusConflict, service.ErrPhoneTaken.Error()},
		{"not found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error()},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, service.ErrForbidden.Error()},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body.Message)
		})
	}
}

func TestErrorResponse_GenerationCategoryInDetails(t *testing.T) {
	_, body := errorResponse(generation.NewGenerationError(errors.New("blocked by safety filter"), 1))
	assert.Equal(t, string(generation.CategoryContentFiltered), body.Details)
}

func TestQuestionTypeParam(t *testing.T) {
	r := gin.New()
	r.GET("/slots/:type", func(c *gin.Context) {
		qt, ok := QuestionTypeParam(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, string(qt))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slots/mcq", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(quiz.MultipleChoice), w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slots/essay", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "unknown question type")
}

func TestCallerID_WithoutMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/me", func(c *gin.Context) {
		if _, ok := CallerID(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
