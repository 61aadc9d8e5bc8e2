package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/quiz"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/rs/zerolog/log"
)

const storageFailureMessage = "Could not save or load your data. Please try again."

// RouteRegistrar is implemented by every controller. Public routes need no
// token; protected routes sit behind auth.Middleware.
type RouteRegistrar interface {
	RegisterRoutes(public, protected *gin.RouterGroup)
}

// RespondError maps a service error to its HTTP status and writes the body.
func RespondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request failed")
	} else {
		log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var ve *generation.ValidationError
	var ge *generation.GenerationError
	var se *service.StorageError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, dto.ErrorResponse{Message: ve.Error()}
	case errors.As(err, &ge):
		return http.StatusBadGateway, dto.ErrorResponse{Message: ge.Message, Details: string(ge.Category)}
	case errors.As(err, &se):
		return http.StatusInternalServerError, dto.ErrorResponse{Message: storageFailureMessage}
	case errors.Is(err, quiz.ErrWrongType), errors.Is(err, quiz.ErrAnswerOutOfRange):
		return http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, quiz.ErrSlotBusy),
		errors.Is(err, quiz.ErrNotReady),
		errors.Is(err, quiz.ErrAlreadySubmitted),
		errors.Is(err, quiz.ErrNotGradable),
		errors.Is(err, quiz.ErrNotesBlocked),
		errors.Is(err, service.ErrPhoneTaken):
		return http.StatusConflict, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: "Not found"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, dto.ErrorResponse{Message: err.Error()}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"}
}

// BindError answers 400 for a request body or query that failed to bind.
func BindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: err.Error()})
}

// CallerID returns the authenticated user. Routes without auth.Middleware get 401.
func CallerID(c *gin.Context) (uint, bool) {
	id, ok := auth.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
	}
	return id, ok
}

// QuestionTypeParam parses the :type path segment.
func QuestionTypeParam(c *gin.Context) (quiz.QuestionType, bool) {
	qt, err := quiz.ParseQuestionType(c.Param("type"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return "", false
	}
	return qt, true
}
