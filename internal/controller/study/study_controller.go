package study

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/controller"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/rs/zerolog/log"
)

type StudyController struct {
	studyService service.StudyService
}

func NewStudyController(studyService service.StudyService) *StudyController {
	return &StudyController{studyService: studyService}
}

func (ctrl *StudyController) RegisterRoutes(_, protected *gin.RouterGroup) {
	study := protected.Group("/study")
	study.GET("/slots", ctrl.GetSlots)
	study.POST("/slots/:type/generate", ctrl.GenerateQuestions)
	study.POST("/generate", ctrl.GenerateBatch)
	study.PUT("/slots/:type/answers", ctrl.SelectAnswer)
	study.POST("/slots/:type/submit", ctrl.Submit)
	study.POST("/notes/generate", ctrl.GenerateNotes)
}

// GetSlots godoc
// @Summary Current study slots
// @Description One snapshot per question type, the notes slot and the number of generations in flight.
// @Tags study
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SlotsResponse
// @Router /study/slots [get]
func (ctrl *StudyController) GetSlots(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.studyService.Slots(userID))
}

// GenerateQuestions godoc
// @Summary Generate questions into a slot
// @Description Replaces the slot's current set. Transient AI failures are retried with backoff.
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Question type" Enums(multiple_choice, short_answer, fill_in_the_blank, true_false)
// @Param input body dto.GenerateQuestionsRequest true "Chapter text and options"
// @Success 200 {object} quiz.SlotSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Slot busy"
// @Failure 502 {object} dto.ErrorResponse "Generation failed"
// @Router /study/slots/{type}/generate [post]
func (ctrl *StudyController) GenerateQuestions(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	qt, ok := controller.QuestionTypeParam(c)
	if !ok {
		return
	}
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BindError(c, err)
		return
	}

	snap, err := ctrl.studyService.Generate(c.Request.Context(), userID, qt, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GenerateBatch godoc
// @Summary Generate several slots at once
// @Description Slots are generated concurrently and succeed or fail independently.
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.GenerateBatchRequest true "Question types plus shared input"
// @Success 200 {object} dto.BatchGenerateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /study/generate [post]
func (ctrl *StudyController) GenerateBatch(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	var req dto.GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BindError(c, err)
		return
	}

	resp, err := ctrl.studyService.GenerateAll(c.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectAnswer godoc
// @Summary Choose an option
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Question type"
// @Param answer body dto.SelectAnswerRequest true "Question position and option index"
// @Success 200 {object} quiz.SlotSnapshot
// @Failure 400 {object} dto.ErrorResponse "Out of range"
// @Failure 409 {object} dto.ErrorResponse "Slot not ready or already submitted"
// @Router /study/slots/{type}/answers [put]
func (ctrl *StudyController) SelectAnswer(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	qt, ok := controller.QuestionTypeParam(c)
	if !ok {
		return
	}
	var req dto.SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BindError(c, err)
		return
	}

	snap, err := ctrl.studyService.SelectAnswer(userID, qt, *req.Position, *req.Option)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Submit godoc
// @Summary Submit a multiple-choice slot
// @Description Scores the set, freezes the slot and records the result in the performance history.
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param type path string true "Question type"
// @Success 200 {object} dto.SubmitResponse
// @Failure 409 {object} dto.ErrorResponse "Not ready, already submitted or not gradable"
// @Router /study/slots/{type}/submit [post]
func (ctrl *StudyController) Submit(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	qt, ok := controller.QuestionTypeParam(c)
	if !ok {
		return
	}

	resp, err := ctrl.studyService.Submit(c.Request.Context(), userID, qt)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	log.Info().Uint("userID", userID).Int("percent", resp.Percent).Msg("Quiz submitted")
	c.JSON(http.StatusOK, resp)
}

// GenerateNotes godoc
// @Summary Generate study notes
// @Description Refused while any question slot is generating.
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.GenerateNotesRequest true "Chapter text and options"
// @Success 200 {object} quiz.NotesSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Questions are generating"
// @Failure 502 {object} dto.ErrorResponse "Generation failed"
// @Router /study/notes/generate [post]
func (ctrl *StudyController) GenerateNotes(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	var req dto.GenerateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BindError(c, err)
		return
	}

	snap, err := ctrl.studyService.GenerateNotes(c.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
