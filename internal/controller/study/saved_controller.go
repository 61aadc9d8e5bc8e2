package study

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/controller"
	"github.com/lshigami/studyaid/internal/service"
)

type SavedContentController struct {
	savedService service.SavedContentService
}

func NewSavedContentController(savedService service.SavedContentService) *SavedContentController {
	return &SavedContentController{savedService: savedService}
}

func (ctrl *SavedContentController) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.POST("/study/slots/:type/save", ctrl.SaveSlot)
	protected.POST("/study/notes/save", ctrl.SaveNotes)

	saved := protected.Group("/saved")
	saved.GET("/notes", ctrl.ListNotes)
	saved.GET("/question-sets", ctrl.ListQuestionSets)
	saved.DELETE("/:key", ctrl.Delete)
	saved.POST("/question-sets/:key/load", ctrl.LoadQuestionSet)
}

// SaveSlot godoc
// @Summary Save a slot's question set
// @Description Each save creates a new record, answers and score included.
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param type path string true "Question type"
// @Success 201 {object} dto.SavedQuestionSetResponse
// @Failure 409 {object} dto.ErrorResponse "Slot has no set"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /study/slots/{type}/save [post]
func (ctrl *SavedContentController) SaveSlot(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	qt, ok := controller.QuestionTypeParam(c)
	if !ok {
		return
	}

	resp, err := ctrl.savedService.SaveSlot(c.Request.Context(), userID, qt)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SaveNotes godoc
// @Summary Save the current notes
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.SavedNoteResponse
// @Failure 409 {object} dto.ErrorResponse "No notes generated"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /study/notes/save [post]
func (ctrl *SavedContentController) SaveNotes(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}

	resp, err := ctrl.savedService.SaveNotes(c.Request.Context(), userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListNotes godoc
// @Summary List saved notes
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SavedNoteResponse
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /saved/notes [get]
func (ctrl *SavedContentController) ListNotes(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}

	notes, err := ctrl.savedService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// ListQuestionSets godoc
// @Summary List saved question sets
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param type query string false "Only sets of this question type"
// @Success 200 {array} dto.SavedQuestionSetResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown question type"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /saved/question-sets [get]
func (ctrl *SavedContentController) ListQuestionSets(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}

	sets, err := ctrl.savedService.ListQuestionSets(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sets)
}

// Delete godoc
// @Summary Delete a saved note or question set
// @Tags saved
// @Security BearerAuth
// @Param key path string true "Saved record key"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /saved/{key} [delete]
func (ctrl *SavedContentController) Delete(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}

	if err := ctrl.savedService.Delete(c.Request.Context(), userID, c.Param("key")); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadQuestionSet godoc
// @Summary Load a saved set into its slot
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param key path string true "Saved record key"
// @Success 200 {object} quiz.SlotSnapshot
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 409 {object} dto.ErrorResponse "Slot is generating"
// @Router /saved/question-sets/{key}/load [post]
func (ctrl *SavedContentController) LoadQuestionSet(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}

	snap, err := ctrl.savedService.LoadQuestionSet(c.Request.Context(), userID, c.Param("key"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
