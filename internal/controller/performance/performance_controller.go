package performance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/controller"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/service"
)

type PerformanceController struct {
	performanceService service.PerformanceService
}

func NewPerformanceController(performanceService service.PerformanceService) *PerformanceController {
	return &PerformanceController{performanceService: performanceService}
}

func (ctrl *PerformanceController) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.POST("/log-performance", ctrl.LogPerformance)
	protected.GET("/get-performance-logs", ctrl.GetPerformanceLogs)
}

// LogPerformance godoc
// @Summary Record a quiz result
// @Description userId must match the authenticated user.
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body dto.LogPerformanceRequest true "Quiz result"
// @Success 201 {object} dto.PerformanceLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "userId is not the caller"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /log-performance [post]
func (ctrl *PerformanceController) LogPerformance(c *gin.Context) {
	callerID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	var req dto.LogPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BindError(c, err)
		return
	}

	resp, err := ctrl.performanceService.Log(c.Request.Context(), callerID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPerformanceLogs godoc
// @Summary List quiz results
// @Description Newest first, paginated.
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param userId query int true "User ID (must be the caller)"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size, 1..100"
// @Success 200 {object} dto.PerformanceLogPage
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "userId is not the caller"
// @Router /get-performance-logs [get]
func (ctrl *PerformanceController) GetPerformanceLogs(c *gin.Context) {
	callerID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	var q dto.PerformanceLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		controller.BindError(c, err)
		return
	}

	page, err := ctrl.performanceService.List(c.Request.Context(), callerID, q)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
