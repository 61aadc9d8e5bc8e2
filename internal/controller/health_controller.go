package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studyaid/internal/service"
)

type HealthController struct {
	health service.HealthService
}

func NewHealthController(health service.HealthService) *HealthController {
	return &HealthController{health: health}
}

// RegisterRoutes mounts /healthz on the engine root rather than under /api.
func (ctrl *HealthController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/healthz", ctrl.Health)
}

// Health godoc
// @Summary Service health
// @Description Pings the database and redis.
// @Tags ops
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	resp, ok := ctrl.health.Check(c.Request.Context())
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
