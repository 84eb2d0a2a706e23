package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visitnepal/internal/flow"
)

type HealthController struct {
	runner *flow.Runner
}

func NewHealthController(runner *flow.Runner) *HealthController {
	return &HealthController{runner: runner}
}

// Health reports liveness only; it never calls the model.
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": hc.runner.Provider()})
}
