package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgamergo/MacroMate/middlewares"
	"github.com/mgamergo/MacroMate/services"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// GetTodaysProgress returns today's consumed totals against the
// caller's targets, with chart-ready percentages.
func (pc *ProgressController) GetTodaysProgress(c *gin.Context) {
	subject := middlewares.SubjectID(c)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	progress, err := pc.Progress.Today(subject)
	if err != nil {
		slog.Error("failed to aggregate progress", "handler", "GetTodaysProgress", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, progress)
}
