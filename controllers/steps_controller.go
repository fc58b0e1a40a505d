package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

type StepsController struct {
	DB *gorm.DB
}

func NewStepsController(db *gorm.DB) *StepsController {
	return &StepsController{DB: db}
}

func (sc *StepsController) GetStepsData(c *gin.Context) {
	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	steps := make([]models.Steps, 0)
	if err := scope.All(&steps); err != nil {
		respondDataError(c, "GetStepsData", err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (sc *StepsController) TodaysStepsData(c *gin.Context) {
	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	steps := make([]models.Steps, 0)
	if err := scope.Today(&steps); err != nil {
		respondDataError(c, "TodaysStepsData", err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// PostStepsData logs a step-count entry stamped with today's date
// truncated to local midnight, matching how the today window is
// queried.
func (sc *StepsController) PostStepsData(c *gin.Context) {
	var body struct {
		Steps int `json:"steps"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	midnight, _ := store.TodayWindow(time.Now())
	entry := models.Steps{
		UserID: scope.UserID(),
		Date:   midnight,
		Steps:  body.Steps,
	}
	if err := scope.Create(&entry); err != nil {
		respondDataError(c, "PostStepsData", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (sc *StepsController) EditStepsData(c *gin.Context) {
	var body struct {
		Steps int `json:"steps"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	var entry models.Steps
	err := scope.Update(&entry, c.Param("id"), map[string]interface{}{
		"steps": body.Steps,
	})
	if err != nil {
		respondDataError(c, "EditStepsData", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (sc *StepsController) DeleteStepsData(c *gin.Context) {
	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	if err := scope.Delete(&models.Steps{}, c.Param("id")); err != nil {
		respondDataError(c, "DeleteStepsData", err)
		return
	}
	c.Status(http.StatusNoContent)
}
