package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GetUserStats returns the caller's unique stats row, or 200 with null
// when none has been created yet.
func (sc *StatsController) GetUserStats(c *gin.Context) {
	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	var stats models.UserStats
	if err := scope.One(&stats); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondDataError(c, "GetUserStats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (sc *StatsController) PostUserStats(c *gin.Context) {
	var body struct {
		Height       float64 `json:"height"`
		Weight       float64 `json:"weight"`
		Activity     string  `json:"activity"`
		Maintainance float64 `json:"maintainance"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	stats := models.UserStats{
		UserID:       scope.UserID(),
		Height:       body.Height,
		Weight:       body.Weight,
		Activity:     body.Activity,
		Maintainance: body.Maintainance,
	}
	if err := scope.Create(&stats); err != nil {
		respondDataError(c, "PostUserStats", err)
		return
	}
	c.JSON(http.StatusCreated, stats)
}

func (sc *StatsController) EditUserStats(c *gin.Context) {
	var body struct {
		Height       float64 `json:"height"`
		Weight       float64 `json:"weight"`
		Activity     string  `json:"activity"`
		Maintainance float64 `json:"maintainance"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	var stats models.UserStats
	err := scope.Update(&stats, c.Param("id"), map[string]interface{}{
		"height":       body.Height,
		"weight":       body.Weight,
		"activity":     body.Activity,
		"maintainance": body.Maintainance,
	})
	if err != nil {
		respondDataError(c, "EditUserStats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (sc *StatsController) DeleteUserStats(c *gin.Context) {
	scope := callerScope(c, sc.DB)
	if scope == nil {
		return
	}

	if err := scope.Delete(&models.UserStats{}, c.Param("id")); err != nil {
		respondDataError(c, "DeleteUserStats", err)
		return
	}
	c.Status(http.StatusNoContent)
}
