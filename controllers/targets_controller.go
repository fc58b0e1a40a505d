package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

type TargetsController struct {
	DB *gorm.DB
}

func NewTargetsController(db *gorm.DB) *TargetsController {
	return &TargetsController{DB: db}
}

// GetUserTargets returns the caller's unique targets row, or 200 with
// null when none has been created yet.
func (tc *TargetsController) GetUserTargets(c *gin.Context) {
	scope := callerScope(c, tc.DB)
	if scope == nil {
		return
	}

	var targets models.Targets
	if err := scope.One(&targets); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondDataError(c, "GetUserTargets", err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (tc *TargetsController) PostUserTargets(c *gin.Context) {
	var body struct {
		Calories float64 `json:"calories"`
		Protien  float64 `json:"protien"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Steps    int     `json:"steps"`
		Weight   float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, tc.DB)
	if scope == nil {
		return
	}

	targets := models.Targets{
		UserID:   scope.UserID(),
		Calories: body.Calories,
		Protien:  body.Protien,
		Carbs:    body.Carbs,
		Fat:      body.Fat,
		Steps:    body.Steps,
		Weight:   body.Weight,
	}
	if err := scope.Create(&targets); err != nil {
		respondDataError(c, "PostUserTargets", err)
		return
	}
	c.JSON(http.StatusCreated, targets)
}

func (tc *TargetsController) EditUserTargets(c *gin.Context) {
	var body struct {
		Calories float64 `json:"calories"`
		Protien  float64 `json:"protien"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Steps    int     `json:"steps"`
		Weight   float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, tc.DB)
	if scope == nil {
		return
	}

	var targets models.Targets
	err := scope.Update(&targets, c.Param("id"), map[string]interface{}{
		"calories": body.Calories,
		"protien":  body.Protien,
		"carbs":    body.Carbs,
		"fat":      body.Fat,
		"steps":    body.Steps,
		"weight":   body.Weight,
	})
	if err != nil {
		respondDataError(c, "EditUserTargets", err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (tc *TargetsController) DeleteUserTargets(c *gin.Context) {
	scope := callerScope(c, tc.DB)
	if scope == nil {
		return
	}

	if err := scope.Delete(&models.Targets{}, c.Param("id")); err != nil {
		respondDataError(c, "DeleteUserTargets", err)
		return
	}
	c.Status(http.StatusNoContent)
}
