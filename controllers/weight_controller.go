package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
)

type WeightController struct {
	DB *gorm.DB
}

func NewWeightController(db *gorm.DB) *WeightController {
	return &WeightController{DB: db}
}

func (wc *WeightController) GetWeights(c *gin.Context) {
	scope := callerScope(c, wc.DB)
	if scope == nil {
		return
	}

	weights := make([]models.Weight, 0)
	if err := scope.All(&weights); err != nil {
		respondDataError(c, "GetWeights", err)
		return
	}
	c.JSON(http.StatusOK, weights)
}

func (wc *WeightController) PostWeight(c *gin.Context) {
	var body struct {
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, wc.DB)
	if scope == nil {
		return
	}

	entry := models.Weight{
		UserID: scope.UserID(),
		Date:   time.Now(),
		Weight: body.Weight,
	}
	if err := scope.Create(&entry); err != nil {
		respondDataError(c, "PostWeight", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (wc *WeightController) EditWeight(c *gin.Context) {
	var body struct {
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, wc.DB)
	if scope == nil {
		return
	}

	var entry models.Weight
	err := scope.Update(&entry, c.Param("id"), map[string]interface{}{
		"weight": body.Weight,
	})
	if err != nil {
		respondDataError(c, "EditWeight", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (wc *WeightController) DeleteWeight(c *gin.Context) {
	scope := callerScope(c, wc.DB)
	if scope == nil {
		return
	}

	if err := scope.Delete(&models.Weight{}, c.Param("id")); err != nil {
		respondDataError(c, "DeleteWeight", err)
		return
	}
	c.Status(http.StatusNoContent)
}
