package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
)

type MacrosController struct {
	DB *gorm.DB
}

func NewMacrosController(db *gorm.DB) *MacrosController {
	return &MacrosController{DB: db}
}

// GetTodaysMacros lists the caller's meals for the current calendar
// day. An empty day is 200 with [].
func (mc *MacrosController) GetTodaysMacros(c *gin.Context) {
	scope := callerScope(c, mc.DB)
	if scope == nil {
		return
	}

	macros := make([]models.Macros, 0)
	if err := scope.Today(&macros); err != nil {
		respondDataError(c, "GetTodaysMacros", err)
		return
	}
	c.JSON(http.StatusOK, macros)
}

func (mc *MacrosController) GetAllMacros(c *gin.Context) {
	scope := callerScope(c, mc.DB)
	if scope == nil {
		return
	}

	macros := make([]models.Macros, 0)
	if err := scope.All(&macros); err != nil {
		respondDataError(c, "GetAllMacros", err)
		return
	}
	c.JSON(http.StatusOK, macros)
}

func (mc *MacrosController) PostMeal(c *gin.Context) {
	var body struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Protien  float64 `json:"protien"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Type     string  `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, mc.DB)
	if scope == nil {
		return
	}

	meal := models.Macros{
		UserID:   scope.UserID(),
		Date:     time.Now(),
		Name:     body.Name,
		Calories: body.Calories,
		Protien:  body.Protien,
		Carbs:    body.Carbs,
		Fat:      body.Fat,
		Type:     body.Type,
	}
	if err := scope.Create(&meal); err != nil {
		respondDataError(c, "PostMeal", err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// EditMeal updates the macro quantities of one meal. The id must
// belong to the caller; anyone else's row is a 404.
func (mc *MacrosController) EditMeal(c *gin.Context) {
	var body struct {
		Calories float64 `json:"calories"`
		Protien  float64 `json:"protien"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := callerScope(c, mc.DB)
	if scope == nil {
		return
	}

	var meal models.Macros
	err := scope.Update(&meal, c.Param("id"), map[string]interface{}{
		"calories": body.Calories,
		"protien":  body.Protien,
		"carbs":    body.Carbs,
		"fat":      body.Fat,
	})
	if err != nil {
		respondDataError(c, "EditMeal", err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MacrosController) DeleteMeal(c *gin.Context) {
	scope := callerScope(c, mc.DB)
	if scope == nil {
		return
	}

	if err := scope.Delete(&models.Macros{}, c.Param("id")); err != nil {
		respondDataError(c, "DeleteMeal", err)
		return
	}
	c.Status(http.StatusNoContent)
}
