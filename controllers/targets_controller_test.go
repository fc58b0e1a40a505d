package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgamergo/MacroMate/models"
)

func TestTargetsAbsentReadsAsNull(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/targets", "valid-user_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestTargetsLifecycle(t *testing.T) {
	r, _ := setupRouter(t)
	token := "valid-user_1"

	w := doJSON(t, r, http.MethodPost, "/api/targets", token, map[string]interface{}{
		"calories": 2200, "protien": 120, "carbs": 275, "fat": 70,
		"steps": 10000, "weight": 75,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Targets](t, w)
	assert.Equal(t, 2200.0, created.Calories)
	assert.Equal(t, 10000, created.Steps)

	w = doJSON(t, r, http.MethodGet, "/api/targets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decodeJSON[models.Targets](t, w).ID)

	w = doJSON(t, r, http.MethodPatch, "/api/targets/edit/"+created.ID, token,
		map[string]interface{}{
			"calories": 2000, "protien": 110, "carbs": 250, "fat": 65,
			"steps": 12000, "weight": 73,
		})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJSON[models.Targets](t, w)
	assert.Equal(t, 2000.0, updated.Calories)
	assert.Equal(t, 12000, updated.Steps)

	w = doJSON(t, r, http.MethodDelete, "/api/targets/delete/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/targets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestTargetsOwnership(t *testing.T) {
	r, db := setupRouter(t)

	other := models.Targets{UserID: "user_2", Calories: 1800}
	require.NoError(t, db.Create(&other).Error)

	w := doJSON(t, r, http.MethodPatch, "/api/targets/edit/"+other.ID, "valid-user_1",
		map[string]interface{}{"calories": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/targets/delete/"+other.ID, "valid-user_1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
