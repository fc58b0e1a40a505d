package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgamergo/MacroMate/models"
)

func TestMealLifecycle(t *testing.T) {
	r, _ := setupRouter(t)
	token := "valid-user_1"

	// Log a meal.
	w := doJSON(t, r, http.MethodPost, "/api/macros", token, map[string]interface{}{
		"name": "Eggs", "calories": 200, "protien": 12, "carbs": 2, "fat": 10,
		"type": "BREAKFAST",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Macros](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user_1", created.UserID)
	assert.Equal(t, "Eggs", created.Name)
	assert.Equal(t, 12.0, created.Protien)
	assert.WithinDuration(t, time.Now(), created.Date, time.Minute)

	// It shows up in today's list.
	w = doJSON(t, r, http.MethodGet, "/api/macros", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	today := decodeJSON[[]models.Macros](t, w)
	require.Len(t, today, 1)
	assert.Equal(t, created.ID, today[0].ID)

	// Delete it; the second delete of the same id is a 404.
	w = doJSON(t, r, http.MethodDelete, "/api/macros/delete/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/macros/delete/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Gone from the list.
	w = doJSON(t, r, http.MethodGet, "/api/macros", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[[]models.Macros](t, w))
}

func TestTodaysMacrosWindow(t *testing.T) {
	r, db := setupRouter(t)
	token := "valid-user_1"

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Create(&models.Macros{
		UserID: "user_1", Date: yesterday, Name: "Old meal", Calories: 500,
		Type: models.MealDinner,
	}).Error)
	require.NoError(t, db.Create(&models.Macros{
		UserID: "user_1", Date: time.Now(), Name: "Fresh meal", Calories: 300,
		Type: models.MealLunch,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/macros", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	today := decodeJSON[[]models.Macros](t, w)
	require.Len(t, today, 1)
	assert.Equal(t, "Fresh meal", today[0].Name)

	// /all is not date-filtered.
	w = doJSON(t, r, http.MethodGet, "/api/macros/all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Macros](t, w), 2)
}

func TestMacrosRequireAuth(t *testing.T) {
	r, db := setupRouter(t)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/macros"},
		{http.MethodGet, "/api/macros/all"},
		{http.MethodPost, "/api/macros"},
		{http.MethodPatch, "/api/macros/edit/some-id"},
		{http.MethodDelete, "/api/macros/delete/some-id"},
	} {
		w := doJSON(t, r, req.method, req.path, "", map[string]interface{}{"calories": 1})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
	}

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.Macros{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditMealOwnership(t *testing.T) {
	r, db := setupRouter(t)

	other := models.Macros{
		UserID: "user_2", Date: time.Now(), Name: "Not yours",
		Calories: 800, Type: models.MealSnack,
	}
	require.NoError(t, db.Create(&other).Error)

	// Editing or deleting another user's row reads as not-found and
	// leaves the row alone.
	w := doJSON(t, r, http.MethodPatch, "/api/macros/edit/"+other.ID, "valid-user_1",
		map[string]interface{}{"calories": 1, "protien": 1, "carbs": 1, "fat": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/macros/delete/"+other.ID, "valid-user_1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var reloaded models.Macros
	require.NoError(t, db.First(&reloaded, "id = ?", other.ID).Error)
	assert.Equal(t, 800.0, reloaded.Calories)
}

func TestEditMealUpdatesQuantities(t *testing.T) {
	r, _ := setupRouter(t)
	token := "valid-user_1"

	w := doJSON(t, r, http.MethodPost, "/api/macros", token, map[string]interface{}{
		"name": "Rice", "calories": 400, "protien": 8, "carbs": 80, "fat": 2,
		"type": "LUNCH",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Macros](t, w)

	w = doJSON(t, r, http.MethodPatch, "/api/macros/edit/"+created.ID, token,
		map[string]interface{}{"calories": 350, "protien": 7, "carbs": 70, "fat": 1.5})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJSON[models.Macros](t, w)
	assert.Equal(t, 350.0, updated.Calories)
	assert.Equal(t, 70.0, updated.Carbs)
	assert.Equal(t, "Rice", updated.Name) // name untouched by edit
}

func TestPostMealMalformedBody(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/macros", "valid-user_1", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
