package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

func TestStepsLifecycle(t *testing.T) {
	r, _ := setupRouter(t)
	token := "valid-user_1"

	w := doJSON(t, r, http.MethodPost, "/api/steps", token, map[string]interface{}{"steps": 4200})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Steps](t, w)
	assert.Equal(t, 4200, created.Steps)

	// Entries are stamped with local midnight so they land inside the
	// today window they are queried with.
	midnight, _ := store.TodayWindow(time.Now())
	assert.True(t, created.Date.Equal(midnight), "date %v, want %v", created.Date, midnight)

	w = doJSON(t, r, http.MethodPatch, "/api/steps/edit/"+created.ID, token,
		map[string]interface{}{"steps": 5000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5000, decodeJSON[models.Steps](t, w).Steps)

	w = doJSON(t, r, http.MethodDelete, "/api/steps/delete/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTodaysStepsExcludesOtherDays(t *testing.T) {
	r, db := setupRouter(t)
	token := "valid-user_1"

	require.NoError(t, db.Create(&models.Steps{
		UserID: "user_1", Date: time.Now().AddDate(0, 0, -2), Steps: 9000,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/steps", token, map[string]interface{}{"steps": 1500})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/steps", token, map[string]interface{}{"steps": 2500})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/steps/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	today := decodeJSON[[]models.Steps](t, w)
	require.Len(t, today, 2)

	// Multiple entries per day are kept separate; the daily total is
	// the consumer's sum.
	total := 0
	for _, e := range today {
		total += e.Steps
	}
	assert.Equal(t, 4000, total)

	w = doJSON(t, r, http.MethodGet, "/api/steps", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Steps](t, w), 3)
}

func TestStepsEmptyListIsOK(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/steps", "valid-user_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestStepsScopedToCaller(t *testing.T) {
	r, db := setupRouter(t)

	require.NoError(t, db.Create(&models.Steps{
		UserID: "user_2", Date: time.Now(), Steps: 7000,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/steps", "valid-user_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[[]models.Steps](t, w))
}
