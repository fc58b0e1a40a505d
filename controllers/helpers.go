package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/middlewares"
	"github.com/mgamergo/MacroMate/store"
)

// callerScope returns the data-layer scope for the authenticated
// caller, or responds 401 and returns nil. The data layer is never
// touched for unauthenticated requests.
func callerScope(c *gin.Context, db *gorm.DB) *store.Scope {
	subject := middlewares.SubjectID(c)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return nil
	}
	return store.ForUser(db, subject)
}

// respondDataError maps a data-layer failure to a status: not-found
// becomes 404, everything else is logged and collapsed to a generic
// 500. The underlying error never reaches the client.
func respondDataError(c *gin.Context, where string, err error) {
	if store.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	slog.Error("unexpected data-layer error", "handler", where, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
