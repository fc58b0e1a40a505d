package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

// WebhookController mirrors user lifecycle events from the identity
// provider into the local user table. The webhook path is the only
// unauthenticated write surface, so every request is verified against
// the shared signing secret before anything is parsed.
type WebhookController struct {
	DB       *gorm.DB
	Verifier identity.WebhookVerifier
}

func NewWebhookController(db *gorm.DB, verifier identity.WebhookVerifier) *WebhookController {
	return &WebhookController{DB: db, Verifier: verifier}
}

func (wc *WebhookController) HandleEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}

	event, err := wc.Verifier.Verify(payload, c.Request.Header)
	if err != nil {
		if errors.Is(err, identity.ErrMissingHeaders) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature headers"})
			return
		}
		slog.Warn("webhook verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "verification failed"})
		return
	}

	switch event.Type {
	case "user.created":
		wc.createUser(c, event.Data)
	case "user.updated":
		wc.updateUser(c, event.Data)
	case "user.deleted":
		wc.deleteUser(c, event.Data)
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event received, no action taken"})
	}
}

func (wc *WebhookController) createUser(c *gin.Context, data identity.EventUser) {
	user := models.User{
		ID:                 data.ID,
		Name:               data.FullName(),
		Email:              data.PrimaryEmail(),
		OnboardingComplete: false,
	}
	if err := wc.DB.Create(&user).Error; err != nil {
		// Delivery replays surface as duplicate keys; acknowledging
		// them stops the provider from retrying forever.
		if store.IsDuplicate(err) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User already exists or duplicate event"})
			return
		}
		slog.Error("failed to onboard webhook user", "userId", data.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to onboard user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User onboarded"})
}

func (wc *WebhookController) updateUser(c *gin.Context, data identity.EventUser) {
	res := wc.DB.Model(&models.User{}).
		Where("id = ?", data.ID).
		Updates(map[string]interface{}{
			"name":  data.FullName(),
			"email": data.PrimaryEmail(),
		})
	if res.Error != nil {
		slog.Error("failed to update webhook user", "userId", data.ID, "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User not known, event ignored"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated"})
}

func (wc *WebhookController) deleteUser(c *gin.Context, data identity.EventUser) {
	if err := wc.DB.Where("id = ?", data.ID).Delete(&models.User{}).Error; err != nil {
		slog.Error("failed to delete webhook user", "userId", data.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
