package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/middlewares"
	"github.com/mgamergo/MacroMate/services"
)

type UserController struct {
	Provider   identity.Provider
	Onboarding *services.OnboardingService
}

func NewUserController(provider identity.Provider, onboarding *services.OnboardingService) *UserController {
	return &UserController{Provider: provider, Onboarding: onboarding}
}

// GetCurrentUser proxies the caller's profile from the identity
// provider.
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	subject := middlewares.SubjectID(c)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	profile, err := uc.Provider.FetchProfile(c.Request.Context(), subject)
	if err != nil {
		slog.Error("failed to fetch caller profile", "handler", "GetCurrentUser", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// OnboardUser creates the caller's User, UserStats and Targets rows in
// one transaction.
func (uc *UserController) OnboardUser(c *gin.Context) {
	var req services.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := middlewares.SubjectID(c)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	result, err := uc.Onboarding.Onboard(c.Request.Context(), subject, req)
	if err != nil {
		slog.Error("onboarding failed", "handler", "OnboardUser", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, result)
}
