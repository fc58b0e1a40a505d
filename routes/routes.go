package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/config"
	"github.com/mgamergo/MacroMate/controllers"
	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/middlewares"
	"github.com/mgamergo/MacroMate/services"
)

// SetupRouter wires every resource router behind the auth middleware.
// Only the health check, the metrics endpoint and the webhook path are
// reachable without a verified subject.
func SetupRouter(db *gorm.DB, cfg *config.Config, provider identity.Provider, verifier identity.WebhookVerifier) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.Metrics())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Webhook deliveries carry their own signature; they must not go
	// through the bearer-token middleware.
	webhookCtrl := controllers.NewWebhookController(db, verifier)
	r.POST("/api/clerk", webhookCtrl.HandleEvent)

	onboardingSvc := services.NewOnboardingService(db, provider)
	progressSvc := services.NewProgressService(db)

	macrosCtrl := controllers.NewMacrosController(db)
	stepsCtrl := controllers.NewStepsController(db)
	weightCtrl := controllers.NewWeightController(db)
	statsCtrl := controllers.NewStatsController(db)
	targetsCtrl := controllers.NewTargetsController(db)
	userCtrl := controllers.NewUserController(provider, onboardingSvc)
	progressCtrl := controllers.NewProgressController(progressSvc)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(provider))

	macros := api.Group("/macros")
	{
		macros.GET("", macrosCtrl.GetTodaysMacros)
		macros.GET("/all", macrosCtrl.GetAllMacros)
		macros.POST("", macrosCtrl.PostMeal)
		macros.PATCH("/edit/:id", macrosCtrl.EditMeal)
		macros.DELETE("/delete/:id", macrosCtrl.DeleteMeal)
	}

	steps := api.Group("/steps")
	{
		steps.GET("", stepsCtrl.GetStepsData)
		steps.GET("/today", stepsCtrl.TodaysStepsData)
		steps.POST("", stepsCtrl.PostStepsData)
		steps.PATCH("/edit/:id", stepsCtrl.EditStepsData)
		steps.DELETE("/delete/:id", stepsCtrl.DeleteStepsData)
	}

	weight := api.Group("/weight")
	{
		weight.GET("", weightCtrl.GetWeights)
		weight.POST("", weightCtrl.PostWeight)
		weight.PATCH("/edit/:id", weightCtrl.EditWeight)
		weight.DELETE("/delete/:id", weightCtrl.DeleteWeight)
	}

	stats := api.Group("/stats")
	{
		stats.GET("", statsCtrl.GetUserStats)
		stats.POST("", statsCtrl.PostUserStats)
		stats.PATCH("/edit/:id", statsCtrl.EditUserStats)
		stats.DELETE("/delete/:id", statsCtrl.DeleteUserStats)
	}

	targets := api.Group("/targets")
	{
		targets.GET("", targetsCtrl.GetUserTargets)
		targets.POST("", targetsCtrl.PostUserTargets)
		targets.PATCH("/edit/:id", targetsCtrl.EditUserTargets)
		targets.DELETE("/delete/:id", targetsCtrl.DeleteUserTargets)
	}

	user := api.Group("/user")
	{
		user.GET("", userCtrl.GetCurrentUser)
		user.POST("/onboard", userCtrl.OnboardUser)
	}

	api.GET("/progress", progressCtrl.GetTodaysProgress)

	return r
}
