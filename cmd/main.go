package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mgamergo/MacroMate/config"
	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/routes"
)

func main() {
	setupLogging()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	provider := identity.NewClerkProvider(cfg.JWTSecret, cfg.ClerkAPIURL, cfg.ClerkSecretKey)

	verifier, err := identity.NewSvixVerifier(cfg.ClerkWebhookSecret)
	if err != nil {
		slog.Error("failed to initialize webhook verifier", "error", err)
		os.Exit(1)
	}

	r := routes.SetupRouter(db, cfg, provider, verifier)

	slog.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelFromEnv(),
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
