package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
)

// Config holds every process-wide setting, read once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Port        string
	FrontendURL string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret          string
	ClerkAPIURL        string
	ClerkSecretKey     string
	ClerkWebhookSecret string
}

// Load reads .env (if present) and the environment. Missing optional
// values fall back to defaults; required secrets are validated by the
// components that consume them.
func Load() *Config {
	// .env is a convenience for local runs; in deployment the
	// environment is already populated.
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "3000"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		ClerkAPIURL:        getenv("CLERK_API_URL", "https://api.clerk.com/v1"),
		ClerkSecretKey:     os.Getenv("CLERK_SECRET_KEY"),
		ClerkWebhookSecret: os.Getenv("CLERK_WEBHOOK_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the postgres connection and migrates the schema.
// TranslateError makes gorm surface driver-specific failures as its
// own sentinel errors (ErrRecordNotFound, ErrDuplicatedKey), which the
// handlers rely on for status mapping.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every entity. Split out so tests can
// run it against their own database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Macros{},
		&models.Steps{},
		&models.Weight{},
		&models.UserStats{},
		&models.Targets{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
