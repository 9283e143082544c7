package config

import (
	"fmt"
	"os"
	"strconv"

	"eventgallery-backend/pkg/editwindow"
)

// Config holds the whole application configuration,
// populated from environment variables
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Gallery GalleryConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// AdminConfig seeds the single administrative account.
// Admin CRUD lives elsewhere; this service only authenticates it.
type AdminConfig struct {
	Email    string
	Password string
}

type GalleryConfig struct {
	// GuestModifyGraceDays controls how long after the event date a guest
	// may still delete their own uploads
	GuestModifyGraceDays int
}

type StorageConfig struct {
	// PublicBaseURL prefixes relative storage keys when building image URLs.
	// Absolute storage URLs are passed through untouched.
	PublicBaseURL string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Event Gallery API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@eventgallery.local"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Gallery: GalleryConfig{
			GuestModifyGraceDays: getEnvInt("GUEST_MODIFY_GRACE_DAYS", editwindow.DefaultGraceDays),
		},
		Storage: StorageConfig{
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", "/files"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical settings
func (c *Config) Validate() error {
	if c.Gallery.GuestModifyGraceDays < 0 {
		return fmt.Errorf("GUEST_MODIFY_GRACE_DAYS must not be negative")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.Password == "" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
