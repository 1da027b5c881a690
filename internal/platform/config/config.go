// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs at startup.
type Config struct {
	// HTTPAddr is the listen address of the HTTP server.
	HTTPAddr string

	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string

	// UploadDir is the directory uploaded profile pictures are written to
	// and served back from.
	UploadDir string

	// RedisAddr is the address of the optional Redis cache. Empty disables
	// caching.
	RedisAddr string

	// RedisPassword authenticates against Redis when set.
	RedisPassword string

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool
}

// Load reads the configuration from the environment, consulting a local
// .env file first when one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RunMigrations: getenv("RUN_MIGRATIONS", "false") == "true",
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getenv("REDIS_PORT", "6379")
	}

	return cfg
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
