package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	DSN      string
	BaseURL  string
}

// Load reads .env (if present) and builds the runtime configuration.
// Defaults give a working local setup backed by a sqlite file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DSN:      getEnv("DATABASE_DSN", "nigerian_restaurant.db"),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
