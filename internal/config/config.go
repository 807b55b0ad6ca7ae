package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// Completion provider
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string

	// Client-side proxy endpoint
	ChatAPIURL string

	// Optional transcript archive backends
	RedisURL   string
	SQLitePath string
}

// Load reads configuration from environment variables.
// In development, it loads from .env file if present.
// In production, it panics on missing required variables.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:         getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		ChatAPIURL:    getEnv("CHAT_API_URL", "http://localhost:3000/api/chat"),
		RedisURL:      os.Getenv("REDIS_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
	}

	// In production a missing key is fatal. In development the server still
	// starts; provider calls fail and surface as 500s.
	if cfg.Env == "production" && cfg.OpenAIKey == "" {
		panic("OPENAI_API_KEY is required in production")
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
