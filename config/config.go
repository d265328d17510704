package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// External provider
	TMDBAPIKey  string
	TMDBBaseURL string

	// Database
	MongoURI string
	DBName   string

	// Security
	JWTSecret string

	// Server
	Port string
	Env  string
}

// Load reads the configuration from the environment. A .env file is
// loaded first when present. Missing credentials are a startup error,
// not something discovered on the first request.
func Load() (*Config, error) {
	// Best effort: production deployments set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		TMDBAPIKey:  os.Getenv("TMDB_API_KEY"),
		TMDBBaseURL: getEnvOrDefault("TMDB_API_URL", "https://api.themoviedb.org/3"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      getEnvOrDefault("DB_NAME", "moviebox"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("GO_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.TMDBAPIKey == "" {
		return nil, errors.New("TMDB_API_KEY is required")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
