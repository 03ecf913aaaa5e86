package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	SecretKey      string
	Port           string
	BcryptCost     int
	AccessTokenTTL time.Duration
}

func Load() *Config {
	// Missing .env is fine, variables may come from the environment.
	godotenv.Load()

	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "sqlite://vocabulary.db"),
		SecretKey:      getEnv("SECRET_KEY", "change-me-in-production"),
		Port:           getEnv("PORT", "8000"),
		BcryptCost:     getEnvInt("BCRYPT_COST", 12),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 30)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
