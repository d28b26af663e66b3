package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	GoogleProject string
	Environment   string
	JWTSecret     string
	JWTExpiry     int64
	MatchPolicy   string
	StoreBackend  string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GoogleProject: getEnv("GOOGLE_PROJECT_ID", ""),
		Environment:   getEnv("ENVIRONMENT", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-key"),
		JWTExpiry:     getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		MatchPolicy:   getEnv("MATCH_POLICY", "mutual"),        // "mutual" or "always"
		StoreBackend:  getEnv("STORE_BACKEND", "firestore"),    // "firestore" or "memory"
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
