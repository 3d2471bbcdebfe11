package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: env file %s not found, using process environment", envFile)
	}

	cfg := &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "chillGamerDB"),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "5000"),
		Env:  env,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
