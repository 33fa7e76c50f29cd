package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds the environment-provided settings, read once at startup.
type AppConfig struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
}

// Load reads configuration from a .env file or the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &AppConfig{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
