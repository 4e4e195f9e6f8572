package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Exchange ExchangeConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AuthConfig struct {
	JwtSecret string
	// AdminCheckURL is where the role-lookup client posts {email} and reads
	// {isAdmin}. Defaults to this process's own check-admin endpoint.
	AdminCheckURL   string
	SessionTTLHours int
}

type ExchangeConfig struct {
	// DefaultCurrency is the display currency a fresh session starts with.
	DefaultCurrency string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JwtSecret:       getEnv("JWT_SECRET", "dev-secret"),
			AdminCheckURL:   getEnv("ADMIN_CHECK_URL", "http://localhost:8000/api/auth/check-admin"),
			SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 1),
		},
		Exchange: ExchangeConfig{
			DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
