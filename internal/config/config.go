package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string

	// Record store (Supabase project)
	SupabaseURL     string
	SupabaseAnonKey string

	RedisURL  string
	JWTSecret string

	GoogleRedirectURL string
	FrontendURL       string

	SessionTTL   time.Duration
	CookieSecure bool
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		Port:            getEnv("PORT", "8080"),
		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:       getEnv("JWT_SECRET", ""),

		GoogleRedirectURL: getEnv("GOOGLE_REDIRECT_URL", ""),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),

		SessionTTL:   time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24*30)) * time.Hour,
		CookieSecure: getEnvAsBool("COOKIE_SECURE", true),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
