package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	ServerPort   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	RedisAddr    string
	UserCacheTTL time.Duration
	JWTSecret    string
	TokenTTL     time.Duration
}

func Load() *Config {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	return &Config{
		Environment:  getEnv("APP_ENV", "development"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "luxuria"),
		DBPassword:   getEnv("DB_PASSWORD", "luxuria_dev_password"),
		DBName:       getEnv("DB_NAME", "luxuria"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		UserCacheTTL: getDuration("USER_CACHE_TTL_SECONDS", 60),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:     getDuration("TOKEN_TTL_SECONDS", 24*60*60),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	val, exists := os.LookupEnv(key)
	if exists {
		if seconds, err := strconv.Atoi(val); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
