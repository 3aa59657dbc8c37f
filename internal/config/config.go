package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig aggregates runtime configuration. Everything comes from the
// environment with workable defaults for local development.
type AppConfig struct {
	HTTPAddr  string
	JWTSecret string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	RedisAddr string
	RedisDB   int

	// Solver boundary: requests out, results in.
	ComputeRequestStream  string
	ComputeResultStream   string
	ComputeResultGroup    string
	ComputeResultConsumer string

	// Whether cancelCompute may touch jobs already in a terminal state.
	AllowCancelTerminal bool
}

// Load reads .env (if present) and the environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg := AppConfig{
		HTTPAddr:              getEnv("HTTP_ADDR", "0.0.0.0:8080"),
		JWTSecret:             getEnv("JWT_SECRET", "supersecret"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "password"),
		DBName:                getEnv("DB_NAME", "dispatch"),
		DBSSLMode:             getEnv("DB_SSLMODE", "disable"),
		DBTimezone:            getEnv("DB_TIMEZONE", "UTC"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               0,
		ComputeRequestStream:  getEnv("COMPUTE_REQUEST_STREAM", "dispatch:compute_requests"),
		ComputeResultStream:   getEnv("COMPUTE_RESULT_STREAM", "dispatch:compute_results"),
		ComputeResultGroup:    getEnv("COMPUTE_RESULT_GROUP", "dispatch-api"),
		ComputeResultConsumer: getEnv("COMPUTE_RESULT_CONSUMER", "dispatch-api-1"),
		AllowCancelTerminal:   true,
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	if v := os.Getenv("ALLOW_CANCEL_TERMINAL"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid ALLOW_CANCEL_TERMINAL: %w", err)
		}
		cfg.AllowCancelTerminal = allow
	}

	if cfg.ComputeRequestStream == "" || cfg.ComputeResultStream == "" {
		return AppConfig{}, fmt.Errorf("compute stream names must not be empty")
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(v)
}
