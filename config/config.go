package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/tournament-finder/utils"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort       int
	DatabaseURL      string
	JWTSecretKey     string
	SimulatedLatency time.Duration
	CORSOrigins      []string
	LogLevel         slog.Level

	// EnforceDeadline rejects registrations after RegistrationDeadline.
	EnforceDeadline bool

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() (*Config, error) {
	// A missing .env file is fine outside local development.
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := utils.GetEnvOrDefault("SERVER_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	latencyStr := utils.GetEnvOrDefault("SIMULATED_LATENCY", "800ms")
	latency, err := time.ParseDuration(latencyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATED_LATENCY environment variable: %w", err)
	}
	if latency < 0 {
		return nil, fmt.Errorf("SIMULATED_LATENCY must not be negative, got %s", latency)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(utils.GetEnvOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	enforceDeadline, err := strconv.ParseBool(utils.GetEnvOrDefault("ENFORCE_REGISTRATION_DEADLINE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENFORCE_REGISTRATION_DEADLINE environment variable: %w", err)
	}

	cfg := &Config{
		ServerPort:       port,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecretKey:     jwtKey,
		SimulatedLatency: latency,
		CORSOrigins:      splitList(utils.GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:         level,
		EnforceDeadline:  enforceDeadline,

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
	}

	if n := cfg.r2FieldsSet(); n != 0 && n != 4 {
		return nil, fmt.Errorf("R2 archive configuration is incomplete: set all of R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME or none")
	}

	return cfg, nil
}

// UseR2 reports whether registrations are archived to a bucket.
func (c *Config) UseR2() bool {
	return c.r2FieldsSet() == 4
}

func (c *Config) r2FieldsSet() int {
	n := 0
	for _, v := range []string{c.R2AccountID, c.R2AccessKeyID, c.R2SecretAccessKey, c.R2BucketName} {
		if v != "" {
			n++
		}
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
