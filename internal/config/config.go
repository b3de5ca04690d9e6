package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port         string
	Env          string
	LogLevel     string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AuthRateLimit requests are allowed per AuthRateWindow for each client IP
	// on the register and login routes.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/jobportal?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:      getDurationEnv("JWT_EXPIRY", 7*24*time.Hour),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		AuthRateLimit:  getIntEnv("AUTH_RATE_LIMIT", 100),
		AuthRateWindow: getDurationEnv("AUTH_RATE_WINDOW", 15*time.Minute),
	}
}

// Validate reports configuration that the server must not start with.
func (c Config) Validate() error {
	var errs []error
	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production environment"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY must be positive"))
	}
	if c.AuthRateLimit <= 0 || c.AuthRateWindow <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthRatePerSecond converts the per-window limit into a token bucket refill rate.
func (c Config) AuthRatePerSecond() float64 {
	return float64(c.AuthRateLimit) / c.AuthRateWindow.Seconds()
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
