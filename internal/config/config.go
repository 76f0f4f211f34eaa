package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Business BusinessConfig
	Policy   attendance.Policy
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. An empty secret leaves the API unauthenticated.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// BusinessConfig holds the calendar and reporting settings shared by every report.
type BusinessConfig struct {
	Timezone        string
	Location        *time.Location
	RecordPageLimit int
	TrendDays       int
	DigestInterval  time.Duration
	PolicyFile      string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		slog.Warn("no .env file found, using environment only")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Business configuration
	pageLimit, err := strconv.Atoi(getEnv("RECORD_PAGE_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECORD_PAGE_LIMIT: %w", err)
	}
	trendDays, err := strconv.Atoi(getEnv("TREND_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid TREND_DAYS: %w", err)
	}
	digestInterval, err := time.ParseDuration(getEnv("DIGEST_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIGEST_INTERVAL: %w", err)
	}

	config.Business = BusinessConfig{
		Timezone:        getEnv("BUSINESS_TIMEZONE", "Asia/Jakarta"),
		RecordPageLimit: pageLimit,
		TrendDays:       trendDays,
		DigestInterval:  digestInterval,
		PolicyFile:      getEnv("WORKDAY_POLICY_FILE", ""),
	}

	// Workday policy
	config.Policy, err = LoadPolicy(config.Business.PolicyFile)
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration and resolves the business timezone.
func (c *Config) Validate() error {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE %q is not a known timezone: %w", c.Business.Timezone, err)
	}
	c.Business.Location = loc

	if c.App.Port <= 0 {
		return fmt.Errorf("APP_PORT must be positive")
	}
	if c.Business.RecordPageLimit <= 0 {
		return fmt.Errorf("RECORD_PAGE_LIMIT must be positive")
	}
	if c.Business.TrendDays <= 0 {
		return fmt.Errorf("TREND_DAYS must be positive")
	}
	if c.Business.DigestInterval <= 0 {
		return fmt.Errorf("DIGEST_INTERVAL must be positive")
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
