package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources understood by CATALOG_SOURCE
const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogDatabase = "database"
	CatalogS3       = "s3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort         string
	ServerHost         string
	GinMode            string
	CORSAllowedOrigins []string

	// Catalog configuration
	CatalogSource string
	CatalogFile   string

	// Database configuration, used when the catalog comes from the database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration, used for rate limiting
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	RedisURL           string
	RateLimitPerMinute int

	// S3 configuration, used when the catalog comes from a bucket
	AWSRegion    string
	S3BucketName string
	S3CatalogKey string
}

var defaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// LoadConfig creates a new Config from the environment, a local .env file and secrets
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	env := GetEnvironment()
	cfg := &Config{}
	loadCommonConfig(cfg)

	// Sensitive values come from different places per environment
	switch env {
	case CI:
		cfg.DBPassword = os.Getenv("DB_PASSWORD")
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	case Development, Test:
		cfg.DBPassword = secretOrEnv("db_password", "DB_PASSWORD")
		cfg.RedisPassword = secretOrEnv("redis_password", "REDIS_PASSWORD")
	case Production:
		cfg.DBPassword = readSecret("db_password")
		cfg.RedisPassword = readSecret("redis_password")
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Printf("Loaded %s configuration (catalog source: %s)", env, cfg.CatalogSource)
	return cfg, nil
}

func loadCommonConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8000")
	cfg.ServerHost = getEnv("SERVER_HOST", "")
	cfg.GinMode = getEnv("GIN_MODE", "")
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = append([]string(nil), defaultCORSOrigins...)
	}

	cfg.CatalogSource = strings.ToLower(getEnv("CATALOG_SOURCE", CatalogBuiltin))
	cfg.CatalogFile = getEnv("CATALOG_FILE", "")

	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "")
	cfg.DBName = getEnv("DB_NAME", "sofra")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")

	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.RedisDB = 0 // This is a constant, not a secret
	cfg.RateLimitPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", 60)

	cfg.AWSRegion = getEnv("AWS_REGION", "")
	cfg.S3BucketName = getEnv("S3_BUCKET_NAME", "")
	cfg.S3CatalogKey = getEnv("S3_CATALOG_KEY", "catalog/dishes.json")
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RateLimitEnabled reports whether a Redis backend is configured for rate limiting
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitPerMinute > 0 && (c.RedisURL != "" || c.RedisHost != "")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Keep the raw value visible to ValidateConfig
		return -1
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func secretOrEnv(secret, envVar string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(envVar)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
