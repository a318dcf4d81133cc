package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// requiredBySource lists the settings each catalog source cannot do without
var requiredBySource = map[string][]string{
	CatalogBuiltin:  {},
	CatalogFile:     {"CATALOG_FILE"},
	CatalogDatabase: {"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"},
	CatalogS3:       {"S3_BUCKET_NAME", "S3_CATALOG_KEY"},
}

// ValidateConfig checks the configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		errs = append(errs, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: "at least one origin is required"})
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: fmt.Sprintf("origin %q must start with http:// or https://", origin)})
		}
	}

	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must be a non-negative integer"})
	}

	required, ok := requiredBySource[cfg.CatalogSource]
	if !ok {
		errs = append(errs, ValidationError{Field: "CATALOG_SOURCE", Message: fmt.Sprintf("unknown catalog source %q", cfg.CatalogSource)})
	}
	for _, field := range required {
		if cfg.value(field) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("required when CATALOG_SOURCE is %s", cfg.CatalogSource),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *Config) value(field string) string {
	switch field {
	case "CATALOG_FILE":
		return c.CatalogFile
	case "DB_HOST":
		return c.DBHost
	case "DB_PORT":
		return c.DBPort
	case "DB_USER":
		return c.DBUser
	case "DB_PASSWORD":
		return c.DBPassword
	case "DB_NAME":
		return c.DBName
	case "S3_BUCKET_NAME":
		return c.S3BucketName
	case "S3_CATALOG_KEY":
		return c.S3CatalogKey
	}
	return ""
}
