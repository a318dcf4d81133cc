package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CI", "ENV", "SERVER_PORT", "SERVER_HOST", "GIN_MODE", "CORS_ALLOWED_ORIGINS",
	"CATALOG_SOURCE", "CATALOG_FILE",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"REDIS_HOST", "REDIS_PORT", "REDIS_URL", "REDIS_PASSWORD", "RATE_LIMIT_PER_MINUTE",
	"AWS_REGION", "S3_BUCKET_NAME", "S3_CATALOG_KEY",
}

// clearConfigEnv blanks every variable LoadConfig reads and points SECRETS_DIR at an empty directory
func clearConfigEnv(t *testing.T) string {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
	}
	t.Setenv("ENV", "test")
	secretsDir := t.TempDir()
	t.Setenv("SECRETS_DIR", secretsDir)
	return secretsDir
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, CatalogBuiltin, cfg.CatalogSource)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Equal(t, "catalog/dishes.json", cfg.S3CatalogKey)
}

func TestLoadConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://sofra.example.com, http://localhost:5173 ,")
	t.Setenv("CATALOG_SOURCE", "Database")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "sofra")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"https://sofra.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, CatalogDatabase, cfg.CatalogSource)
	assert.Equal(t, "host=db port=5432 user=sofra password=postgres dbname=sofra sslmode=disable", cfg.DSN())
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	secretsDir := clearConfigEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("from-secret\n"), 0644))
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.DBPassword)
}

func TestLoadConfigCIUsesEnvironment(t *testing.T) {
	secretsDir := clearConfigEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("from-secret"), 0644))
	t.Setenv("CI", "true")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DBPassword)
	assert.Equal(t, "test", cfg.GinModeFor(GetEnvironment()))
}

func TestLoadConfigInvalid(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "http")
	t.Setenv("CATALOG_SOURCE", "s3")
	t.Setenv("S3_CATALOG_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"SERVER_PORT", "S3_BUCKET_NAME"}, fields)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name: "builtin catalog needs nothing else",
			cfg:  Config{ServerPort: "8000", CORSAllowedOrigins: defaultCORSOrigins, CatalogSource: CatalogBuiltin},
		},
		{
			name:    "file catalog needs a path",
			cfg:     Config{ServerPort: "8000", CORSAllowedOrigins: defaultCORSOrigins, CatalogSource: CatalogFile},
			wantErr: []string{"CATALOG_FILE"},
		},
		{
			name:    "database catalog needs credentials",
			cfg:     Config{ServerPort: "8000", CORSAllowedOrigins: defaultCORSOrigins, CatalogSource: CatalogDatabase, DBHost: "db", DBPort: "5432", DBName: "sofra"},
			wantErr: []string{"DB_USER", "DB_PASSWORD"},
		},
		{
			name:    "unknown source and bad rate limit",
			cfg:     Config{ServerPort: "8000", CORSAllowedOrigins: defaultCORSOrigins, CatalogSource: "ftp", RateLimitPerMinute: -1},
			wantErr: []string{"CATALOG_SOURCE", "RATE_LIMIT_PER_MINUTE"},
		},
		{
			name:    "origin without scheme",
			cfg:     Config{ServerPort: "8000", CORSAllowedOrigins: []string{"localhost:3000"}, CatalogSource: CatalogBuiltin},
			wantErr: []string{"CORS_ALLOWED_ORIGINS"},
		},
		{
			name:    "no origins",
			cfg:     Config{ServerPort: "0", CatalogSource: CatalogBuiltin},
			wantErr: []string{"SERVER_PORT", "CORS_ALLOWED_ORIGINS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantErr, fields)
		})
	}
}

func TestGinModeFor(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "release", cfg.GinModeFor(Production))
	assert.Equal(t, "debug", cfg.GinModeFor(Development))

	cfg.GinMode = "debug"
	assert.Equal(t, "debug", cfg.GinModeFor(Production))
}
