package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "PORT", "CORS_ORIGINS", "DB_CONN_STR",
		"SERVER_HOST", "SERVER_HTTP_PORT", "SERVER_GRPC_PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_ALLOWED_ORIGINS",
		"DATA_SOURCE", "DATA_FILE", "DATA_DATABASE_URL",
		"TRACING_ENABLED", "TRACING_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8000, cfg.Server.HTTPPort)
	assert.Equal(t, 8080, cfg.Server.GRPCPort)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, SourceBuiltin, cfg.Data.Source)
	assert.Equal(t, "data/portfolio_data.json", cfg.Data.File)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SERVER_GRPC_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://dashboard.example.com,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("DATA_FILE", "/srv/portfolio.json")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 9090, cfg.Server.GRPCPort)
	assert.Equal(t, []string{"http://localhost:5173", "https://dashboard.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceFile, cfg.Data.Source)
	assert.Equal(t, "/srv/portfolio.json", cfg.Data.File)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_PostgresSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "postgres")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data.database_url is required")

	t.Setenv("DB_CONN_STR", "postgres://localhost/portfolio?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/portfolio?sslmode=disable", cfg.Data.DatabaseURL)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{HTTPPort: 8000, GRPCPort: 8080, AllowedOrigins: []string{"*"}},
			Data:   DataConfig{Source: SourceBuiltin},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "Valid config", mutate: func(c *Config) {}},
		{name: "Zero HTTP port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }, errMsg: "server.http_port must be positive"},
		{name: "Negative gRPC port", mutate: func(c *Config) { c.Server.GRPCPort = -1 }, errMsg: "server.grpc_port must be positive"},
		{name: "Unknown source", mutate: func(c *Config) { c.Data.Source = "s3" }, errMsg: "invalid data.source"},
		{name: "File source without path", mutate: func(c *Config) { c.Data.Source = SourceFile }, errMsg: "data.file is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_EmptyOriginsDefaultToWildcard(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{HTTPPort: 1, GRPCPort: 2},
		Data:   DataConfig{Source: SourceBuiltin},
	}

	require.NoError(t, validate(&cfg))
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}
