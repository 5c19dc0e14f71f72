package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data sources the dataset can be loaded from
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	Server      ServerConfig  `mapstructure:"server"`
	Data        DataConfig    `mapstructure:"data"`
	Tracing     TracingConfig `mapstructure:"tracing"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	HTTPPort       int      `mapstructure:"http_port"`
	GRPCPort       int      `mapstructure:"grpc_port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig selects where the static dataset is read from at start-up
type DataConfig struct {
	Source      string `mapstructure:"source"` // builtin, file or postgres
	File        string `mapstructure:"file"`
	DatabaseURL string `mapstructure:"database_url"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from defaults, an optional config.yaml and the environment
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	// Read from config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables (server.http_port -> SERVER_HTTP_PORT)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	overrideFromEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8000)
	v.SetDefault("server.grpc_port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Data defaults
	v.SetDefault("data.source", SourceBuiltin)
	v.SetDefault("data.file", "data/portfolio_data.json")
	v.SetDefault("data.database_url", "")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "portfolio-analytics")
}

// overrideFromEnv maps the short variable names used by deployments onto config keys
func overrideFromEnv(v *viper.Viper) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.http_port", p)
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		list := make([]string, 0)
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		v.Set("server.allowed_origins", list)
	}

	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		v.Set("data.database_url", connStr)
	}
}

func validate(config *Config) error {
	if config.Server.HTTPPort <= 0 {
		return errors.New("server.http_port must be positive")
	}
	if config.Server.GRPCPort <= 0 {
		return errors.New("server.grpc_port must be positive")
	}

	switch config.Data.Source {
	case SourceBuiltin:
	case SourceFile:
		if config.Data.File == "" {
			return errors.New("data.file is required when data.source is file")
		}
	case SourcePostgres:
		if config.Data.DatabaseURL == "" {
			return errors.New("data.database_url is required when data.source is postgres")
		}
	default:
		return fmt.Errorf("invalid data.source %q: must be builtin, file or postgres", config.Data.Source)
	}

	if len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = []string{"*"}
	}

	return nil
}
