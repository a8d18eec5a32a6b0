package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		MaxBodyBytes int64  `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES"`
		// Login attempts per client IP
		LoginRatePerMinute int `yaml:"login_rate_per_minute" env:"SERVER_LOGIN_RATE_PER_MINUTE"`
		LoginBurst         int `yaml:"login_burst" env:"SERVER_LOGIN_BURST"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		SeedCatalog     bool   `yaml:"seed_catalog" env:"DB_SEED_CATALOG"`
	} `yaml:"database"`

	Session struct {
		Store        string `yaml:"store" env:"SESSION_STORE"`
		Secret       string `yaml:"secret" env:"SESSION_SECRET"`
		TTL          string `yaml:"ttl" env:"SESSION_TTL"`
		Issuer       string `yaml:"issuer" env:"SESSION_ISSUER"`
		CookieName   string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieSecure bool   `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE"`
		Redis        struct {
			Addr     string `yaml:"addr" env:"REDIS_ADDR"`
			Password string `yaml:"password" env:"REDIS_PASSWORD"`
			DB       int    `yaml:"db" env:"REDIS_DB"`
			Prefix   string `yaml:"prefix" env:"REDIS_SESSION_PREFIX"`
		} `yaml:"redis"`
	} `yaml:"session"`

	Storage struct {
		Driver         string `yaml:"driver" env:"STORAGE_DRIVER"`
		Path           string `yaml:"path" env:"STORAGE_PATH"`
		MaxResumeBytes int64  `yaml:"max_resume_bytes" env:"STORAGE_MAX_RESUME_BYTES"`
		DeleteReplaced bool   `yaml:"delete_replaced" env:"STORAGE_DELETE_REPLACED"`
		S3             struct {
			Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
			Region    string `yaml:"region" env:"S3_REGION"`
			Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
			AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
			Prefix    string `yaml:"prefix" env:"S3_PREFIX"`
		} `yaml:"s3"`
	} `yaml:"storage"`

	Extractor struct {
		Command string `yaml:"command" env:"EXTRACTOR_COMMAND"`
		Script  string `yaml:"script" env:"EXTRACTOR_SCRIPT"`
		WorkDir string `yaml:"work_dir" env:"EXTRACTOR_WORK_DIR"`
		Timeout string `yaml:"timeout" env:"EXTRACTOR_TIMEOUT"`
	} `yaml:"extractor"`

	Scoring struct {
		BaseURL        string `yaml:"base_url" env:"SCORING_BASE_URL"`
		ConnectTimeout string `yaml:"connect_timeout" env:"SCORING_CONNECT_TIMEOUT"`
		RequestTimeout string `yaml:"request_timeout" env:"SCORING_REQUEST_TIMEOUT"`
	} `yaml:"scoring"`

	Events struct {
		AMQPURL  string `yaml:"amqp_url" env:"EVENTS_AMQP_URL"`
		Exchange string `yaml:"exchange" env:"EVENTS_EXCHANGE"`
	} `yaml:"events"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development
	_ = godotenv.Load()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.MaxBodyBytes = 8 << 20
	config.Server.LoginRatePerMinute = 10
	config.Server.LoginBurst = 5

	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "smartmatch"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.SeedCatalog = false

	config.Session.Store = "postgres"
	config.Session.TTL = "24h"
	config.Session.Issuer = "smartmatch"
	config.Session.CookieName = "smartmatch_session"
	config.Session.Redis.Addr = "localhost:6379"
	config.Session.Redis.Prefix = "smartmatch:session:"

	config.Storage.Driver = "local"
	config.Storage.Path = "uploads"
	config.Storage.MaxResumeBytes = 5 * 1024 * 1024

	config.Extractor.Command = "python3"
	config.Extractor.Script = "extractor_cli.py"
	config.Extractor.Timeout = "30s"

	config.Scoring.BaseURL = "http://localhost:5000"
	config.Scoring.ConnectTimeout = "5s"
	config.Scoring.RequestTimeout = "10s"

	config.Events.Exchange = "smartmatch.events"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	switch strings.ToLower(config.Session.Store) {
	case "memory", "postgres":
	case "redis":
		if config.Session.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for the redis session store")
		}
	default:
		return fmt.Errorf("unknown session store %q", config.Session.Store)
	}

	switch strings.ToLower(config.Storage.Driver) {
	case "local":
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for local storage")
		}
	case "s3":
		if config.Storage.S3.Bucket == "" {
			return fmt.Errorf("s3 bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.MaxResumeBytes <= 0 {
		return fmt.Errorf("storage max_resume_bytes must be positive")
	}

	if config.Scoring.BaseURL == "" {
		return fmt.Errorf("scoring base url is required")
	}

	durations := map[string]string{
		"session ttl":             config.Session.TTL,
		"extractor timeout":       config.Extractor.Timeout,
		"scoring connect timeout": config.Scoring.ConnectTimeout,
		"scoring request timeout": config.Scoring.RequestTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// ExtractorArgs returns the arguments placed before the resume path
func (c *Config) ExtractorArgs() []string {
	if c.Extractor.Script == "" {
		return nil
	}
	return []string{c.Extractor.Script}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
