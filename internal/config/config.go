// Package config provides typed application configuration loaded from
// config files, environment variables, and defaults via viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/siteleads/internal/logger"
)

// Default configuration values.
const (
	// DefaultFetchTimeout bounds a single page fetch.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultConcurrency is the batch analysis parallelism.
	DefaultConcurrency = 4
	// DefaultUserAgent is sent with page fetches. Some small-business
	// sites refuse requests without a browser-like agent.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	// DefaultLeadsDir is where analysis runs are saved.
	DefaultLeadsDir = "leads"
	// DefaultServerAddress is the serve command listen address.
	DefaultServerAddress = ":8080"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	// Name is the name of the application
	Name string `yaml:"name" mapstructure:"name"`
	// Version is the version of the application
	Version string `yaml:"version" mapstructure:"version"`
	// Environment is the application environment (development, staging, production)
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Debug indicates whether debug mode is enabled
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// FetcherConfig holds page fetching settings.
type FetcherConfig struct {
	// Timeout bounds a single page fetch
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// UserAgent is the request User-Agent header
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// AnalyzerConfig holds batch analysis settings.
type AnalyzerConfig struct {
	// Concurrency is the number of parallel analyses in batch mode
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
	// LeadsDir is the directory where analysis runs are saved
	LeadsDir string `yaml:"leads_dir" mapstructure:"leads_dir"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	// Address is the listen address
	Address string `yaml:"address" mapstructure:"address"`
	// ReadTimeout bounds request reads
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	// WriteTimeout bounds response writes
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// PostgresConfig holds optional lead persistence settings.
type PostgresConfig struct {
	// Enabled turns on the Postgres sink
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Host is the database host
	Host string `yaml:"host" mapstructure:"host"`
	// Port is the database port
	Port string `yaml:"port" mapstructure:"port"`
	// User is the database user
	User string `yaml:"user" mapstructure:"user"`
	// Password is the database password
	Password string `yaml:"password" mapstructure:"password"`
	// DBName is the database name
	DBName string `yaml:"dbname" mapstructure:"dbname"`
	// SSLMode is the connection SSL mode
	SSLMode string `yaml:"sslmode" mapstructure:"sslmode"`
}

// Config is the root application configuration.
type Config struct {
	App      AppConfig      `yaml:"app" mapstructure:"app"`
	Logger   logger.Config  `yaml:"logger" mapstructure:"logger"`
	Fetcher  FetcherConfig  `yaml:"fetcher" mapstructure:"fetcher"`
	Analyzer AnalyzerConfig `yaml:"analyzer" mapstructure:"analyzer"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

// Load unmarshals the current viper state into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.New("application name must be specified")
	}

	switch c.App.Environment {
	case "development", "staging", "production":
		// Valid environment
	default:
		return fmt.Errorf("invalid environment: %s", c.App.Environment)
	}

	if c.Fetcher.Timeout <= 0 {
		return errors.New("fetcher timeout must be positive")
	}

	if c.Analyzer.Concurrency < 1 {
		return errors.New("analyzer concurrency must be at least 1")
	}

	if c.Postgres.Enabled && c.Postgres.Host == "" {
		return errors.New("postgres host must be specified when the sink is enabled")
	}

	return nil
}
