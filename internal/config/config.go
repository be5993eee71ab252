package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Store   StoreConfig   `mapstructure:"store"`
	Events  EventsConfig  `mapstructure:"events"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g. 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// StoreConfig represents turbine curve store configuration
type StoreConfig struct {
	Backend   string `mapstructure:"backend"`    // memory (default), redis
	RedisURL  string `mapstructure:"redis_url"`  // Redis connection URL
	RedisDB   int    `mapstructure:"redis_db"`   // Redis database number
	KeyPrefix string `mapstructure:"key_prefix"` // Key prefix for stored curves
}

// EventsConfig represents curve-processed event publishing configuration
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"` // Enable event publishing
	Backend string `mapstructure:"backend"` // memory (default), nats, redis, kafka
	URL     string `mapstructure:"url"`     // Broker URL (nats://..., redis://...)
	Subject string `mapstructure:"subject"` // Subject/stream/topic for events

	// Kafka-specific options
	KafkaBrokers []string `mapstructure:"kafka_brokers"` // Kafka broker addresses
}

// LimitsConfig bounds request payloads and batch concurrency
type LimitsConfig struct {
	MaxCurvePoints int `mapstructure:"max_curve_points"` // Max samples per curve (default 10000)
	MaxBatchCurves int `mapstructure:"max_batch_curves"` // Max curves per batch request (default 100)
	BatchWorkers   int `mapstructure:"batch_workers"`    // Concurrent workers per batch (default 8)
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store config: %w", err)
	}

	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("events config: %w", err)
	}

	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("limits config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates store configuration
func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case "", "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("store backend must be 'memory' or 'redis', got %q", c.Backend)
	}

	return nil
}

// Validate validates events configuration
func (c *EventsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	switch c.Backend {
	case "", "memory":
	case "nats", "redis":
		if c.URL == "" {
			return fmt.Errorf("url is required for the %s backend", c.Backend)
		}
	case "kafka":
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("kafka_brokers is required for the kafka backend")
		}
	default:
		return fmt.Errorf("events backend must be one of: memory, nats, redis, kafka, got %q", c.Backend)
	}

	return nil
}

// Validate validates limits configuration
func (c *LimitsConfig) Validate() error {
	if c.MaxCurvePoints < 0 {
		return fmt.Errorf("max_curve_points cannot be negative")
	}

	if c.MaxBatchCurves < 0 {
		return fmt.Errorf("max_batch_curves cannot be negative")
	}

	if c.BatchWorkers < 0 {
		return fmt.Errorf("batch_workers cannot be negative")
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
