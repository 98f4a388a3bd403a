package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const ServiceName = "rails-engine"

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Env  string
}

// RedisConfig holds cache connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// JobsConfig holds background job settings
type JobsConfig struct {
	InvoiceSweepInterval time.Duration
	// zero disables the periodic cache flush
	CacheFlushInterval time.Duration
}

// Config holds all configuration
type Config struct {
	ServiceName string
	DatabaseURL string
	LogLevel    string
	Server      ServerConfig
	Redis       RedisConfig
	Jobs        JobsConfig
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: ServiceName,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 8080),
			Env:  getEnv("APP_ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		},
		Jobs: JobsConfig{
			InvoiceSweepInterval: getEnvAsDuration("INVOICE_SWEEP_INTERVAL", 15*time.Minute),
			CacheFlushInterval:   getEnvAsDuration("CACHE_FLUSH_INTERVAL", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Jobs.InvoiceSweepInterval <= 0 {
		return fmt.Errorf("INVOICE_SWEEP_INTERVAL must be positive")
	}
	if c.Jobs.CacheFlushInterval < 0 {
		return fmt.Errorf("CACHE_FLUSH_INTERVAL cannot be negative")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LogFields returns the non-secret settings for the startup log line
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.Int("port", c.Server.Port),
		zap.String("redis_addr", c.Redis.Addr),
		zap.Duration("cache_ttl", c.Redis.TTL),
		zap.Duration("invoice_sweep_interval", c.Jobs.InvoiceSweepInterval),
		zap.Duration("cache_flush_interval", c.Jobs.CacheFlushInterval),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
