package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Social cross-posting configuration
	Social SocialConfig

	// Media storage configuration
	Media MediaConfig

	// Retry defaults for startup and outbound calls
	Retry RetryConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// PlatformConfig holds one social platform's endpoint settings
type PlatformConfig struct {
	Endpoint string
	Token    string
}

// SocialConfig holds cross-posting settings for all platforms
type SocialConfig struct {
	Twitter     PlatformConfig
	Instagram   PlatformConfig
	LinkedIn    PlatformConfig
	PostTimeout time.Duration
}

// MediaConfig holds Supabase Storage settings for image uploads
type MediaConfig struct {
	SupabaseURL string
	SupabaseKey string
	Bucket      string
	MaxSize     int64 // in bytes
}

// RetryConfig holds backoff defaults
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "magazine_editorial"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Social: SocialConfig{
			Twitter: PlatformConfig{
				Endpoint: getEnv("SOCIAL_TWITTER_ENDPOINT", ""),
				Token:    getEnv("SOCIAL_TWITTER_TOKEN", ""),
			},
			Instagram: PlatformConfig{
				Endpoint: getEnv("SOCIAL_INSTAGRAM_ENDPOINT", ""),
				Token:    getEnv("SOCIAL_INSTAGRAM_TOKEN", ""),
			},
			LinkedIn: PlatformConfig{
				Endpoint: getEnv("SOCIAL_LINKEDIN_ENDPOINT", ""),
				Token:    getEnv("SOCIAL_LINKEDIN_TOKEN", ""),
			},
			PostTimeout: getDurationEnv("SOCIAL_POST_TIMEOUT", 30*time.Second),
		},
		Media: MediaConfig{
			SupabaseURL: getEnv("SUPABASE_URL", ""),
			SupabaseKey: getEnv("SUPABASE_SERVICE_KEY", ""),
			Bucket:      getEnv("MEDIA_BUCKET", "article-images"),
			MaxSize:     getInt64Env("MEDIA_MAX_SIZE", 10*1024*1024), // 10MB
		},
		Retry: RetryConfig{
			MaxRetries: getIntEnv("RETRY_MAX_RETRIES", 3),
			BaseDelay:  getDurationEnv("RETRY_BASE_DELAY", 500*time.Millisecond),
			MaxDelay:   getDurationEnv("RETRY_MAX_DELAY", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("RETRY_MAX_RETRIES must not be negative")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
