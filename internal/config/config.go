package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DiscordToken string
	DiscordAppID string
	// DiscordGuildID scopes slash command registration to one guild for
	// fast iteration; empty registers them globally.
	DiscordGuildID string

	// MatchThreshold is the maximum differing-pixel count accepted as a
	// match. DiffTolerance is the per-pixel color tolerance.
	MatchThreshold int
	DiffTolerance  float64
	MatchWorkers   int

	ScanWorkers   int
	ScanQueueSize int

	FetchTimeout time.Duration

	RefCacheSize int
	RefCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "lootgrid"),
		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.MatchThreshold, err = getEnvInt("MATCH_THRESHOLD", 0); err != nil {
		return nil, err
	}
	if cfg.MatchWorkers, err = getEnvInt("MATCH_WORKERS", 8); err != nil {
		return nil, err
	}
	if cfg.ScanWorkers, err = getEnvInt("SCAN_WORKERS", 2); err != nil {
		return nil, err
	}
	if cfg.ScanQueueSize, err = getEnvInt("SCAN_QUEUE_SIZE", 64); err != nil {
		return nil, err
	}
	if cfg.RefCacheSize, err = getEnvInt("REF_CACHE_SIZE", 128); err != nil {
		return nil, err
	}
	if cfg.DiffTolerance, err = getEnvFloat("DIFF_TOLERANCE", 0.1); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getEnvDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RefCacheTTL, err = getEnvDuration("REF_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	if cfg.DiffTolerance < 0 || cfg.DiffTolerance > 1 {
		return nil, fmt.Errorf("DIFF_TOLERANCE must be within [0,1], got %v", cfg.DiffTolerance)
	}
	if cfg.MatchThreshold < 0 {
		return nil, fmt.Errorf("MATCH_THRESHOLD must not be negative, got %d", cfg.MatchThreshold)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
