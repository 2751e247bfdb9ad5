package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"lottotrack/database"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// MinSecretKeyLength is the shortest accepted SECRET_KEY
const MinSecretKeyLength = 16

// developmentSecretKey signs sessions when no usable SECRET_KEY is set outside production
const developmentSecretKey = "lottotrack-development-only-secret"

// Stat source names for ANALYSIS_STAT_SOURCE
const (
	StatSourceStore     = "store"
	StatSourceSynthetic = "synthetic"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// HTTP configuration
	HTTPAddr       string
	SecretKey      string
	SessionTimeout time.Duration

	// Lottery configuration
	DrawsPerPage       int
	AnalysisStatSource string // "store" or "synthetic"
	SyntheticSeed      uint64

	// Discord notifier, disabled when the token is empty
	DiscordToken     string
	DiscordChannelID string

	LogLevel    string
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				return
			}
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// GetDatabaseURL combines the base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadDotEnv reads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

func load() (*Config, error) {
	config := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		HTTPAddr:       getEnvWithDefault("HTTP_ADDR", ":8080"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		SessionTimeout: 24 * time.Hour,

		DrawsPerPage:       20,
		AnalysisStatSource: strings.ToLower(getEnvWithDefault("ANALYSIS_STAT_SOURCE", StatSourceStore)),
		SyntheticSeed:      1,

		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),

		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if timeout := os.Getenv("SESSION_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TIMEOUT %q", timeout)
		}
		config.SessionTimeout = parsed
	}
	if perPage := os.Getenv("DRAWS_PER_PAGE"); perPage != "" {
		parsed, err := strconv.Atoi(perPage)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid DRAWS_PER_PAGE %q", perPage)
		}
		config.DrawsPerPage = parsed
	}
	if seed := os.Getenv("SYNTHETIC_SEED"); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SYNTHETIC_SEED %q", seed)
		}
		config.SyntheticSeed = parsed
	}

	switch config.AnalysisStatSource {
	case StatSourceStore, StatSourceSynthetic:
	default:
		return nil, fmt.Errorf("ANALYSIS_STAT_SOURCE must be %q or %q, got %q",
			StatSourceStore, StatSourceSynthetic, config.AnalysisStatSource)
	}

	if err := config.resolveSecretKey(); err != nil {
		return nil, err
	}

	if config.Environment != "test" && config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return config, nil
}

// resolveSecretKey falls back to a development key when SECRET_KEY is
// missing or short. Production refuses to start instead.
func (c *Config) resolveSecretKey() error {
	if len(c.SecretKey) >= MinSecretKeyLength {
		return nil
	}
	if c.IsProduction() {
		return fmt.Errorf("SECRET_KEY must be at least %d characters in production", MinSecretKeyLength)
	}
	log.WithField("min_length", MinSecretKeyLength).Warn("SECRET_KEY missing or too short, using development key")
	c.SecretKey = developmentSecretKey
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		HTTPAddr:           ":0",
		SecretKey:          "test-secret-key-0123456789",
		SessionTimeout:     time.Hour,
		DrawsPerPage:       20,
		AnalysisStatSource: StatSourceSynthetic,
		SyntheticSeed:      1,
		LogLevel:           "debug",
		Environment:        "test",
	}
}
