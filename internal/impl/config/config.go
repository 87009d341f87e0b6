package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 60 * time.Second

	defaultStandardRequestsPerMinute = 200
	defaultBulkRequestsPerMinute     = 20
)

type Config struct {
	APIKey  string
	BaseURL string

	HTTPTimeout time.Duration

	RateLimitingEnabled       bool
	StandardRequestsPerMinute int
	BulkRequestsPerMinute     int

	logger *zap.Logger
}

var (
	configInstance *Config
	once           sync.Once
)

// InitConfig loads the environment (optionally from a .env file) and
// returns the process-wide configuration. Safe to call more than once;
// the environment is read exactly once.
func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		} else {
			logger.Debug("Successfully loaded .env file")
		}

		// Both names are accepted; APOLLO_API_KEY wins when both are set.
		apiKey := os.Getenv("APOLLO_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("APOLLO_IO_API_KEY")
		}
		if apiKey == "" {
			logger.Warn("Neither APOLLO_API_KEY nor APOLLO_IO_API_KEY set in environment variables")
		} else {
			logger.Debug("Loaded Apollo API key", zap.String("key", maskKey(apiKey)))
		}

		configInstance = &Config{
			APIKey:                    apiKey,
			BaseURL:                   os.Getenv("APOLLO_BASE_URL"),
			HTTPTimeout:               durationEnv(logger, "APOLLO_HTTP_TIMEOUT", defaultHTTPTimeout),
			RateLimitingEnabled:       boolEnv(logger, "APOLLO_RATE_LIMITING", true),
			StandardRequestsPerMinute: intEnv(logger, "APOLLO_STANDARD_RPM", defaultStandardRequestsPerMinute),
			BulkRequestsPerMinute:     intEnv(logger, "APOLLO_BULK_RPM", defaultBulkRequestsPerMinute),
			logger:                    logger,
		}
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

func intEnv(logger *zap.Logger, name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logger.Warn("Ignoring invalid environment value",
			zap.String("name", name),
			zap.String("value", raw))
		return fallback
	}
	return value
}

func boolEnv(logger *zap.Logger, name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Ignoring invalid environment value",
			zap.String("name", name),
			zap.String("value", raw))
		return fallback
	}
	return value
}

func durationEnv(logger *zap.Logger, name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	// Accept a bare number of seconds as well as a Go duration string.
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		logger.Warn("Ignoring invalid environment value",
			zap.String("name", name),
			zap.String("value", raw))
		return fallback
	}
	return value
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
