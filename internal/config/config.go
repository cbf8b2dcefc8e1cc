package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Session store backends.
const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

// Config holds all configuration for the client
type Config struct {
	APIURL            string
	AuthScheme        string
	HTTPTimeout       time.Duration
	SessionStore      string
	SessionFile       string
	SessionProfile    string
	RedisURI          string
	ActivityQueueSize int
	ActivityWorkers   int
	LogLevel          string
	LogFormat         string
	SentryDSN         string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:            normalizeBaseURL(getEnvRequired("API_URL")),
		AuthScheme:        getEnv("AUTH_SCHEME", "Token"),
		HTTPTimeout:       parseDuration(getEnv("HTTP_TIMEOUT", "15s")),
		SessionStore:      getEnv("SESSION_STORE", SessionStoreFile),
		SessionFile:       getEnv("SESSION_FILE", defaultSessionFile()),
		SessionProfile:    getEnv("SESSION_PROFILE", "default"),
		RedisURI:          getEnv("REDIS_URI", "localhost:6379"),
		ActivityQueueSize: parseInt(getEnv("ACTIVITY_QUEUE_SIZE", "64")),
		ActivityWorkers:   parseInt(getEnv("ACTIVITY_WORKERS", "2")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
	}

	if cfg.SessionStore != SessionStoreFile && cfg.SessionStore != SessionStoreRedis {
		logrus.Fatalf("Invalid SESSION_STORE %q, must be %q or %q", cfg.SessionStore, SessionStoreFile, SessionStoreRedis)
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logrus.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		logrus.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses a positive integer, exits on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		logrus.Fatalf("Invalid positive integer: %s", s)
	}
	return n
}

// normalizeBaseURL guarantees a single trailing slash so relative API paths
// can be appended directly.
func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sdgks-session.json"
	}
	return filepath.Join(home, ".sdgks", "session.json")
}
