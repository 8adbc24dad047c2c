package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Upload backends
const (
	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

// Catalog drivers
const (
	CatalogDriverMemory   = "memory"
	CatalogDriverSQLite   = "sqlite"
	CatalogDriverPostgres = "postgres"
)

// Chat modes
const (
	ChatModeFixed   = "fixed"
	ChatModeKeyword = "keyword"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration
	LogLevel        string

	// Upload configuration
	UploadBackend  string
	UploadDir      string
	MaxUploadBytes int64
	S3BucketName   string
	S3Region       string
	S3Prefix       string

	// Catalog configuration
	CatalogDriver string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string

	// Redis cache configuration
	RedisURL string
	CacheTTL time.Duration

	ChatMode string
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Environment:     Development,
		ServerHost:      "0.0.0.0",
		ServerPort:      "5000",
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
		UploadBackend:   UploadBackendLocal,
		UploadDir:       "uploads",
		MaxUploadBytes:  10 << 20,
		S3Prefix:        "uploads/",
		CatalogDriver:   CatalogDriverMemory,
		SQLitePath:      "catalog.db",
		DBPort:          "5432",
		DBSSLMode:       "disable",
		CacheTTL:        10 * time.Minute,
		ChatMode:        ChatModeFixed,
	}
}

// LoadConfig creates a new Config instance with values from a .env file,
// environment variables, or Docker secrets
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()
	cfg.Environment = GetEnvironment()

	var errs ValidationErrors

	cfg.ServerHost = getEnv("SERVER_HOST", cfg.ServerHost)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.UploadBackend = strings.ToLower(getEnv("UPLOAD_BACKEND", cfg.UploadBackend))
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.S3BucketName = getEnv("S3_BUCKET_NAME", cfg.S3BucketName)
	cfg.S3Region = getEnv("AWS_REGION", cfg.S3Region)
	cfg.S3Prefix = getEnv("S3_PREFIX", cfg.S3Prefix)

	cfg.CatalogDriver = strings.ToLower(getEnv("CATALOG_DRIVER", cfg.CatalogDriver))
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = secretOrEnv("DB_USER", "db_user", cfg.DBUser)
	cfg.DBPassword = secretOrEnv("DB_PASSWORD", "db_password", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", cfg.DBSSLMode)

	cfg.RedisURL = secretOrEnv("REDIS_URL", "redis_url", cfg.RedisURL)
	cfg.ChatMode = strings.ToLower(getEnv("CHAT_MODE", cfg.ChatMode))

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, ValidationError{Field: "MAX_UPLOAD_BYTES", Message: err.Error()})
		} else {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "CACHE_TTL", Message: err.Error()})
		} else {
			cfg.CacheTTL = d
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "SHUTDOWN_TIMEOUT", Message: err.Error()})
		} else {
			cfg.ShutdownTimeout = d
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Address returns the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN returns the PostgreSQL connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// secretOrEnv prefers the environment variable and falls back to a Docker secret
func secretOrEnv(key, secret, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := readSecret(secret); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
