package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one validation pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Sprintf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}

// Allowed values for the enumerated settings.
var (
	uploadBackends = []string{UploadBackendLocal, UploadBackendS3}
	catalogDrivers = []string{CatalogDriverMemory, CatalogDriverSQLite, CatalogDriverPostgres}
	chatModes      = []string{ChatModeFixed, ChatModeKeyword}
)

// ValidateConfig checks that the configuration is usable for the selected backends
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if !oneOf(cfg.UploadBackend, uploadBackends) {
		errs = append(errs, ValidationError{Field: "UPLOAD_BACKEND", Message: fmt.Sprintf("must be one of %s", strings.Join(uploadBackends, ", "))})
	}
	if cfg.UploadBackend == UploadBackendLocal && cfg.UploadDir == "" {
		errs = append(errs, ValidationError{Field: "UPLOAD_DIR", Message: "required for the local upload backend"})
	}
	if cfg.UploadBackend == UploadBackendS3 && cfg.S3BucketName == "" {
		errs = append(errs, ValidationError{Field: "S3_BUCKET_NAME", Message: "required for the s3 upload backend"})
	}
	if cfg.MaxUploadBytes <= 0 {
		errs = append(errs, ValidationError{Field: "MAX_UPLOAD_BYTES", Message: "must be positive"})
	}

	if !oneOf(cfg.CatalogDriver, catalogDrivers) {
		errs = append(errs, ValidationError{Field: "CATALOG_DRIVER", Message: fmt.Sprintf("must be one of %s", strings.Join(catalogDrivers, ", "))})
	}
	if cfg.CatalogDriver == CatalogDriverSQLite && cfg.SQLitePath == "" {
		errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "required for the sqlite catalog"})
	}
	if cfg.CatalogDriver == CatalogDriverPostgres {
		required := map[string]string{
			"DB_HOST":     cfg.DBHost,
			"DB_PORT":     cfg.DBPort,
			"DB_USER":     cfg.DBUser,
			"DB_PASSWORD": cfg.DBPassword,
			"DB_NAME":     cfg.DBName,
		}
		for _, field := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
			if required[field] == "" {
				errs = append(errs, ValidationError{Field: field, Message: "required for the postgres catalog"})
			}
		}
	}

	if cfg.RedisURL != "" && cfg.CacheTTL <= 0 {
		errs = append(errs, ValidationError{Field: "CACHE_TTL", Message: "must be positive when REDIS_URL is set"})
	}

	if !oneOf(cfg.ChatMode, chatModes) {
		errs = append(errs, ValidationError{Field: "CHAT_MODE", Message: fmt.Sprintf("must be one of %s", strings.Join(chatModes, ", "))})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
