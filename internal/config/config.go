package config

import (
	"os"
	"strconv"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port               string
	ShutdownTimeoutSec int
	DebugMode          bool
}

// StoreConfig holds the file store location and its limits. MaxStorageMB is
// the aggregate soft quota used for usage-percentage display only; it is not
// enforced at write time.
type StoreConfig struct {
	UploadDir         string
	MaxFileSizeMB     int64
	MaxFileCount      int
	MaxStorageMB      int64
	PreviewLimitBytes int64
}

// AuthConfig holds the credential pair and session settings. An empty
// SessionSecret means a random per-process secret is generated at startup.
type AuthConfig struct {
	Username           string
	Password           string
	SessionSecret      string
	SessionTTLHours    int
	LoginRatePerMinute int
}

// LogConfig holds zap/lumberjack settings. An empty Path disables the
// rolling file sink.
type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; there are no process-wide
// mutable constants, every component receives the values it needs at
// construction.
type AppConfig struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	Log    LogConfig
}

// MaxFileSizeBytes returns the per-file ceiling in bytes.
func (c StoreConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// MaxStorageBytes returns the aggregate soft quota in bytes.
func (c StoreConfig) MaxStorageBytes() int64 {
	return c.MaxStorageMB * 1024 * 1024
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
			DebugMode:          getEnvBool("DEBUG", false),
		},
		Store: StoreConfig{
			UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
			MaxFileSizeMB:     getEnvInt64("MAX_FILE_SIZE_MB", 16384),
			MaxFileCount:      getEnvInt("MAX_FILE_COUNT", 10),
			MaxStorageMB:      getEnvInt64("MAX_STORAGE_MB", 1024*1024),
			PreviewLimitBytes: getEnvInt64("PREVIEW_LIMIT_BYTES", 10240),
		},
		Auth: AuthConfig{
			Username:           getEnv("AUTH_USERNAME", "admin"),
			Password:           getEnv("AUTH_PASSWORD", "admin"), // change in production
			SessionSecret:      getEnv("SESSION_SECRET", ""),
			SessionTTLHours:    getEnvInt("SESSION_TTL_HOURS", 24),
			LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Path:       getEnv("LOG_PATH", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_COMPRESS", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
