package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const sqlitePrefix = "sqlite:"

type Config struct {
	Port           string
	DatabaseURL    string
	RedisURL       string
	SessionTTL     time.Duration
	CookieSecure   bool
	ArchiveBackend string
	ArchiveDir     string
	S3             S3
	ChromePath     string
	LogLevel       string
	LogFormat      string
}

type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Load reads the environment, after applying a .env file if there is one.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    getEnv("DATABASE_URL", sqlitePrefix+"resume-builder.db"),
		RedisURL:       getEnv("REDIS_URL", ""),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		ArchiveBackend: strings.ToLower(getEnv("ARCHIVE_BACKEND", "fs")),
		ArchiveDir:     getEnv("ARCHIVE_DIR", "resume-data/renders"),
		S3: S3{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", "auto"),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
		},
		ChromePath: getEnv("CHROME_PATH", ""),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}
}

func (c Config) Validate() error {
	switch c.ArchiveBackend {
	case "none", "fs":
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("ARCHIVE_BACKEND=s3 requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("unknown ARCHIVE_BACKEND %q", c.ArchiveBackend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	return nil
}

// SQLitePath reports the database file when DatabaseURL uses the sqlite:
// scheme.
func (c Config) SQLitePath() (string, bool) {
	if strings.HasPrefix(c.DatabaseURL, sqlitePrefix) {
		return strings.TrimPrefix(c.DatabaseURL, sqlitePrefix), true
	}
	return "", false
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}
