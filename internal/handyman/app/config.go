package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. A .env
// file in the working directory is loaded first as an overlay for local
// development; real environment variables win.
type Config struct {
	Service string
	Version string
	Env     string

	ListenAddr      string
	ShutdownGrace   time.Duration
	LogLevel        string
	LogFormat       string

	DatabaseDSN    string
	SigningKeyPath string
	PepperPath     string
	Issuer         string
	TokenTTL       time.Duration
}

// LoadConfig reads configuration from the environment with sane defaults
// for local development.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Service: "handyman",
		Version: getEnvOrDefault("HANDYMAN_VERSION", "dev"),
		Env:     getEnvOrDefault("HANDYMAN_ENV", "dev"),

		ListenAddr:    getEnvOrDefault("HANDYMAN_LISTEN_ADDR", ":8080"),
		ShutdownGrace: getEnvDurationOrDefault("HANDYMAN_SHUTDOWN_GRACE_SEC", 10*time.Second),
		LogLevel:      getEnvOrDefault("HANDYMAN_LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("HANDYMAN_LOG_FORMAT", "json"),

		DatabaseDSN:    getEnvOrDefault("HANDYMAN_DATABASE_DSN", "file:handyman.db"),
		SigningKeyPath: os.Getenv("HANDYMAN_SIGNING_KEY_PATH"),
		PepperPath:     getEnvOrDefault("HANDYMAN_PEPPER_PATH", "handyman.pepper"),
		Issuer:         getEnvOrDefault("HANDYMAN_ISSUER", "handyman"),
		TokenTTL:       getEnvDurationOrDefault("HANDYMAN_TOKEN_TTL_SEC", 24*time.Hour),
	}
}

// Validate rejects configurations the service cannot safely start with.
// Tokens signed with a throwaway key would all die on restart, so the key
// path is mandatory.
func (c Config) Validate() error {
	if c.SigningKeyPath == "" {
		return errors.New("HANDYMAN_SIGNING_KEY_PATH is required")
	}
	if c.DatabaseDSN == "" {
		return errors.New("HANDYMAN_DATABASE_DSN must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("HANDYMAN_TOKEN_TTL_SEC must be positive, got %s", c.TokenTTL)
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
