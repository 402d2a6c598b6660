// Package config loads runtime settings for the notes API from command-line
// flags, falling back to environment variables (optionally read from .env).
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("jwt secret is required (set JWT_SECRET or -jwt-secret)")

type Config struct {
	HTTPAddr        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	ShutdownTimeout time.Duration
	LogLevel        string
	AutoMigrate     bool
}

// LoadDotEnv reads .env when present. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load parses args (without the program name) on top of env defaults.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)

	fs.StringVar(&cfg.HTTPAddr, "addr", envOr("HTTP_ADDR", "0.0.0.0:8080"), "HTTP listen address")
	fs.StringVar(&cfg.DBHost, "db-host", envOr("POSTGRES_HOST", "localhost"), "Database host")
	fs.StringVar(&cfg.DBPort, "db-port", envOr("POSTGRES_PORT", "5432"), "Database port")
	fs.StringVar(&cfg.DBUser, "db-user", envOr("POSTGRES_USER", "postgres"), "Database user")
	fs.StringVar(&cfg.DBPassword, "db-pass", envOr("POSTGRES_PASSWORD", ""), "Database password")
	fs.StringVar(&cfg.DBName, "db-name", envOr("POSTGRES_DB", "notes"), "Database name")
	fs.StringVar(&cfg.DBSSLMode, "db-sslmode", envOr("POSTGRES_SSLMODE", "disable"), "Database sslmode")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", envOr("JWT_SECRET", ""), "HMAC secret for session tokens")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level")

	tokenTTL, err := envDuration("TOKEN_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", tokenTTL, "Session token lifetime")

	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", shutdownTimeout, "Graceful shutdown timeout")

	bcryptCost, err := envInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", bcryptCost, "bcrypt cost factor")

	autoMigrate, err := envBool("AUTO_MIGRATE", true)
	if err != nil {
		return nil, err
	}
	fs.BoolVar(&cfg.AutoMigrate, "migrate", autoMigrate, "Apply pending migrations on startup")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// DSN returns the lib/pq connection URL.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
