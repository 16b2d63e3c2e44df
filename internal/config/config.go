// Package config reads the service configuration from the environment. A
// .env file in the working directory is loaded first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// DB holds the PostgreSQL connection settings
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// UseConnStr selects ConnStr over the individual fields.
	UseConnStr bool
	ConnStr    string
}

type Config struct {
	Port  int
	Store string

	DB DB

	SecretKey      string
	JWTIssuer      string
	AccessTokenTTL time.Duration

	AllowOrigins      []string
	RateLimitPerSec   uint
	MaxBodyBytes      int64
	NotificationTopic string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string

	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Port:              8080,
		Store:             StorePostgres,
		JWTIssuer:         "campusjobs",
		AccessTokenTTL:    24 * time.Hour,
		RateLimitPerSec:   5,
		MaxBodyBytes:      1 << 20,
		NotificationTopic: "campusjobs:notifications",
		LogLevel:          "info",
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = n
	}

	if store := os.Getenv("STORE"); store != "" {
		cfg.Store = strings.ToLower(store)
	}

	cfg.DB = DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_DATABASE"),
		ConnStr:  os.Getenv("DB_CONNECTION_STR"),
	}
	if useConnStr := os.Getenv("USE_CONNECTION_STR"); useConnStr != "" {
		b, err := strconv.ParseBool(useConnStr)
		if err != nil {
			return nil, fmt.Errorf("invalid USE_CONNECTION_STR: %w", err)
		}
		cfg.DB.UseConnStr = b
	}

	cfg.SecretKey = os.Getenv("SECRET_KEY")
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		cfg.JWTIssuer = issuer
	}
	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = d
	}

	if origins := os.Getenv("ALLOW_ORIGIN"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}

	if rate := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); rate != "" {
		n, err := strconv.Atoi(rate)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS_PER_SECOND: %q", rate)
		}
		cfg.RateLimitPerSec = uint(n)
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}

	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}

	if c.AccessTokenTTL < time.Minute {
		return fmt.Errorf("access token ttl too small: %v", c.AccessTokenTTL)
	}

	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if err := c.DB.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown STORE %q, want %s or %s", c.Store, StorePostgres, StoreMemory)
	}

	return nil
}

// Validate checks that the connection settings are complete.
func (d DB) Validate() error {
	if d.UseConnStr {
		if d.ConnStr == "" {
			return fmt.Errorf("DB_CONNECTION_STR is empty")
		}
		return nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.Name == "" {
		return fmt.Errorf("database configuration is incomplete")
	}
	return nil
}

// DSN returns the connection string of d.
func (d DB) DSN() string {
	if d.UseConnStr {
		return d.ConnStr
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name)
}
