package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

const defaultJWTSecret = "food_order_dev_secret_change_me"

// Config holds the runtime settings of the API server.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	CookieName  string
	// CookieSecure sets the Secure flag on the session cookie.
	CookieSecure bool
	// EnforceOrderOwnership limits edit-order/delete-order to the user who
	// placed the order (or an Admin). Off by default.
	EnforceOrderOwnership bool
	// CORSOrigins may send credentialed cross-origin requests.
	CORSOrigins   []string
	LogLevel      string
	GinMode       string
	AdminEmail    string
	AdminPassword string
}

// fileConfig is the YAML shape read from CONFIG_FILE.
type fileConfig struct {
	Port                  string   `yaml:"port"`
	DatabaseURL           string   `yaml:"database_url"`
	JWTSecret             string   `yaml:"jwt_secret"`
	TokenTTL              string   `yaml:"token_ttl"`
	CookieSecure          *bool    `yaml:"cookie_secure"`
	EnforceOrderOwnership *bool    `yaml:"enforce_order_ownership"`
	CORSOrigins           []string `yaml:"cors_origins"`
	LogLevel              string   `yaml:"log_level"`
	GinMode               string   `yaml:"gin_mode"`
	AdminEmail            string   `yaml:"admin_email"`
	AdminPassword         string   `yaml:"admin_password"`
}

// Defaults returns development settings. The JWT secret must be overridden
// outside development.
func Defaults() *Config {
	return &Config{
		Port:        "8080",
		DatabaseURL: "food_order.db",
		JWTSecret:   defaultJWTSecret,
		TokenTTL:    3 * 24 * time.Hour,
		CookieName:  "jwt",
		LogLevel:    "info",
		GinMode:     "debug",
	}
}

// Load applies defaults, then the optional YAML file named by CONFIG_FILE,
// then environment variables.
func Load() (*Config, error) {
	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&c.Port, fc.Port)
	setString(&c.DatabaseURL, fc.DatabaseURL)
	setString(&c.JWTSecret, fc.JWTSecret)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.GinMode, fc.GinMode)
	setString(&c.AdminEmail, fc.AdminEmail)
	setString(&c.AdminPassword, fc.AdminPassword)
	if fc.TokenTTL != "" {
		d, err := parseTTL(fc.TokenTTL)
		if err != nil {
			return fmt.Errorf("token_ttl: %w", err)
		}
		c.TokenTTL = d
	}
	if fc.CookieSecure != nil {
		c.CookieSecure = *fc.CookieSecure
	}
	if fc.EnforceOrderOwnership != nil {
		c.EnforceOrderOwnership = *fc.EnforceOrderOwnership
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.AdminEmail = getEnv("ADMIN_EMAIL", c.AdminEmail)
	c.AdminPassword = getEnv("ADMIN_PASSWORD", c.AdminPassword)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := parseTTL(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.TokenTTL = d
	}
	var err error
	if c.CookieSecure, err = getBool("COOKIE_SECURE", c.CookieSecure); err != nil {
		return err
	}
	if c.EnforceOrderOwnership, err = getBool("ENFORCE_ORDER_OWNERSHIP", c.EnforceOrderOwnership); err != nil {
		return err
	}
	return nil
}

// UsesDefaultSecret reports whether JWTSecret was never overridden.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// parseTTL reads a token lifetime, which must be positive.
func parseTTL(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
