package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/auth"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	PasswordScheme  string
	JWTSecret       string
	TokenTTL        time.Duration
	StaticDir       string
	ShutdownTimeout time.Duration

	// values that were set but could not be parsed; reported by Validate
	parseErrors []string
}

// Load reads files (".env" when none are given) into the environment and
// builds a Config from it. A missing env file is reported but not fatal.
func Load(files ...string) (*Config, error) {
	envErr := godotenv.Load(files...)

	cfg := &Config{
		Port:           getEnv("SERVER_PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		PasswordScheme: getEnv("PASSWORD_SCHEME", auth.SchemePlaintext),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
	}
	cfg.TokenTTL = cfg.getEnvDuration("TOKEN_TTL", 24*time.Hour)
	cfg.ShutdownTimeout = cfg.getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if v, ok := os.LookupEnv("STATIC_DIR"); ok && v == "" {
		cfg.StaticDir = ""
	}

	return cfg, envErr
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	errors := append([]string(nil), c.parseErrors...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'console' or 'json'", c.LogFormat))
	}

	if _, err := auth.NewCredentialChecker(c.PasswordScheme); err != nil {
		errors = append(errors, err.Error())
	}

	if c.JWTSecret != "" && c.TokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid token ttl %v: must be positive", c.TokenTTL))
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
		return defaultValue
	}
	return d
}
