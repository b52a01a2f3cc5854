// Package server provides configuration helpers that define runtime defaults,
// validation, and the environment and YAML sources for the relay.
package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

const (
	defaultPort            = "8080"
	defaultMaxMessageSize  = 16 << 10
	defaultSendBuffer      = 256
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds the relay settings. Zero values are replaced by defaults in
// Sanitize.
type Config struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MaxMessageSize  int64         `yaml:"max_message_size"`
	SendBuffer      int           `yaml:"send_buffer"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// NewConfig creates a Config instance populated with default values for all settings.
func NewConfig() *Config {
	return &Config{
		Port:            defaultPort,
		MaxMessageSize:  defaultMaxMessageSize,
		SendBuffer:      defaultSendBuffer,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// NewConfigFromEnv creates a Config instance from environment variables.
// Falls back to default values if environment variables are not set.
func NewConfigFromEnv() *Config {
	cfg := NewConfig()
	cfg.applyEnv(os.Getenv)
	cfg.Sanitize()
	return cfg
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE (if any), then the environment. A file that cannot be read
// or parsed is reported, and the returned Config is still usable.
func LoadConfig() (*Config, error) {
	cfg := NewConfig()

	var fileErr error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileErr = cfg.LoadFile(path)
	}

	cfg.applyEnv(os.Getenv)
	cfg.Sanitize()
	return cfg, fileErr
}

// LoadFile overlays the settings present in the YAML file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		c.Port = port
	}

	if origins := getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = parseOrigins(origins)
	}

	if maxSize := getenv("MAX_MESSAGE_SIZE"); maxSize != "" {
		c.MaxMessageSize = parseMaxMessageSize(maxSize, c.MaxMessageSize)
	}

	if buffer := getenv("SEND_BUFFER"); buffer != "" {
		c.SendBuffer = parseIntValue(buffer, c.SendBuffer)
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}

	if format := getenv("LOG_FORMAT"); format != "" {
		c.LogFormat = format
	}

	if timeout := getenv("SHUTDOWN_TIMEOUT"); timeout != "" {
		c.ShutdownTimeout = parseTimeout(timeout, c.ShutdownTimeout)
	}
}

// Sanitize replaces missing or invalid values with defaults.
func (c *Config) Sanitize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = defaultPort
	}

	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}

	if c.SendBuffer <= 0 {
		c.SendBuffer = defaultSendBuffer
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = defaultLogLevel
	}

	if strings.TrimSpace(c.LogFormat) == "" {
		c.LogFormat = defaultLogFormat
	}

	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
}

// Addr returns the listen address. A bare port such as "8080" becomes ":8080".
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseMaxMessageSize(value string, defaultValue int64) int64 {
	if size, err := strconv.ParseInt(value, 10, 64); err == nil && size > 0 {
		return size
	}
	return defaultValue
}

func parseIntValue(value string, defaultValue int) int {
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}

// parseTimeout accepts a Go duration ("15s") or a whole number of seconds.
func parseTimeout(value string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
