package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/comalice/nfa/internal/log"
)

type (
	// Config holds settings for the nfarun command
	Config struct {
		DefinitionPath string `env:"NFA_DEFINITION"`
		LogLevel       string `env:"NFA_LOG_LEVEL"`
		LogFormat      string `env:"NFA_LOG_FORMAT"`
		TraceBuffer    int    `env:"NFA_TRACE_BUFFER"`
	}
)

const (
	DefaultDefinitionPath = "testdata/parkingmeter.yaml"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultTraceBuffer    = 64

	MaxTraceBuffer = 1 << 20
)

var (
	ErrMissingDefinition  = errors.New("definition path is required")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidTraceBuffer = errors.New("trace buffer must be positive")
	ErrParseEnv           = errors.New("failed to parse environment")
)

// NewDefaultConfig returns a Config populated with defaults
func NewDefaultConfig() *Config {
	return &Config{
		DefinitionPath: DefaultDefinitionPath,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		TraceBuffer:    DefaultTraceBuffer,
	}
}

// Load reads an optional .env file, then the environment, and validates
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load(envFiles...)

	cfg := NewDefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv overrides fields from environment variables and validates
func (c *Config) LoadFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("%w: %w", ErrParseEnv, err)
	}
	return c.Validate()
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.DefinitionPath == "" {
		return ErrMissingDefinition
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.TraceBuffer <= 0 || c.TraceBuffer > MaxTraceBuffer {
		return fmt.Errorf("%w: %d", ErrInvalidTraceBuffer, c.TraceBuffer)
	}
	return nil
}
