// Package config loads blastoff settings from YAML, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/blastoff/countdown"
	"github.com/katalvlaran/blastoff/demo"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid config")

// Environment variables that override file settings.
const (
	EnvLogLevel = "BLASTOFF_LOG_LEVEL"
	EnvLogJSON  = "BLASTOFF_LOG_JSON"
	EnvPrompt   = "BLASTOFF_PROMPT"
	EnvMessage  = "BLASTOFF_MESSAGE"
	EnvTrace    = "BLASTOFF_TRACE_FORMAT"
)

// Config is the root of the configuration file.
type Config struct {
	Logger    LoggerConfig    `yaml:"logger"`
	Countdown CountdownConfig `yaml:"countdown"`
	Trace     TraceConfig     `yaml:"trace"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type CountdownConfig struct {
	Prompt  string `yaml:"prompt"`
	Message string `yaml:"message"`
}

type TraceConfig struct {
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "warn",
			JSON:  false,
		},
		Countdown: CountdownConfig{
			Prompt:  demo.DefaultPrompt,
			Message: countdown.DefaultMessage,
		},
		Trace: TraceConfig{
			Format: "text",
		},
	}
}

// Load reads path (a missing file yields Default), then the .env files in
// envFiles (missing ones are skipped), then applies environment overrides.
// It does not call Validate, so callers can layer flags on top first.
// An empty path skips the YAML step.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logger.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogJSON); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvLogJSON, v)
		}
		c.Logger.JSON = b
	}
	if v, ok := os.LookupEnv(EnvPrompt); ok {
		c.Countdown.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvMessage); ok {
		c.Countdown.Message = v
	}
	if v, ok := os.LookupEnv(EnvTrace); ok {
		c.Trace.Format = v
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logger.level %q", ErrInvalidConfig, c.Logger.Level)
	}
	switch c.Trace.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: trace.format %q", ErrInvalidConfig, c.Trace.Format)
	}
	return nil
}
