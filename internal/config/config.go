package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"autocorrect/pkg/options"
)

// Config represents the autocorrect configuration.
type Config struct {
	HTTPAddr       string          `yaml:"http_addr"`       // Listen address for the HTTP API
	DictionaryPath string          `yaml:"dictionary_path"` // Frequency dictionary (.csv or "word count" text)
	LogLevel       string          `yaml:"log_level"`       // debug, info, warn, error
	Redis          RedisConfig     `yaml:"redis"`
	Corrector      CorrectorConfig `yaml:"corrector"`
}

// RedisConfig holds the custom dictionary connection.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"` // Set holding custom words
}

// CorrectorConfig holds ranking and skip settings.
type CorrectorConfig struct {
	MaxEditDistance int  `yaml:"max_edit_distance"`
	MaxCandidates   int  `yaml:"max_candidates"`
	MinWordLength   int  `yaml:"min_word_length"`
	PreserveUpper   bool `yaml:"preserve_upper"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:       ":8080",
		DictionaryPath: "words.csv",
		LogLevel:       "info",
		Redis: RedisConfig{
			Enabled: true,
			Addr:    "localhost:6379",
			Key:     "custom_dict",
		},
		Corrector: CorrectorConfig{
			MaxEditDistance: options.DefaultOptions.MaxEditDistance,
			MaxCandidates:   options.DefaultOptions.MaxCandidates,
			MinWordLength:   options.DefaultOptions.MinWordLength,
			PreserveUpper:   options.DefaultOptions.PreserveUpper,
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.DictionaryPath = getenv("DICTIONARY_PATH", c.DictionaryPath)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.Key = getenv("REDIS_KEY", c.Redis.Key)
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Redis.Enabled = b
		}
	}
	c.Corrector.MaxEditDistance = getEnvInt("MAX_EDIT_DISTANCE", c.Corrector.MaxEditDistance)
}

// Validate rejects settings the corrector cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.DictionaryPath == "" {
		errs = append(errs, errors.New("dictionary_path is required"))
	}
	if c.Corrector.MaxEditDistance < 0 {
		errs = append(errs, fmt.Errorf("corrector.max_edit_distance must be >= 0, got %d", c.Corrector.MaxEditDistance))
	}
	if c.Corrector.MaxCandidates <= 0 {
		errs = append(errs, fmt.Errorf("corrector.max_candidates must be > 0, got %d", c.Corrector.MaxCandidates))
	}
	if c.Corrector.MinWordLength < 0 {
		errs = append(errs, fmt.Errorf("corrector.min_word_length must be >= 0, got %d", c.Corrector.MinWordLength))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts the corrector section to functional options.
func (c *Config) Options() []options.Options {
	opts := []options.Options{
		options.WithMaxEditDistance(c.Corrector.MaxEditDistance),
		options.WithMaxCandidates(c.Corrector.MaxCandidates),
		options.WithMinWordLength(c.Corrector.MinWordLength),
	}
	if c.Corrector.PreserveUpper {
		opts = append(opts, options.WithPreserveUpper())
	}
	return opts
}

// ParseLevel maps a config log level to slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
