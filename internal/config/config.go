// Package config loads process settings from the environment and the custom
// condition vocabulary from a YAML file.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/services/extraction"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds process settings. CLI flags override these after loading.
type Config struct {
	GRPCPort       int      `env:"STATBLOCK_GRPC_PORT"       envDefault:"50051"`
	RedisAddrs     []string `env:"STATBLOCK_REDIS_ADDR"      envSeparator:","`
	RedisTLS       bool     `env:"STATBLOCK_REDIS_TLS"`
	SQLitePath     string   `env:"STATBLOCK_SQLITE_PATH"`
	Workers        int      `env:"STATBLOCK_WORKERS"         envDefault:"4"`
	LogLevel       string   `env:"STATBLOCK_LOG_LEVEL"       envDefault:"info"`
	ConditionsFile string   `env:"STATBLOCK_CONDITIONS_FILE"`

	// OTelEndpoint is an OTLP/HTTP trace collector URL; empty disables tracing
	OTelEndpoint string `env:"STATBLOCK_OTEL_ENDPOINT"`
	// MetricsPort serves Prometheus metrics from the server command; 0 disables
	MetricsPort int `env:"STATBLOCK_METRICS_PORT"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for coherent values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("workers", c.Workers, 1, 256, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), logLevels, vb)
	if c.MetricsPort != 0 {
		errors.ValidateRange("metrics_port", c.MetricsPort, 1, 65535, vb)
		if c.MetricsPort == c.GRPCPort {
			vb.Field("metrics_port", "must differ from grpc_port")
		}
	}
	if len(c.RedisAddrs) > 0 && c.SQLitePath != "" {
		vb.Field("sqlite_path", "cannot be combined with redis_addr")
	}

	return vb.Build()
}

// SlogLevel maps the configured level name to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// VocabularyFile is the YAML shape of a custom condition file
type VocabularyFile struct {
	Conditions []string `yaml:"conditions"`
}

// LoadVocabulary builds the condition vocabulary. An empty path yields the
// built-in conditions only.
func LoadVocabulary(path string) (*extraction.Vocabulary, error) {
	if path == "" {
		return extraction.NewVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read conditions file %s", path)
	}

	return ParseVocabulary(bytes.NewReader(data))
}

// ParseVocabulary decodes a condition file. Unknown keys are rejected.
func ParseVocabulary(r io.Reader) (*extraction.Vocabulary, error) {
	var file VocabularyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode conditions file")
	}

	return extraction.NewVocabulary(file.Conditions...), nil
}
