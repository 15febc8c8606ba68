// Package config loads leadrank settings from config.yaml and LEADRANK_*
// environment variables, and sets up the global logger.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Dedup  DedupConfig  `yaml:"dedup" mapstructure:"dedup"`
	Enrich EnrichConfig `yaml:"enrich" mapstructure:"enrich"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// DedupConfig selects the company-name matcher.
type DedupConfig struct {
	Strategy  string  `yaml:"strategy" mapstructure:"strategy"`
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// EnrichConfig configures contact lookups. An empty BaseURL means contacts
// are guessed locally instead of fetched.
type EnrichConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"`
	RatePerSec  float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	TimeoutSecs int           `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Retry       RetryConfig   `yaml:"retry" mapstructure:"retry"`
	Circuit     CircuitConfig `yaml:"circuit" mapstructure:"circuit"`
	// Fallback guesses contacts locally for fields the API left empty.
	Fallback bool `yaml:"fallback" mapstructure:"fallback"`
}

// Timeout returns TimeoutSecs as a duration.
func (c EnrichConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RetryConfig configures retries of transient lookup failures.
type RetryConfig struct {
	MaxAttempts      int `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs int `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
}

// CircuitConfig configures the lookup circuit breaker.
type CircuitConfig struct {
	FailureThreshold int `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	ResetTimeoutSecs int `yaml:"reset_timeout_secs" mapstructure:"reset_timeout_secs"`
}

// ExportConfig configures output files.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

var (
	validStrategies = []string{"coverage", "length_coverage", "token_set"}
	validFormats    = []string{"csv", "json", "xlsx"}
	validLogFormats = []string{"json", "console"}
)

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("dedup.strategy", "length_coverage")
	v.SetDefault("dedup.threshold", 0.85)
	v.SetDefault("enrich.base_url", "")
	v.SetDefault("enrich.api_key", "")
	v.SetDefault("enrich.concurrency", 5)
	v.SetDefault("enrich.rate_per_sec", 10)
	v.SetDefault("enrich.timeout_secs", 15)
	v.SetDefault("enrich.retry.max_attempts", 3)
	v.SetDefault("enrich.retry.initial_backoff_ms", 500)
	v.SetDefault("enrich.circuit.failure_threshold", 5)
	v.SetDefault("enrich.circuit.reset_timeout_secs", 30)
	v.SetDefault("enrich.fallback", true)
	v.SetDefault("export.format", "csv")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []string

	if !oneOf(c.Log.Format, validLogFormats) {
		errs = append(errs, fmt.Sprintf("log.format must be one of %v, got %q", validLogFormats, c.Log.Format))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if !oneOf(c.Dedup.Strategy, validStrategies) {
		errs = append(errs, fmt.Sprintf("dedup.strategy must be one of %v, got %q", validStrategies, c.Dedup.Strategy))
	}
	// Matching is strict, so 1.0 would never match anything.
	if c.Dedup.Threshold <= 0 || c.Dedup.Threshold >= 1 {
		errs = append(errs, fmt.Sprintf("dedup.threshold must be in (0, 1), got %g", c.Dedup.Threshold))
	}
	if c.Enrich.Concurrency <= 0 {
		errs = append(errs, "enrich.concurrency must be > 0")
	}
	if c.Enrich.RatePerSec <= 0 {
		errs = append(errs, "enrich.rate_per_sec must be > 0")
	}
	if c.Enrich.TimeoutSecs <= 0 {
		errs = append(errs, "enrich.timeout_secs must be > 0")
	}
	if !oneOf(c.Export.Format, validFormats) {
		errs = append(errs, fmt.Sprintf("export.format must be one of %v, got %q", validFormats, c.Export.Format))
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
