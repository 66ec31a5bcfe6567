// Package config loads LambdaDB runtime settings.
//
// Settings come from three layers, later ones winning:
//
//   - Built-in defaults (Default)
//   - An optional YAML file
//   - LAMBDADB_* environment variables, with dots in the key replaced by
//     underscores (LAMBDADB_LOG_LEVEL overrides log.level)
//
// Example:
//
//	cfg, err := config.Load("lambdadb.yaml")
//	if err != nil {
//		return err
//	}
//	if err := logger.Init(cfg.Log.LoggerConfig()); err != nil {
//		return err
//	}
package config

import (
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/logger"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LAMBDADB"

// Config is the complete runtime configuration.
type Config struct {
	// Log controls diagnostic output on stderr
	Log LogConfig `mapstructure:"log" yaml:"log"`
	// Render selects how batches are printed
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	// Metrics enables the prometheus collectors
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	// Tracing enables span export
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Encoding is json or console
	Encoding    string `mapstructure:"encoding" yaml:"encoding"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// RenderConfig contains rendering settings.
type RenderConfig struct {
	// Format is text or json
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Enabled records assembly metrics and dumps them after a run
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// TracingConfig contains tracing settings.
type TracingConfig struct {
	// Enabled exports assembly spans to stderr
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
		Render: RenderConfig{
			Format: "text",
		},
	}
}

var (
	validLevels    = []string{"debug", "info", "warn", "error"}
	validEncodings = []string{"json", "console"}
	validFormats   = []string{"text", "json"}
)

// Normalize lower-cases the enumerated settings so they compare
// case-insensitively.
func (c *Config) Normalize() {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Encoding = strings.ToLower(c.Log.Encoding)
	c.Render.Format = strings.ToLower(c.Render.Format)
}

// Validate checks that every enumerated setting holds a known value. Call
// Normalize first to accept mixed-case input.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Log.Level) {
		return invalid("log.level", c.Log.Level, validLevels)
	}
	if !slices.Contains(validEncodings, c.Log.Encoding) {
		return invalid("log.encoding", c.Log.Encoding, validEncodings)
	}
	if !slices.Contains(validFormats, c.Render.Format) {
		return invalid("render.format", c.Render.Format, validFormats)
	}
	return nil
}

// LoggerConfig converts the log section for logger.New.
func (l LogConfig) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = l.Level
	cfg.Encoding = l.Encoding
	cfg.Development = l.Development
	return cfg
}

// Load reads the configuration at path, or only defaults and environment
// overrides when path is empty. The result is normalized and validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read config").
				WithDetail("path", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "unmarshal config")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// the file does not mention.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.encoding", d.Log.Encoding)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
}

func invalid(key, value string, allowed []string) error {
	return errors.Newf(errors.ErrorTypeConfig, "%s must be one of %s, got %q",
		key, strings.Join(allowed, ", "), value).
		WithDetail(errors.DetailField, key).
		WithDetail(errors.DetailActual, value)
}
