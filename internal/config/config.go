// Package config loads simplecalc settings from .env, an optional YAML file
// and SIMPLECALC_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"simplecalc/internal/observability"
)

const envPrefix = "SIMPLECALC"

// Config holds every runtime setting.
type Config struct {
	Addr            string          `mapstructure:"addr"`
	ServiceName     string          `mapstructure:"service_name"`
	Log             LogConfig       `mapstructure:"log"`
	Telemetry       TelemetryConfig `mapstructure:"telemetry"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`

	// File is the config file that was read, or "" when none was found.
	File string `mapstructure:"-"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit YAML path. When empty, ./simplecalc.yaml is
	// read if it exists.
	ConfigFile string
	// DotEnv is the .env path; empty means ".env".
	DotEnv string
}

// NewViper returns a viper instance with defaults, env binding and the
// config file search path set up, without reading anything.
func NewViper(opts Options) *viper.Viper {
	v := viper.New()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("simplecalc")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("service_name", observability.ServiceName())
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("shutdown_timeout", 5*time.Second)

	return v
}

// Load reads .env, the config file and the environment into a Config and
// validates it. A missing default config file is not an error; a missing
// explicit one is.
func Load(opts Options) (*Config, error) {
	dotEnv := opts.DotEnv
	if dotEnv == "" {
		dotEnv = ".env"
	}
	if err := loadDotEnv(dotEnv); err != nil {
		return nil, err
	}

	v := NewViper(opts)
	return Read(v, opts.ConfigFile != "")
}

// Read reads v's config file into a validated Config. requireFile turns a
// missing file into an error.
func Read(v *viper.Viper, requireFile bool) (*Config, error) {
	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if requireFile || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		fileRead = false
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if fileRead {
		cfg.File = v.ConfigFileUsed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service_name must not be empty"))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
