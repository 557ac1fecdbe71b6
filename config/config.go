// Package config loads cdagen settings from the environment, an optional
// .env file and an optional config file.
//
// Environment variables use the CDAGEN_ prefix, e.g. CDAGEN_LOG_LEVEL or
// CDAGEN_MAX_ERRORS. A config file, when given, may be any format viper
// understands (yaml, json, toml, env). Environment variables win over the
// file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/pkg/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CDAGEN"

// Keys.
const (
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyLogFile      = "log_file"
	KeyOutputDir    = "output_dir"
	KeySeed         = "seed"
	KeyStrict       = "strict"
	KeyMaxErrors    = "max_errors"
	KeyWorkers      = "workers"
	KeyPhaseTimeout = "phase_timeout"
	KeyNarrative    = "narrative"
	KeyTerminology  = "terminology"
	KeyConstraints  = "constraints"
	KeyIdentifiers  = "identifiers"
)

// Config is the resolved tool configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string

	OutputDir string
	Seed      int64

	Strict       bool
	MaxErrors    int
	Workers      int
	PhaseTimeout time.Duration
	Narrative    bool

	Terminology bool
	Constraints bool
	Identifiers bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOutputDir, "out")
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyMaxErrors, 0)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyPhaseTimeout, "0s")
	v.SetDefault(KeyNarrative, true)
	v.SetDefault(KeyTerminology, true)
	v.SetDefault(KeyConstraints, true)
	v.SetDefault(KeyIdentifiers, true)
}

// Load reads .env from the working directory if present, then the file at
// path (skipped when empty), then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LogFile:      v.GetString(KeyLogFile),
		OutputDir:    v.GetString(KeyOutputDir),
		Seed:         v.GetInt64(KeySeed),
		Strict:       v.GetBool(KeyStrict),
		MaxErrors:    v.GetInt(KeyMaxErrors),
		Workers:      v.GetInt(KeyWorkers),
		PhaseTimeout: v.GetDuration(KeyPhaseTimeout),
		Narrative:    v.GetBool(KeyNarrative),
		Terminology:  v.GetBool(KeyTerminology),
		Constraints:  v.GetBool(KeyConstraints),
		Identifiers:  v.GetBool(KeyIdentifiers),
	}
	if cfg.MaxErrors < 0 {
		return nil, errors.Errorf("%s must not be negative, got %d", KeyMaxErrors, cfg.MaxErrors)
	}
	if cfg.Workers < 0 {
		return nil, errors.Errorf("%s must not be negative, got %d", KeyWorkers, cfg.Workers)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return nil, errors.Errorf("%s must be text or json, got %q", KeyLogFormat, cfg.LogFormat)
	}
	return cfg, nil
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}

// Options converts the configuration into generator options.
func (c *Config) Options() []cda.Option {
	opts := []cda.Option{
		cda.WithTerminology(c.Terminology),
		cda.WithConstraints(c.Constraints),
		cda.WithIdentifierChecks(c.Identifiers),
		cda.WithStrictMode(c.Strict),
		cda.WithMaxErrors(c.MaxErrors),
		cda.WithNarrative(c.Narrative),
	}
	if c.Workers > 0 {
		opts = append(opts, cda.WithWorkerCount(c.Workers))
	}
	if c.PhaseTimeout > 0 {
		opts = append(opts, cda.WithPhaseTimeout(c.PhaseTimeout))
	}
	return opts
}
