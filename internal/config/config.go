// Package config loads server settings from .reliquary.yaml, RELIQUARY_*
// environment variables and command line flags.
package config

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	redisclient "github.com/KirkDiggler/reliquary-api/internal/redis"
)

const (
	// EnvPrefix is prepended to every environment variable
	EnvPrefix = "RELIQUARY"

	// FileName is the config file searched for in the working and home directories
	FileName = ".reliquary"
)

// Keys
const (
	KeyPort            = "port"
	KeyCatalogSource   = "catalog_source"
	KeyCatalogTimeout  = "catalog_timeout"
	KeyAssetBaseURL    = "asset_base_url"
	KeyAssetDir        = "asset_dir"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyTypeHints       = "type_hints"
	KeyRedisPoolSize   = "redis.pool_size"
	KeyRedisMaxRetries = "redis.max_retries"
	KeyRedisTLS        = "redis.tls"
	KeyShutdownTimeout = "shutdown_timeout"
)

const (
	defaultCatalogFile  = "reliquary.json"
	defaultGRPCPort     = 50051
	defaultShutdownWait = 30 * time.Second
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// RedisConfig tunes the client used for redis:// catalog sources and targets
type RedisConfig struct {
	PoolSize   int  `mapstructure:"pool_size"`
	MaxRetries int  `mapstructure:"max_retries"`
	TLS        bool `mapstructure:"tls"`
}

// Config holds all runtime configuration
type Config struct {
	Port            int               `mapstructure:"port"`
	CatalogSource   string            `mapstructure:"catalog_source"`
	CatalogTimeout  time.Duration     `mapstructure:"catalog_timeout"`
	AssetBaseURL    string            `mapstructure:"asset_base_url"`
	AssetDir        string            `mapstructure:"asset_dir"`
	LogLevel        string            `mapstructure:"log_level"`
	LogFormat       string            `mapstructure:"log_format"`
	TypeHints       map[string]string `mapstructure:"type_hints"`
	Redis           RedisConfig       `mapstructure:"redis"`
	ShutdownTimeout time.Duration     `mapstructure:"shutdown_timeout"`
}

// SetDefaults registers the built-in value of every key. Keys without a
// default are invisible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, defaultGRPCPort)
	v.SetDefault(KeyCatalogSource, defaultCatalogFile)
	v.SetDefault(KeyCatalogTimeout, 30*time.Second)
	v.SetDefault(KeyAssetBaseURL, "")
	v.SetDefault(KeyAssetDir, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyTypeHints, map[string]string{})
	v.SetDefault(KeyRedisPoolSize, 0)
	v.SetDefault(KeyRedisMaxRetries, 0)
	v.SetDefault(KeyRedisTLS, false)
	v.SetDefault(KeyShutdownTimeout, defaultShutdownWait)
}

// Init wires the config file and environment into v. A missing config file
// is fine unless cfgFile names one explicitly.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && stderrors.As(err, &notFound) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
			WithMeta("config_file", cfgFile)
	}

	slog.Debug("config file loaded", "config_file", v.ConfigFileUsed())
	return nil
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks ranges, enums and type hint values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRange(KeyPort, c.Port, 1, 65535, vb)
	errors.ValidateRequired(KeyCatalogSource, c.CatalogSource, vb)
	errors.ValidateEnum(KeyLogLevel, strings.ToLower(c.LogLevel), logLevels, vb)
	errors.ValidateEnum(KeyLogFormat, strings.ToLower(c.LogFormat), logFormats, vb)

	errors.ValidatePositive(KeyCatalogTimeout, c.CatalogTimeout, vb)
	errors.ValidatePositive(KeyShutdownTimeout, c.ShutdownTimeout, vb)
	for id, hint := range c.TypeHints {
		if !reliquary.ParseTypeChoice(hint).IsConcrete() {
			vb.Fieldf(KeyTypeHints, "effect %s: %q is not Standard, DepthOfNight or Both", id, hint)
		}
	}

	return vb.Build()
}

// Hints returns the parsed type hints keyed by effect id
func (c *Config) Hints() map[string]reliquary.TypeChoice {
	out := make(map[string]reliquary.TypeChoice, len(c.TypeHints))
	for id, hint := range c.TypeHints {
		out[strings.TrimSpace(id)] = reliquary.ParseTypeChoice(hint)
	}
	return out
}

// RedisOptions converts the redis section for the client wrapper
func (c *Config) RedisOptions() *redisclient.Options {
	return &redisclient.Options{
		PoolSize:   c.Redis.PoolSize,
		MaxRetries: c.Redis.MaxRetries,
		UseTLS:     c.Redis.TLS,
	}
}

// Level maps log_level to a slog level
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger described by log_level and log_format
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
