package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CASENORM_LOG_LEVEL.
const EnvPrefix = "CASENORM"

// Configuration keys shared by flags, the config file and the environment.
const (
	KeyInput        = "normalize.input"
	KeyOutput       = "normalize.output"
	KeySentenceCase = "normalize.sentence_case"
	KeyAcronyms     = "normalize.acronyms"
	KeyTitlecase    = "normalize.titlecase"
	KeyGzip         = "normalize.gzip"
	KeyCacheSize    = "normalize.cache_size"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

var (
	// ErrInvalidCacheSize reports a negative line cache size.
	ErrInvalidCacheSize = errors.New("config: cache size must not be negative")
	// ErrInvalidLogFormat reports a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: log format must be text or json")
)

// Config holds all configuration for the application
type Config struct {
	Normalize NormalizeConfig `mapstructure:"normalize"`
	Log       LogConfig       `mapstructure:"log"`
}

// NormalizeConfig holds corpus normalization settings
type NormalizeConfig struct {
	Input        string   `mapstructure:"input"`
	Output       string   `mapstructure:"output"`
	SentenceCase bool     `mapstructure:"sentence_case"`
	Acronyms     []string `mapstructure:"acronyms"`
	Titlecase    []string `mapstructure:"titlecase"`
	Gzip         bool     `mapstructure:"gzip"`
	CacheSize    int      `mapstructure:"cache_size"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional config file, environment
// variables and any flags already bound to v, in increasing priority.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("casenorm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.Normalize.Acronyms = stringList(v, KeyAcronyms)
	config.Normalize.Titlecase = stringList(v, KeyTitlecase)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	if c.Normalize.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, c.Normalize.CacheSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}

// stringList reads a list key. Environment values arrive as a single string and are
// split on commas so that multi-word entries such as "new york" survive.
func stringList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		return strings.Split(raw, ",")
	}
	return v.GetStringSlice(key)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Normalize defaults
	v.SetDefault(KeyInput, "-")
	v.SetDefault(KeyOutput, "-")
	v.SetDefault(KeySentenceCase, false)
	v.SetDefault(KeyAcronyms, []string{})
	v.SetDefault(KeyTitlecase, []string{})
	v.SetDefault(KeyGzip, false)
	v.SetDefault(KeyCacheSize, 0)

	// Log defaults
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}
