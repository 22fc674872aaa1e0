package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/turtacn/NucleoBond/pkg/errors"
)

// envPrefix is the environment variable prefix used by all engine settings.
const envPrefix = "NUCLEOBOND"

// newViper builds a pre-configured Viper instance with the engine's standard
// settings: YAML file type, NUCLEOBOND_ env prefix, automatic env binding,
// and a key replacer that maps "." → "_" so that nested keys like
// "engine.max_distance" resolve to "NUCLEOBOND_ENGINE_MAX_DISTANCE".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key with its zero value so that env-only loading sees
	// them; viper resolves env overrides only for keys it knows about.
	// Real defaulting happens in ApplyDefaults after unmarshalling.
	v.SetDefault("engine.max_distance", 0.0)
	v.SetDefault("engine.min_alignment", 0.0)
	v.SetDefault("engine.legacy_compatible", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")

	return v
}

// Load reads the YAML file at configPath, merges any NUCLEOBOND_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigReadFail,
			"failed to read config file").WithDetail("path=" + configPath)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from NUCLEOBOND_* environment
// variables, with no config file required.
//
// Environment variable naming convention:
//
//	NUCLEOBOND_<SECTION>_<FIELD>   e.g.  NUCLEOBOND_ENGINE_MAX_DISTANCE
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file — rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigReadFail,
			"failed to unmarshal configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid,
			"configuration validation failed")
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Only safe-to-reload
// settings (log level) should be applied at runtime; the engine's geometric
// thresholds are fixed per engine instance so that query results stay
// reproducible for the instance's lifetime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// Config change produced an invalid config; skip the callback to
			// prevent the host from entering a broken state.
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
