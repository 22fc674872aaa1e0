// Package config defines all configuration structures for the NucleoBond
// engine.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// EngineConfig holds the hydrogen-bond engine tunables.
type EngineConfig struct {
	// MaxDistance is the hard Ångström cutoff applied to candidate
	// donor-acceptor distances.  Typical values are 3.5–4.0.
	MaxDistance float64 `mapstructure:"max_distance"`

	// MinAlignment is the hard [0,1] cutoff applied to candidate alignment
	// scores.  Typical value 0.3.
	MinAlignment float64 `mapstructure:"min_alignment"`

	// LegacyCompatible selects the static reference capacity table instead
	// of live geometric classification.  It exists solely to permit
	// byte-for-byte comparison against the independent reference tool.
	LegacyCompatible bool `mapstructure:"legacy_compatible"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.  Library consumers that embed
// the engine construct EngineConfig literals directly; hosts that load from
// files or the environment go through loader.go.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated EngineConfig.
// Out-of-range bounds are rejected, never clamped: a negative distance or an
// alignment threshold outside [0,1] always indicates caller error.
func (c *EngineConfig) Validate() error {
	if c.MaxDistance <= 0 {
		return fmt.Errorf("config: engine.max_distance must be > 0, got %g", c.MaxDistance)
	}
	if c.MinAlignment < 0 || c.MinAlignment > 1 {
		return fmt.Errorf("config: engine.min_alignment %g is out of range [0, 1]", c.MinAlignment)
	}
	return nil
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to construct an engine.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
