// Package config provides configuration loading, defaults, and validation for
// the NucleoBond engine.
package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultMaxDistance is the donor-acceptor distance cutoff in Ångström.
	DefaultMaxDistance = 4.0

	// DefaultMinAlignment is the alignment-score cutoff.
	DefaultMinAlignment = 0.3

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.
//
// MinAlignment is a float where 0 is also a meaningful explicit value; as
// with the rest of the zero-value fields it cannot be distinguished from
// "not set", and 0 is defaulted.  Callers that genuinely want an
// unconstrained alignment filter should set a tiny positive epsilon.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Engine ────────────────────────────────────────────────────────────────
	if cfg.Engine.MaxDistance == 0 {
		cfg.Engine.MaxDistance = DefaultMaxDistance
	}
	if cfg.Engine.MinAlignment == 0 {
		cfg.Engine.MinAlignment = DefaultMinAlignment
	}
	// LegacyCompatible defaults to false: geometric classification.

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
