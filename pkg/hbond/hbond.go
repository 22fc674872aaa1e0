// Package hbond is the public entry point of the library: it wraps the
// internal optimization engine behind a small surface that speaks plain
// values (atom records, residue ids, HBond results) so callers never touch
// internal packages.
package hbond

import (
	"net/http"

	"github.com/turtacn/NucleoBond/internal/config"
	"github.com/turtacn/NucleoBond/internal/domain/pairing"
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/NucleoBond/pkg/errors"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
	"github.com/turtacn/NucleoBond/pkg/types/geometry"
)

const Version = "0.1.0"

// Config is the public engine configuration.  Zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// MaxDistance is the donor-acceptor distance cutoff in angstroms.
	MaxDistance float64
	// MinAlignment is the minimum angular-favorability score in [0,1].
	MinAlignment float64
	// LegacyCompatible selects the static reference capacity table instead
	// of geometric classification.
	LegacyCompatible bool
}

// DefaultConfig returns the standard cutoffs.
func DefaultConfig() Config {
	var cfg config.Config
	config.ApplyDefaults(&cfg)
	return Config{
		MaxDistance:      cfg.Engine.MaxDistance,
		MinAlignment:     cfg.Engine.MinAlignment,
		LegacyCompatible: cfg.Engine.LegacyCompatible,
	}
}

// AtomRecord is one heavy atom (or explicit hydrogen) of a residue as the
// caller parsed it.  Coordinates are in angstroms.
type AtomRecord struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// Engine answers hydrogen-bond pair queries over registered residues.  It is
// not safe for concurrent registration; run one Engine per worker.
type Engine struct {
	inner   *pairing.Engine
	log     logging.Logger
	metrics prometheus.MetricsCollector
}

// New validates cfg and constructs an engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{log: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	engineOpts := []pairing.Option{pairing.WithLogger(e.log)}
	if e.metrics != nil {
		engineOpts = append(engineOpts,
			pairing.WithMetrics(prometheus.NewEngineMetrics(e.metrics)))
	}

	inner, err := pairing.NewEngine(config.EngineConfig{
		MaxDistance:      cfg.MaxDistance,
		MinAlignment:     cfg.MinAlignment,
		LegacyCompatible: cfg.LegacyCompatible,
	}, engineOpts...)
	if err != nil {
		return nil, err
	}
	e.inner = inner
	return e, nil
}

// RegisterResidue caches one residue and its inferred per-atom capacities.
// id must be unique per structure; base is the one-letter residue code;
// chainInternal marks residues with polymer neighbors on both sides, which
// strips donor capacity from chain-terminal backbone oxygens in legacy mode.
// Registering the same id again replaces the previous geometry.
func (e *Engine) RegisterResidue(id string, base byte, atoms []AtomRecord, chainInternal bool) error {
	converted := make([]structure.Atom, 0, len(atoms))
	for _, a := range atoms {
		converted = append(converted, structure.NewAtom(a.Name, geometry.Vec3{X: a.X, Y: a.Y, Z: a.Z}))
	}

	var opts []structure.ResidueOption
	if chainInternal {
		opts = append(opts, structure.ChainInternal())
	}
	res, err := structure.NewResidue(id, base, converted, opts...)
	if err != nil {
		return err
	}
	return e.inner.RegisterResidue(res)
}

// OptimizePair returns the accepted hydrogen bonds between two registered
// residues in the deterministic contract order.  A pair that cannot be
// resolved (unregistered id, or a residue queried against itself) is logged
// and returned as an error; an empty result is not an error.
func (e *Engine) OptimizePair(idA, idB string) ([]chem.HBond, error) {
	bonds, err := e.inner.OptimizePair(idA, idB)
	if err != nil {
		e.log.Warn("skipped pair",
			logging.String("a", idA),
			logging.String("b", idB),
			logging.String("code", errors.GetCode(err).String()),
			logging.Err(err),
		)
		return nil, err
	}
	return bonds, nil
}

// ResidueCount reports how many residues are registered.
func (e *Engine) ResidueCount() int { return e.inner.Registry().Len() }

// CapacityMode reports which capacity provider the engine runs on,
// "static" or "geometric".
func (e *Engine) CapacityMode() string { return e.inner.Provider().Mode() }

// MetricsHandler exposes the Prometheus scrape endpoint when the engine was
// built WithMetrics, nil otherwise.
func (e *Engine) MetricsHandler() http.Handler {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.Handler()
}

// Format renders a bond in the fixed-width report layout.
func Format(b chem.HBond) string { return b.String() }
