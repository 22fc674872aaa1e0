package pairing

import (
	"time"

	"github.com/turtacn/NucleoBond/internal/config"
	"github.com/turtacn/NucleoBond/internal/domain/capacity"
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/NucleoBond/pkg/errors"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

// Engine is the hydrogen-bond optimization engine: residues go in once, and
// OptimizePair answers pure, repeatable pair queries.  The engine is
// synchronous and performs no I/O; parallel batch drivers run one engine per
// worker and share nothing.
type Engine struct {
	cfg      config.EngineConfig
	provider capacity.Provider
	registry *Registry
	log      logging.Logger
	metrics  *prometheus.EngineMetrics
}

// Option customizes engine construction.
type Option func(*Engine)

// WithLogger injects a structured logger.  Default: no-op.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics injects the engine metrics bundle.  Default: no-op.
func WithMetrics(m *prometheus.EngineMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithProvider overrides the capacity provider selected by the
// legacy_compatible flag.  Intended for tests and calibration tooling.
func WithProvider(p capacity.Provider) Option {
	return func(e *Engine) { e.provider = p }
}

// NewEngine validates cfg and constructs an engine.  Invalid configuration
// (non-positive distance cutoff, alignment threshold outside [0,1]) fails
// here, immediately, and is never clamped.  The legacy_compatible flag
// selects the static reference table over geometric classification; the two
// are interchangeable Provider implementations, and no algorithm below this
// point branches on the mode.
func NewEngine(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid engine configuration")
	}

	e := &Engine{
		cfg: cfg,
		log: logging.NewNop(),
	}
	if cfg.LegacyCompatible {
		e.provider = capacity.NewStaticTable()
	} else {
		e.provider = capacity.NewGeometricClassifier()
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = prometheus.NewNopEngineMetrics()
	}
	e.registry = NewRegistry(e.provider)

	e.log.Info("engine constructed",
		logging.Float64("max_distance", cfg.MaxDistance),
		logging.Float64("min_alignment", cfg.MinAlignment),
		logging.String("capacity_mode", e.provider.Mode()),
	)
	return e, nil
}

// Provider exposes the active capacity provider mode for diagnostics.
func (e *Engine) Provider() capacity.Provider { return e.provider }

// RegisterResidue caches the residue and its per-atom capacities.  Idempotent:
// registering the same residue again recomputes the same cache.
func (e *Engine) RegisterResidue(res *structure.Residue) error {
	known := false
	if res != nil {
		_, err := e.registry.Lookup(res.ID())
		known = err == nil
	}

	if err := e.registry.Register(res); err != nil {
		return err
	}
	if !known {
		e.metrics.RegisteredResidues.WithLabelValues().Inc()
	}

	// Surface silently-zero heavy atoms once, at registration: a nitrogen or
	// oxygen that classified to zero capacity usually means sparse geometry.
	for _, name := range res.AtomNames() {
		a, _ := res.Atom(name)
		if (a.Element == chem.Nitrogen || a.Element == chem.Oxygen) &&
			e.registry.CachedCapacity(res.ID(), name).IsZero() &&
			len(res.HeavyNeighbors(name)) == 0 {
			e.log.Warn("degenerate geometry, atom classified to zero capacity",
				logging.String("residue", res.ID()),
				logging.String("atom", name),
				logging.String("reason", errors.ErrCodeGeometryDegenerate.String()),
			)
		}
	}
	return nil
}

// Registry exposes the underlying registry for diagnostics and tests.
func (e *Engine) Registry() *Registry { return e.registry }

// OptimizePair enumerates, filters, sorts and greedily resolves hydrogen-bond
// candidates between two registered residues.  The result is a pure function
// of the registered geometry and the configuration: repeated calls return
// identical ordered output, and no per-query state survives the call.
//
// An unregistered id yields a RES_001 error; zero surviving candidates is a
// valid empty result, not an error.  The two ids must differ: a residue
// paired against itself would duplicate every candidate and let dual-role
// atoms bond to themselves at zero distance, so the query is rejected up
// front.
func (e *Engine) OptimizePair(idA, idB string) ([]chem.HBond, error) {
	start := time.Now()

	if idA == idB {
		e.metrics.PairQueriesTotal.WithLabelValues(prometheus.StatusInvalid).Inc()
		return nil, errors.New(errors.ErrCodeValidation,
			"pair query requires two distinct residues").WithDetail("id=" + idA)
	}

	a, err := e.registry.Lookup(idA)
	if err != nil {
		e.metrics.PairQueriesTotal.WithLabelValues(prometheus.StatusNotFound).Inc()
		return nil, err
	}
	b, err := e.registry.Lookup(idB)
	if err != nil {
		e.metrics.PairQueriesTotal.WithLabelValues(prometheus.StatusNotFound).Inc()
		return nil, err
	}

	reject := func(reason string) {
		e.metrics.CandidateRejects.WithLabelValues(reason).Inc()
		e.log.Debug("candidate rejected",
			logging.String("pair", idA+"|"+idB),
			logging.String("reason", reason),
		)
	}

	cands := generateCandidates(a, b, e.cfg.MaxDistance, e.cfg.MinAlignment, reject)
	e.metrics.CandidatesTotal.WithLabelValues().Add(float64(len(cands)))

	bonds := assignSlots(cands, a, b, reject)
	e.metrics.BondsSelectedTotal.WithLabelValues().Add(float64(len(bonds)))
	e.metrics.PairQueriesTotal.WithLabelValues(prometheus.StatusOK).Inc()
	e.metrics.PairQueryDuration.WithLabelValues().Observe(time.Since(start).Seconds())

	e.log.Debug("pair optimized",
		logging.String("a", idA),
		logging.String("b", idB),
		logging.Int("candidates", len(cands)),
		logging.Int("bonds", len(bonds)),
	)
	return bonds, nil
}
