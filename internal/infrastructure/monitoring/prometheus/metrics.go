package prometheus

// Candidate rejection reason labels.
const (
	RejectDistance  = "distance"
	RejectAlignment = "alignment"
	RejectCapacity  = "capacity"
)

// Pair query status labels.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
)

// EngineMetrics holds all hydrogen-bond engine metrics.
type EngineMetrics struct {
	PairQueriesTotal   CounterVec // status: ok | not_found | invalid
	CandidatesTotal    CounterVec
	CandidateRejects   CounterVec // reason: distance | alignment | capacity
	BondsSelectedTotal CounterVec
	PairQueryDuration  HistogramVec
	RegisteredResidues GaugeVec
}

// DefaultQueryDurationBuckets covers the engine's microsecond-scale queries.
var DefaultQueryDurationBuckets = []float64{.000001, .00001, .0001, .001, .01, .1}

// NewEngineMetrics registers all engine metrics on the collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	return &EngineMetrics{
		PairQueriesTotal:   collector.RegisterCounter("pair_queries_total", "Pair optimization queries", "status"),
		CandidatesTotal:    collector.RegisterCounter("candidates_generated_total", "Candidate hydrogen bonds generated"),
		CandidateRejects:   collector.RegisterCounter("candidates_rejected_total", "Candidate hydrogen bonds rejected", "reason"),
		BondsSelectedTotal: collector.RegisterCounter("bonds_selected_total", "Hydrogen bonds accepted by the solver"),
		PairQueryDuration:  collector.RegisterHistogram("pair_query_duration_seconds", "Pair optimization duration", DefaultQueryDurationBuckets),
		RegisteredResidues: collector.RegisterGauge("registered_residues", "Residues held by the registry"),
	}
}

// NewNopEngineMetrics returns a bundle that records nothing; the engine
// default when no collector is injected.
func NewNopEngineMetrics() *EngineMetrics {
	return NewEngineMetrics(NewNopCollector())
}
