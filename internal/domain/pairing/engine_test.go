package pairing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/NucleoBond/internal/config"
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/internal/testutil"
	"github.com/turtacn/NucleoBond/pkg/errors"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

func legacyConfig() config.EngineConfig {
	return config.EngineConfig{
		MaxDistance:      4.0,
		MinAlignment:     0.3,
		LegacyCompatible: true,
	}
}

// wcGuanine and wcCytosine lay out a flattened Watson-Crick edge: three
// donor/acceptor atoms per base aligned across the x axis, each with its
// substituent carbons placed so every hydrogen and lone-pair vector points
// straight at its partner.
func wcGuanine(t *testing.T) *structure.Residue {
	return mustResidue(t, "A.G.1", 'G', []structure.Atom{
		atomAt("N1", 0, 0, 0),
		atomAt("C2", -0.7, -1.2, 0),
		atomAt("C6", -0.7, 1.2, 0),
		atomAt("N2", 0, -3.4, 0),
		atomAt("C8", -1.35, -3.4, 0),
		atomAt("O6", 0, 3.4, 0),
		atomAt("C4", -1.23, 3.4, 0),
	})
}

func wcCytosine(t *testing.T) *structure.Residue {
	return mustResidue(t, "A.C.2", 'C', []structure.Atom{
		atomAt("N3", 2.9, 0, 0),
		atomAt("C2", 3.6, -1.2, 0),
		atomAt("C4", 3.6, 1.2, 0),
		atomAt("O2", 2.86, -3.4, 0),
		atomAt("C5", 4.26, -3.4, 0),
		atomAt("N4", 2.95, 3.4, 0),
		atomAt("C6", 4.30, 3.4, 0),
	})
}

func newWCEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(legacyConfig())
	require.NoError(t, err)
	require.NoError(t, eng.RegisterResidue(wcGuanine(t)))
	require.NoError(t, eng.RegisterResidue(wcCytosine(t)))
	return eng
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	cases := []config.EngineConfig{
		{MaxDistance: 0, MinAlignment: 0.3},
		{MaxDistance: -1, MinAlignment: 0.3},
		{MaxDistance: 4, MinAlignment: -0.1},
		{MaxDistance: 4, MinAlignment: 1.5},
	}
	for _, cfg := range cases {
		_, err := NewEngine(cfg)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
	}
}

func TestNewEngine_ProviderSelection(t *testing.T) {
	legacy, err := NewEngine(legacyConfig())
	require.NoError(t, err)
	assert.Equal(t, "static", legacy.Provider().Mode())

	cfg := legacyConfig()
	cfg.LegacyCompatible = false
	geo, err := NewEngine(cfg)
	require.NoError(t, err)
	assert.Equal(t, "geometric", geo.Provider().Mode())
}

func TestOptimizePair_UnregisteredResidue(t *testing.T) {
	eng := newWCEngine(t)

	_, err := eng.OptimizePair("A.G.1", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResidueNotFound))

	_, err = eng.OptimizePair("nope", "A.C.2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResidueNotFound))
}

func TestOptimizePair_WatsonCrickGC(t *testing.T) {
	eng := newWCEngine(t)

	bonds, err := eng.OptimizePair("A.G.1", "A.C.2")
	require.NoError(t, err)
	require.Len(t, bonds, 3)

	// All three bonds align perfectly, so the sort falls through to distance.
	assert.Equal(t, "N2", bonds[0].DonorAtom)
	assert.Equal(t, "O2", bonds[0].AcceptorAtom)
	assert.Equal(t, "N1", bonds[1].DonorAtom)
	assert.Equal(t, "N3", bonds[1].AcceptorAtom)
	assert.Equal(t, "N4", bonds[2].DonorAtom)
	assert.Equal(t, "O6", bonds[2].AcceptorAtom)

	for _, b := range bonds {
		assert.Equal(t, chem.ContextBaseBase, b.Context)
		assert.InDelta(t, 1.0, b.Alignment, 1e-9)
		assert.LessOrEqual(t, b.Distance, 4.0)
		assert.Equal(t, 0, b.DonorSlot)
		assert.Equal(t, 0, b.AcceptorSlot)
	}

	assert.Equal(t, "A.C.2", bonds[2].DonorResidue)
	assert.Equal(t, "A.G.1", bonds[2].AcceptorResidue)
}

func TestOptimizePair_Deterministic(t *testing.T) {
	eng := newWCEngine(t)

	first, err := eng.OptimizePair("A.G.1", "A.C.2")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := eng.OptimizePair("A.G.1", "A.C.2")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestOptimizePair_ArgumentOrderIrrelevant(t *testing.T) {
	eng := newWCEngine(t)

	ab, err := eng.OptimizePair("A.G.1", "A.C.2")
	require.NoError(t, err)
	ba, err := eng.OptimizePair("A.C.2", "A.G.1")
	require.NoError(t, err)

	// Donor/acceptor roles are chemical, not positional: swapping the
	// arguments returns the same bonds in the same order.
	assert.Equal(t, ab, ba)
}

func TestOptimizePair_SameResidueRejected(t *testing.T) {
	eng, err := NewEngine(legacyConfig())
	require.NoError(t, err)

	// A 2'-hydroxyl is donor and acceptor at once; paired against its own
	// residue it would bond to itself at zero distance with a degenerate
	// axis scoring a neutral 1.0.  The query must fail validation instead.
	require.NoError(t, eng.RegisterResidue(mustResidue(t, "A.G.1", 'G',
		[]structure.Atom{atomAt("O2'", 0, 0, 0), atomAt("N2", 3.0, 0, 0)})))

	bonds, err := eng.OptimizePair("A.G.1", "A.G.1")
	require.Error(t, err)
	assert.Nil(t, bonds)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	// Still rejected even when the id was never registered; validation runs
	// before lookup.
	_, err = eng.OptimizePair("nope", "nope")
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestOptimizePair_NoCandidatesIsEmptyNotError(t *testing.T) {
	eng, err := NewEngine(legacyConfig())
	require.NoError(t, err)

	require.NoError(t, eng.RegisterResidue(mustResidue(t, "far.1", 'G',
		[]structure.Atom{atomAt("N2", 0, 0, 0)})))
	require.NoError(t, eng.RegisterResidue(mustResidue(t, "far.2", 'U',
		[]structure.Atom{atomAt("O2", 50, 0, 0)})))

	bonds, err := eng.OptimizePair("far.1", "far.2")
	require.NoError(t, err)
	assert.Empty(t, bonds)
}

func TestOptimizePair_GeometricMode(t *testing.T) {
	cfg := legacyConfig()
	cfg.LegacyCompatible = false
	eng, err := NewEngine(cfg)
	require.NoError(t, err)

	// A 2'-hydroxyl (one long C-O bond) donating into a carbonyl oxygen
	// (one short C=O bond), both classified from geometry alone.
	donor := mustResidue(t, "r.1", 'G', []structure.Atom{
		atomAt("O2'", 0, 0, 0),
		atomAt("C2'", -1.41, 0, 0),
	})
	acceptor := mustResidue(t, "r.2", 'U', []structure.Atom{
		atomAt("O4", 2.9, 0, 0),
		atomAt("C4", 4.13, 0, 0),
	})
	require.NoError(t, eng.RegisterResidue(donor))
	require.NoError(t, eng.RegisterResidue(acceptor))

	assert.Equal(t, 1, eng.Registry().CachedCapacity("r.1", "O2'").Donor())
	assert.Equal(t, 0, eng.Registry().CachedCapacity("r.2", "O4").Donor())
	assert.Equal(t, 2, eng.Registry().CachedCapacity("r.2", "O4").Acceptor())

	bonds, err := eng.OptimizePair("r.1", "r.2")
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	assert.Equal(t, "O2'", bonds[0].DonorAtom)
	assert.Equal(t, "O4", bonds[0].AcceptorAtom)
	assert.Equal(t, chem.ContextBaseSugar, bonds[0].Context)
}

func TestRegisterResidue_WarnsOnDegenerateGeometry(t *testing.T) {
	cfg := legacyConfig()
	cfg.LegacyCompatible = false
	log := testutil.NewMockLogger()
	eng, err := NewEngine(cfg, WithLogger(log))
	require.NoError(t, err)

	// A lone nitrogen with no neighbors classifies to zero capacity under
	// geometric inference; registration succeeds but flags it.
	require.NoError(t, eng.RegisterResidue(mustResidue(t, "bare.1", 'G',
		[]structure.Atom{atomAt("N1", 0, 0, 0)})))
	assert.True(t, log.HasEntry("warn", "degenerate geometry"))
	assert.Equal(t, "N1", log.FieldValue("warn", "degenerate geometry", "atom"))
}

func TestRegisterResidue_Idempotent(t *testing.T) {
	eng := newWCEngine(t)

	before, err := eng.OptimizePair("A.G.1", "A.C.2")
	require.NoError(t, err)

	require.NoError(t, eng.RegisterResidue(wcGuanine(t)))
	after, err := eng.OptimizePair("A.G.1", "A.C.2")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 2, eng.Registry().Len())
}

// TestOptimizePair_CapacityInvariant fuzzes random residue geometries and
// checks the structural invariants that must hold for any input: no atom ever
// exceeds its cached per-role capacity, every bond respects both thresholds,
// and slot indices are unique within their pool.
func TestOptimizePair_CapacityInvariant(t *testing.T) {
	names := []string{
		"N1", "N2", "N3", "N4", "N6", "N7",
		"O2", "O4", "O6", "O2'", "O3'", "OP1", "OP2",
		"C2", "C4", "C5", "C6",
	}
	bases := []byte{'A', 'G', 'C', 'U'}
	rng := rand.New(rand.NewSource(1))

	randomResidue := func(t *testing.T, id string) *structure.Residue {
		n := 3 + rng.Intn(8)
		atoms := make([]structure.Atom, 0, n)
		for i := 0; i < n; i++ {
			name := names[rng.Intn(len(names))]
			atoms = append(atoms, atomAt(name,
				rng.Float64()*6, rng.Float64()*6, rng.Float64()*6))
		}
		return mustResidue(t, id, bases[rng.Intn(len(bases))], atoms)
	}

	for trial := 0; trial < 40; trial++ {
		eng, err := NewEngine(legacyConfig())
		require.NoError(t, err)

		a := randomResidue(t, fmt.Sprintf("a.%d", trial))
		b := randomResidue(t, fmt.Sprintf("b.%d", trial))
		require.NoError(t, eng.RegisterResidue(a))
		require.NoError(t, eng.RegisterResidue(b))

		bonds, err := eng.OptimizePair(a.ID(), b.ID())
		require.NoError(t, err)

		used := map[slotKey]int{}
		slots := map[slotKey]map[int]bool{}
		record := func(res, atom, role string, slot int) {
			k := slotKey{res: res, atom: atom, role: role}
			used[k]++
			if slots[k] == nil {
				slots[k] = map[int]bool{}
			}
			assert.False(t, slots[k][slot], "trial %d: duplicate slot %d for %v", trial, slot, k)
			slots[k][slot] = true
			assert.GreaterOrEqual(t, slot, 0)
			assert.Less(t, slot, chem.MaxSlots)
		}

		for _, bond := range bonds {
			assert.LessOrEqual(t, bond.Distance, 4.0, "trial %d", trial)
			assert.GreaterOrEqual(t, bond.Alignment, 0.3, "trial %d", trial)
			assert.LessOrEqual(t, bond.Alignment, 1.0+1e-9, "trial %d", trial)
			assert.True(t, bond.Context.IsValid(), "trial %d", trial)
			record(bond.DonorResidue, bond.DonorAtom, roleDonor, bond.DonorSlot)
			record(bond.AcceptorResidue, bond.AcceptorAtom, roleAcceptor, bond.AcceptorSlot)
		}

		for k, n := range used {
			c := eng.Registry().CachedCapacity(k.res, k.atom)
			limit := c.Donor()
			if k.role == roleAcceptor {
				limit = c.Acceptor()
			}
			assert.LessOrEqual(t, n, limit, "trial %d: pool %v over capacity", trial, k)
		}

		again, err := eng.OptimizePair(a.ID(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, bonds, again, "trial %d: nondeterministic output", trial)
	}
}
