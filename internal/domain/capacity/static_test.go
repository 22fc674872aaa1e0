package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTable_ReferenceScenarios(t *testing.T) {
	table := NewStaticTable()

	tests := []struct {
		name     string
		base     byte
		atom     string
		donor    int
		acceptor int
	}{
		{"adenine_amino_N6", 'A', "N6", 2, 0},
		{"adenine_ring_N1", 'A', "N1", 0, 1},
		{"adenine_ring_N7", 'A', "N7", 0, 1},
		{"guanine_imino_N1", 'G', "N1", 1, 0},
		{"guanine_amino_N2", 'G', "N2", 2, 0},
		{"guanine_carbonyl_O6", 'G', "O6", 0, 2},
		{"cytosine_amino_N4", 'C', "N4", 2, 0},
		{"cytosine_carbonyl_O2", 'C', "O2", 0, 2},
		{"uracil_imino_N3", 'U', "N3", 1, 0},
		{"thymine_carbonyl_O4", 'T', "O4", 0, 2},
		{"ribose_hydroxyl_O2'", 'A', "O2'", 1, 2},
		{"ring_oxygen_O4'", 'G', "O4'", 0, 1},
		{"phosphate_OP1", 'C', "OP1", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustResidue(t, tt.base, atomAt(tt.atom, 0, 0, 0))
			c := table.Capacity(res, tt.atom)
			assert.Equal(t, tt.donor, c.Donor(), "donor")
			assert.Equal(t, tt.acceptor, c.Acceptor(), "acceptor")
		})
	}
}

func TestStaticTable_IgnoresCoordinates(t *testing.T) {
	// Legacy mode classifies by name only; geometry plays no role.
	table := NewStaticTable()
	res := mustResidue(t, 'G', atomAt("O6", 42, -7, 3.14))
	c := table.Capacity(res, "O6")
	assert.Equal(t, 0, c.Donor())
	assert.Equal(t, 2, c.Acceptor())
}

func TestStaticTable_NormalizesLegacyNames(t *testing.T) {
	table := NewStaticTable()
	res := mustResidue(t, 'A', atomAt("O2*", 0, 0, 0))

	c := table.Capacity(res, "O2*")
	assert.Equal(t, 1, c.Donor())

	res2 := mustResidue(t, 'A', atomAt("O1P", 0, 0, 0))
	c2 := table.Capacity(res2, "O1P")
	assert.Equal(t, 2, c2.Acceptor())
}

func TestStaticTable_UnknownKeysAreZero(t *testing.T) {
	table := NewStaticTable()
	res := mustResidue(t, 'A', atomAt("C5", 0, 0, 0))

	assert.True(t, table.Capacity(res, "C5").IsZero(), "carbon atoms are not tabulated")
	assert.True(t, table.Capacity(res, "N6X").IsZero(), "unknown atom name")

	resX := mustResidue(t, 'X', atomAt("N1", 0, 0, 0))
	assert.True(t, table.Capacity(resX, "N1").IsZero(), "untabulated base, geometry too sparse")
}

func TestStaticTable_UntabulatedBasesClassifyGeometrically(t *testing.T) {
	table := NewStaticTable()

	// Serine-like hydroxyl: no reference values exist for amino acids, so
	// legacy mode falls through to geometric classification.
	ser := mustResidue(t, 'S',
		atomAt("OG", 0, 0, 0),
		atomAt("CB", 1.41, 0, 0),
	)
	c := table.Capacity(ser, "OG")
	assert.Equal(t, 1, c.Donor())
	assert.Equal(t, 2, c.Acceptor())

	// Backbone carbonyl oxygen.
	gly := mustResidue(t, 'K', // no reference values for this base type
		atomAt("O", 0, 0, 0),
		atomAt("C", 1.23, 0, 0),
	)
	co := table.Capacity(gly, "O")
	assert.Equal(t, 0, co.Donor())
	assert.Equal(t, 2, co.Acceptor())
}

func TestStaticTable_TabulatedBasesStayStrict(t *testing.T) {
	// Adenine has no O6; carbonyl-like geometry must not sneak a capacity in
	// through the fallback, or legacy replays would drift from the reference.
	table := NewStaticTable()
	res := mustResidue(t, 'A',
		atomAt("O6", 0, 0, 0),
		atomAt("C6", 1.23, 0, 0),
	)
	assert.True(t, table.Capacity(res, "O6").IsZero())
}

func TestStaticTable_ChainTerminal(t *testing.T) {
	table := NewStaticTable()

	assert.True(t, table.ChainTerminal("O3'"))
	assert.True(t, table.ChainTerminal("O5'"))
	assert.True(t, table.ChainTerminal("OP3"))
	assert.True(t, table.ChainTerminal("O3*"), "legacy spelling normalizes")
	assert.False(t, table.ChainTerminal("O2'"))
	assert.False(t, table.ChainTerminal("OP1"))
	assert.False(t, table.ChainTerminal("N1"))
}

func TestStaticTable_Mode(t *testing.T) {
	assert.Equal(t, "static", NewStaticTable().Mode())
}
