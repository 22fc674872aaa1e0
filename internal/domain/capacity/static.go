package capacity

import (
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

// StaticTable is the legacy-compatible Provider: a fixed lookup keyed by
// (base type, normalized atom name), built once and shared read-only across
// workers.  It replays the donor/acceptor counts the reference tool derived
// from explicit-hydrogen small-molecule files, so that legacy-compatibility
// runs compare byte-for-byte.  Unknown keys yield zero capacity.
type StaticTable struct {
	bases  map[byte]map[string]chem.Capacity
	shared map[string]chem.Capacity
	geo    *GeometricClassifier
}

// d/a keep the table literals readable.
func da(donor, acceptor int) chem.Capacity { return chem.MustCapacity(donor, acceptor) }

// NewStaticTable constructs the immutable reference table.
//
// Base-specific entries cover the five standard nucleotide bases; the shared
// entries cover the ribose/phosphate backbone common to all of them.
// Residues whose base type has no reference values (amino acids, modified
// bases) fall through to geometric classification even in this mode, so a
// mixed protein/nucleic structure still classifies everywhere.
func NewStaticTable() *StaticTable {
	return &StaticTable{
		geo: NewGeometricClassifier(),
		bases: map[byte]map[string]chem.Capacity{
			'A': {
				"N6": da(2, 0),
				"N1": da(0, 1),
				"N3": da(0, 1),
				"N7": da(0, 1),
			},
			'G': {
				"N1": da(1, 0),
				"N2": da(2, 0),
				"O6": da(0, 2),
				"N3": da(0, 1),
				"N7": da(0, 1),
			},
			'C': {
				"N4": da(2, 0),
				"N3": da(0, 1),
				"O2": da(0, 2),
			},
			'U': {
				"N3": da(1, 0),
				"O2": da(0, 2),
				"O4": da(0, 2),
			},
			'T': {
				"N3": da(1, 0),
				"O2": da(0, 2),
				"O4": da(0, 2),
			},
		},
		shared: map[string]chem.Capacity{
			"O2'": da(1, 2),
			"O4'": da(0, 1),
			"O3'": da(1, 2), // donor applies only at the 3' chain end
			"O5'": da(1, 2), // donor applies only at the 5' chain end
			"OP1": da(0, 2),
			"OP2": da(0, 2),
			"OP3": da(1, 2), // 5'-terminal phosphate oxygen
		},
	}
}

// Mode implements Provider.
func (t *StaticTable) Mode() string { return "static" }

// Capacity implements Provider.  For tabulated bases the residue's
// coordinates are ignored; only the base type and atom name matter, and an
// untabulated atom of a known base stays at zero so replays match the
// reference byte for byte.  A base absent from the table altogether carries
// no reference data, and classification falls through to the geometric
// classifier.  Chain-terminal donor exclusion is deliberately NOT applied
// here — whether a residue is polymer-internal is the caller's knowledge,
// not the table's.
func (t *StaticTable) Capacity(res *structure.Residue, atomName string) chem.Capacity {
	name := chem.NormalizeAtomName(atomName)
	if byBase, ok := t.bases[res.Base()]; ok {
		if c, ok := byBase[name]; ok {
			return c
		}
		if c, ok := t.shared[name]; ok {
			return c
		}
		return chem.ZeroCapacity
	}
	if c, ok := t.shared[name]; ok {
		return c
	}
	return t.geo.Capacity(res, atomName)
}

// ChainTerminal reports whether the named atom is one whose tabulated donor
// capacity exists only at a polymer chain end (5'-terminal phosphate oxygen,
// 3'-terminal ribose oxygen).  Callers must ignore the donor count for these
// atoms when the residue is known to be internal to a polymer.
func (t *StaticTable) ChainTerminal(atomName string) bool {
	switch chem.NormalizeAtomName(atomName) {
	case "O3'", "O5'", "OP3":
		return true
	}
	return false
}
