package capacity

import (
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
	"github.com/turtacn/NucleoBond/pkg/types/geometry"
)

const (
	// carbonylCutoff splits the two one-neighbor oxygen archetypes: C=O
	// sits near 1.23 Å, C-OH and ribose C-O near 1.41 Å.
	carbonylCutoff = 1.30

	// iminoAngleCutoff splits protonated from unprotonated two-neighbor ring
	// nitrogens when no explicit hydrogen is present.  Protonation opens the
	// C-N-C angle: adenine N1 sits near 118.8°, guanine N1 near 125.1°.
	iminoAngleCutoff = 121.5
)

// GeometricClassifier infers donor/acceptor capacity for nitrogen and oxygen
// atoms from their covalent neighbor geometry alone, with no bond-order
// graph and no explicit hydrogens required.
type GeometricClassifier struct{}

// NewGeometricClassifier constructs the live geometric Provider.
func NewGeometricClassifier() *GeometricClassifier {
	return &GeometricClassifier{}
}

// Mode implements Provider.
func (g *GeometricClassifier) Mode() string { return "geometric" }

// Capacity implements Provider.  Classification is a pure function of the
// residue's coordinates; every unclassifiable case falls back to
// chem.ZeroCapacity rather than failing, because crystal structures
// routinely carry missing atoms.
func (g *GeometricClassifier) Capacity(res *structure.Residue, atomName string) chem.Capacity {
	atom, ok := res.Atom(atomName)
	if !ok {
		return chem.ZeroCapacity
	}

	switch atom.Element {
	case chem.Nitrogen:
		return g.classifyNitrogen(res, atom)
	case chem.Oxygen:
		return g.classifyOxygen(res, atom)
	default:
		// Carbon, phosphorus and hydrogen neither donate nor accept here.
		return chem.ZeroCapacity
	}
}

// classifyNitrogen applies the nitrogen rule on heavy-neighbor count:
//
//	1 neighbor  — exocyclic amino group, two hydrogens: donor=2.
//	2 neighbors — ring nitrogen; protonation evidence decides imino donor
//	              (donor=1) versus bare ring acceptor (acceptor=1).
//	3 neighbors — fully substituted, nothing to give or take.
func (g *GeometricClassifier) classifyNitrogen(res *structure.Residue, atom structure.Atom) chem.Capacity {
	neighbors := res.HeavyNeighbors(atom.Name)

	switch len(neighbors) {
	case 0:
		// Isolated nitrogen: geometry too sparse to classify.
		return chem.ZeroCapacity
	case 1:
		return chem.MustCapacity(2, 0)
	case 2:
		if g.hasHydrogenEvidence(res, atom, neighbors) {
			return chem.MustCapacity(1, 0)
		}
		return chem.MustCapacity(0, 1)
	default:
		return chem.ZeroCapacity
	}
}

// classifyOxygen applies the oxygen rule:
//
//	1 neighbor, short bond — carbonyl: acceptor=2.
//	1 neighbor, long bond  — hydroxyl or ribose 2'-OH: donor=1, acceptor=2.
//	2 neighbors            — bridging/ester oxygen: acceptor=1.
func (g *GeometricClassifier) classifyOxygen(res *structure.Residue, atom structure.Atom) chem.Capacity {
	neighbors := res.HeavyNeighbors(atom.Name)

	switch len(neighbors) {
	case 1:
		if atom.DistanceTo(neighbors[0]) <= carbonylCutoff {
			return chem.MustCapacity(0, 2)
		}
		return chem.MustCapacity(1, 2)
	case 2:
		return chem.MustCapacity(0, 1)
	default:
		return chem.ZeroCapacity
	}
}

// hasHydrogenEvidence decides whether a two-neighbor ring nitrogen carries a
// hydrogen.  An explicit hydrogen atom settles it; otherwise the substituent
// angle approximates the hybridization state.
func (g *GeometricClassifier) hasHydrogenEvidence(res *structure.Residue, atom structure.Atom, neighbors []structure.Atom) bool {
	if res.ExplicitHydrogens(atom.Name) > 0 {
		return true
	}
	v1 := neighbors[0].Position.Sub(atom.Position)
	v2 := neighbors[1].Position.Sub(atom.Position)
	return geometry.AngleBetween(v1, v2) > iminoAngleCutoff
}
