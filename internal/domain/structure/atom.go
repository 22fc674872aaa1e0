// Package structure provides the residue and atom aggregates the engine
// operates on.  Instances are produced once from externally parsed structural
// data and are immutable after construction; every downstream computation
// treats them as read-only, which is what makes lock-free parallel batch
// drivers safe.
package structure

import (
	"github.com/turtacn/NucleoBond/pkg/types/chem"
	"github.com/turtacn/NucleoBond/pkg/types/geometry"
)

// Atom is a single named atom with its position.  The element is derived
// from the name at construction.
type Atom struct {
	Name     string
	Element  chem.Element
	Position geometry.Vec3
}

// NewAtom constructs an Atom, normalizing the name and deriving the element.
func NewAtom(name string, pos geometry.Vec3) Atom {
	n := chem.NormalizeAtomName(name)
	return Atom{
		Name:     n,
		Element:  chem.ElementFromName(n),
		Position: pos,
	}
}

// IsHeavy reports whether the atom is a non-hydrogen atom.
func (a Atom) IsHeavy() bool {
	return a.Element != chem.Hydrogen && a.Element != chem.Unknown
}

// DistanceTo returns the Euclidean distance to another atom in Ångström.
func (a Atom) DistanceTo(b Atom) float64 {
	return geometry.Distance(a.Position, b.Position)
}
