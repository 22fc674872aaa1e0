package structure

import (
	"sort"

	"github.com/turtacn/NucleoBond/pkg/errors"
	"github.com/turtacn/NucleoBond/pkg/types/geometry"
)

// CovalentCutoff is the heavy-atom bond-length cutoff in Ångström used for
// neighbor detection.  Covalent bonds between C/N/O/P partners fall between
// roughly 1.2 and 1.6 Å; 1.7 separates bonded from non-bonded pairs with a
// comfortable margin on crystal-structure coordinates.
const CovalentCutoff = 1.7

// HydrogenCutoff is the X-H bond-length cutoff in Ångström used when probing
// for explicit hydrogens attached to a heavy atom.
const HydrogenCutoff = 1.2

// Residue is one registered nucleotide or amino-acid residue: an id
// (chain+base+sequence string), a one-letter base type, and its atoms keyed
// by normalized name.  Residues are created once from parsed structural data
// and never mutated afterwards.
type Residue struct {
	id            string
	base          byte
	atoms         map[string]Atom
	chainInternal bool
}

// ResidueOption customizes residue construction.
type ResidueOption func(*Residue)

// ChainInternal marks the residue as interior to a polymer chain.  For such
// residues the donor capacity of chain-terminal atoms (3'-/5'-bridging
// oxygens) is ignored by the registry in legacy-compatibility mode.
func ChainInternal() ResidueOption {
	return func(r *Residue) { r.chainInternal = true }
}

// NewResidue constructs a validated Residue.  The id must be non-empty and
// at least one atom is required; duplicate atom names keep the first
// occurrence, matching how alternate-location records are handled upstream.
func NewResidue(id string, base byte, atoms []Atom, opts ...ResidueOption) (*Residue, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodeResidueInvalid, "residue id must not be empty")
	}
	if len(atoms) == 0 {
		return nil, errors.New(errors.ErrCodeResidueInvalid, "residue has no atoms").
			WithDetail("id=" + id)
	}

	r := &Residue{
		id:    id,
		base:  base,
		atoms: make(map[string]Atom, len(atoms)),
	}
	for _, a := range atoms {
		if _, dup := r.atoms[a.Name]; dup {
			continue
		}
		r.atoms[a.Name] = a
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ID returns the residue identifier (chain+base+sequence string).
func (r *Residue) ID() string { return r.id }

// Base returns the one-letter base type.
func (r *Residue) Base() byte { return r.base }

// ChainInternal reports whether the residue is interior to a polymer chain.
func (r *Residue) ChainInternal() bool { return r.chainInternal }

// Atom looks up an atom by name, normalizing legacy spellings.
func (r *Residue) Atom(name string) (Atom, bool) {
	a, ok := r.atoms[normalizedKey(name)]
	return a, ok
}

// AtomNames returns all atom names in lexicographic order.  The stable order
// is what keeps candidate generation deterministic.
func (r *Residue) AtomNames() []string {
	names := make([]string, 0, len(r.atoms))
	for n := range r.atoms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HeavyNeighbors returns the heavy atoms covalently bonded to the named atom,
// judged purely by distance against CovalentCutoff.  A local O(n) scan:
// residues carry fewer than 30 atoms, so nothing smarter is warranted.
func (r *Residue) HeavyNeighbors(name string) []Atom {
	center, ok := r.Atom(name)
	if !ok {
		return nil
	}
	var neighbors []Atom
	for _, n := range r.AtomNames() {
		a := r.atoms[n]
		if a.Name == center.Name || !a.IsHeavy() {
			continue
		}
		if center.DistanceTo(a) <= CovalentCutoff {
			neighbors = append(neighbors, a)
		}
	}
	return neighbors
}

// ExplicitHydrogens counts hydrogen atoms bonded to the named atom.  Most
// crystal structures carry no hydrogens at all; a non-zero count is direct
// protonation evidence for the classifier.
func (r *Residue) ExplicitHydrogens(name string) int {
	center, ok := r.Atom(name)
	if !ok {
		return 0
	}
	count := 0
	for _, a := range r.atoms {
		if a.Element.IsHydrogen() && center.DistanceTo(a) <= HydrogenCutoff {
			count++
		}
	}
	return count
}

// SubstituentDirection returns the mean direction from the named atom toward
// its heavy neighbors.  The negation of this direction approximates where
// the atom's hydrogen (donor) or lone pair (acceptor) points.  The second
// return value is false when the atom is missing, has no heavy neighbors, or
// the neighbor vectors cancel out.
func (r *Residue) SubstituentDirection(name string) (geometry.Vec3, bool) {
	center, ok := r.Atom(name)
	if !ok {
		return geometry.Vec3{}, false
	}
	var sum geometry.Vec3
	found := false
	for _, neighbor := range r.HeavyNeighbors(name) {
		u, ok := neighbor.Position.Sub(center.Position).Unit()
		if !ok {
			continue
		}
		sum = sum.Add(u)
		found = true
	}
	if !found {
		return geometry.Vec3{}, false
	}
	return sum.Unit()
}

func normalizedKey(name string) string {
	// Atom maps are keyed by normalized names at construction; re-normalize
	// lookups so "O2*" and "O1P" spellings resolve.
	a := NewAtom(name, geometry.Vec3{})
	return a.Name
}
