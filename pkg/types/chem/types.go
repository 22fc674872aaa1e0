// Package chem defines the chemistry value types exchanged between the
// capacity providers, the pairing engine, and external tooling: elements
// derived from atom names, validated donor/acceptor capacities, bond-context
// classification, and the HBond boundary record.
package chem

import (
	"fmt"
	"strings"

	"github.com/turtacn/NucleoBond/pkg/errors"
)

// Element is the chemical element of an atom, derived from its PDB-style name.
type Element string

const (
	Carbon     Element = "C"
	Nitrogen   Element = "N"
	Oxygen     Element = "O"
	Phosphorus Element = "P"
	Hydrogen   Element = "H"
	Sulfur     Element = "S"
	Unknown    Element = ""
)

// IsHydrogen reports whether the element is hydrogen.
func (e Element) IsHydrogen() bool { return e == Hydrogen }

// ElementFromName derives the element from a PDB-style atom name such as
// "N1", "O2'", "OP1", "C5'", "H41".  Nucleotide and amino-acid atoms are
// single-letter elements, so the first alphabetic character decides.
func ElementFromName(name string) Element {
	for _, r := range strings.ToUpper(name) {
		switch r {
		case 'C':
			return Carbon
		case 'N':
			return Nitrogen
		case 'O':
			return Oxygen
		case 'P':
			return Phosphorus
		case 'H':
			return Hydrogen
		case 'S':
			return Sulfur
		default:
			if r >= 'A' && r <= 'Z' {
				return Unknown
			}
		}
	}
	return Unknown
}

// NormalizeAtomName maps legacy atom-name spellings onto the canonical PDB v3
// form used as table keys: "*" primes become "'", and the old phosphate
// oxygen names O1P/O2P/O3P become OP1/OP2/OP3.
func NormalizeAtomName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "*", "'")
	switch n {
	case "O1P":
		return "OP1"
	case "O2P":
		return "OP2"
	case "O3P":
		return "OP3"
	}
	return n
}

// Moiety is the structural region an atom belongs to within a nucleotide.
type Moiety string

const (
	MoietyBase  Moiety = "base"
	MoietySugar Moiety = "sugar"
)

// MoietyOfAtom classifies an atom name as base or sugar(-backbone) moiety.
// Primed names are ribose atoms; the phosphate group folds into the sugar
// side because the bond-context contract only distinguishes base and sugar.
func MoietyOfAtom(name string) Moiety {
	n := NormalizeAtomName(name)
	if strings.Contains(n, "'") {
		return MoietySugar
	}
	switch n {
	case "P", "OP1", "OP2", "OP3":
		return MoietySugar
	}
	return MoietyBase
}

// BondContext labels which moieties a hydrogen bond joins.
type BondContext string

const (
	ContextBaseBase   BondContext = "base-base"
	ContextBaseSugar  BondContext = "base-sugar"
	ContextSugarSugar BondContext = "sugar-sugar"
)

// IsValid checks if the bond context is one of the three defined values.
func (c BondContext) IsValid() bool {
	switch c {
	case ContextBaseBase, ContextBaseSugar, ContextSugarSugar:
		return true
	default:
		return false
	}
}

// String returns the string representation of the bond context.
func (c BondContext) String() string { return string(c) }

// ContextOf derives the bond context from the two endpoint atom names.
// The context is symmetric: a base donor with a sugar acceptor and a sugar
// donor with a base acceptor both yield base-sugar.
func ContextOf(donorAtom, acceptorAtom string) BondContext {
	d := MoietyOfAtom(donorAtom)
	a := MoietyOfAtom(acceptorAtom)
	switch {
	case d == MoietyBase && a == MoietyBase:
		return ContextBaseBase
	case d == MoietySugar && a == MoietySugar:
		return ContextSugarSugar
	default:
		return ContextBaseSugar
	}
}

// MaxSlots is the largest donor or acceptor count a single atom can carry.
const MaxSlots = 2

// Capacity is the hydrogen-bonding capacity of one atom: how many hydrogens
// it can donate and how many lone pairs it can offer as acceptor slots.
// Both counts are guaranteed to lie in [0, MaxSlots]; values outside that
// range are unrepresentable because the fields are unexported and the only
// constructor validates.
type Capacity struct {
	donor    int
	acceptor int
}

// ZeroCapacity is the documented fallback for atoms that cannot be
// classified: missing from the residue, non-N/O element, or neighbor
// geometry too sparse to resolve hybridization.
var ZeroCapacity = Capacity{}

// NewCapacity constructs a Capacity, rejecting donor or acceptor counts
// outside [0, MaxSlots].
func NewCapacity(donor, acceptor int) (Capacity, error) {
	if donor < 0 || donor > MaxSlots {
		return Capacity{}, errors.Newf(errors.ErrCodeValidation,
			"donor count %d outside [0,%d]", donor, MaxSlots)
	}
	if acceptor < 0 || acceptor > MaxSlots {
		return Capacity{}, errors.Newf(errors.ErrCodeValidation,
			"acceptor count %d outside [0,%d]", acceptor, MaxSlots)
	}
	return Capacity{donor: donor, acceptor: acceptor}, nil
}

// MustCapacity constructs a Capacity and panics on invalid counts.  Reserved
// for static tables and tests where the inputs are compile-time constants.
func MustCapacity(donor, acceptor int) Capacity {
	c, err := NewCapacity(donor, acceptor)
	if err != nil {
		panic(err)
	}
	return c
}

// Donor returns the donor slot count.
func (c Capacity) Donor() int { return c.donor }

// Acceptor returns the acceptor slot count.
func (c Capacity) Acceptor() int { return c.acceptor }

// IsZero reports whether the atom has no bonding capacity in either role.
func (c Capacity) IsZero() bool { return c.donor == 0 && c.acceptor == 0 }

// WithoutDonor returns a copy with the donor count cleared.  Used by the
// registry when applying the chain-terminal exclusion to polymer-internal
// residues.
func (c Capacity) WithoutDonor() Capacity {
	return Capacity{donor: 0, acceptor: c.acceptor}
}

// String returns "donor/acceptor", e.g. "2/0" for an amino nitrogen.
func (c Capacity) String() string {
	return fmt.Sprintf("%d/%d", c.donor, c.acceptor)
}

// HBond is one finalized hydrogen bond between two registered residues.
// It is the boundary record exchanged with external tooling; slot indices
// are 0-based and disambiguate which of an atom's capacity units the bond
// consumes.
type HBond struct {
	DonorResidue    string      `json:"donor_residue"`
	DonorAtom       string      `json:"donor_atom"`
	AcceptorResidue string      `json:"acceptor_residue"`
	AcceptorAtom    string      `json:"acceptor_atom"`
	Distance        float64     `json:"distance"`
	Context         BondContext `json:"context"`
	DonorSlot       int         `json:"donor_slot_index"`
	AcceptorSlot    int         `json:"acceptor_slot_index"`
	Alignment       float64     `json:"alignment_score"`
}

// String renders the bond for humans.  Display only; no format contract.
func (h HBond) String() string {
	return fmt.Sprintf("%s.%s[%d] -> %s.%s[%d]  %.2fÅ  align=%.2f  (%s)",
		h.DonorResidue, h.DonorAtom, h.DonorSlot,
		h.AcceptorResidue, h.AcceptorAtom, h.AcceptorSlot,
		h.Distance, h.Alignment, h.Context)
}
