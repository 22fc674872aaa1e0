// Package pairing implements the hydrogen-bond optimization engine: a
// registry of residues with cached per-atom capacities, deterministic
// candidate generation between two registered residues, and the greedy
// slot-assignment solver that reproduces the legacy reference behavior.
package pairing

import (
	"github.com/turtacn/NucleoBond/internal/domain/capacity"
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/pkg/errors"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

// chainTerminalInfo is implemented by providers that know which atoms carry
// donor capacity only at a polymer chain end (the static reference table).
// The registry, as the caller, applies the exclusion; the table only reports.
type chainTerminalInfo interface {
	ChainTerminal(atomName string) bool
}

// entry is one registered residue plus its capacity cache, computed once at
// registration and read-only afterwards.
type entry struct {
	res  *structure.Residue
	caps map[string]chem.Capacity
}

func (e *entry) capacityOf(atomName string) chem.Capacity {
	return e.caps[atomName]
}

// Registry holds registered residues keyed by id.  Registration is the only
// mutation; queries never write, which is what allows parallel batch drivers
// to share nothing and lock nothing.
type Registry struct {
	provider capacity.Provider
	entries  map[string]*entry
}

// NewRegistry constructs an empty registry bound to a capacity provider.
func NewRegistry(provider capacity.Provider) *Registry {
	return &Registry{
		provider: provider,
		entries:  make(map[string]*entry),
	}
}

// Register caches the residue and one Capacity per atom via the active
// provider.  Registering the same id again replaces the entry and recomputes
// the cache, so re-registering an identical residue is observably a no-op.
//
// For polymer-internal residues the donor capacity of chain-terminal atoms
// (3'-/5'-bridging oxygens) is stripped when the provider tabulates them.
// The table only reports which atoms are chain-terminal; applying the
// exclusion is the registry's decision because only the caller knows
// whether a residue sits inside a chain.
func (r *Registry) Register(res *structure.Residue) error {
	if res == nil {
		return errors.New(errors.ErrCodeResidueInvalid, "residue must not be nil")
	}

	terminal, hasTerminalInfo := r.provider.(chainTerminalInfo)

	e := &entry{
		res:  res,
		caps: make(map[string]chem.Capacity),
	}
	for _, name := range res.AtomNames() {
		c := r.provider.Capacity(res, name)
		if hasTerminalInfo && res.ChainInternal() && terminal.ChainTerminal(name) {
			c = c.WithoutDonor()
		}
		e.caps[name] = c
	}
	r.entries[res.ID()] = e
	return nil
}

// Lookup returns the cached entry for a residue id.
func (r *Registry) Lookup(id string) (*entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeResidueNotFound,
			"residue not registered").WithDetail("id=" + id)
	}
	return e, nil
}

// Len returns the number of registered residues.
func (r *Registry) Len() int { return len(r.entries) }

// CachedCapacity exposes the cached capacity of one atom, zero for unknown
// ids or atoms.  Diagnostic surface used by tests and downstream tooling.
func (r *Registry) CachedCapacity(id, atomName string) chem.Capacity {
	e, ok := r.entries[id]
	if !ok {
		return chem.ZeroCapacity
	}
	return e.capacityOf(chem.NormalizeAtomName(atomName))
}
