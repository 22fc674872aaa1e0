package pairing

import (
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

// slotKey identifies one (residue, atom, role) capacity pool.
type slotKey struct {
	res  string
	atom string
	role string
}

const (
	roleDonor    = "donor"
	roleAcceptor = "acceptor"
)

// assignSlots walks the sorted candidate list and greedily accepts every
// candidate whose endpoints both have remaining capacity in their roles.
//
// The greedy, order-dependent rule is deliberate legacy-compatible behavior:
// a rejected candidate is dropped permanently with no deferral and no
// backtracking, and the walk must NOT be replaced by a globally optimal
// weighted matching — that would silently change results on ambiguous
// geometries and break byte-for-byte comparison against the reference tool.
//
// On acceptance each endpoint consumes its next unused 0-based slot index in
// acceptance order, and both remaining capacities are decremented.  No state
// survives the call.
func assignSlots(cands []candidate, a, b *entry, reject rejectFn) []chem.HBond {
	remaining := make(map[slotKey]int, len(cands))

	capOf := func(res string, atom string, role string) int {
		e := a
		if res == b.res.ID() {
			e = b
		}
		c := e.capacityOf(atom)
		if role == roleDonor {
			return c.Donor()
		}
		return c.Acceptor()
	}

	left := func(k slotKey) int {
		if v, ok := remaining[k]; ok {
			return v
		}
		v := capOf(k.res, k.atom, k.role)
		remaining[k] = v
		return v
	}

	bonds := make([]chem.HBond, 0, len(cands))
	for _, c := range cands {
		donorKey := slotKey{res: c.donorRes, atom: c.donorAtom, role: roleDonor}
		acceptorKey := slotKey{res: c.acceptorRes, atom: c.acceptorAtom, role: roleAcceptor}

		donorLeft := left(donorKey)
		acceptorLeft := left(acceptorKey)
		if donorLeft == 0 || acceptorLeft == 0 {
			reject(prometheus.RejectCapacity)
			continue
		}

		donorCap := capOf(c.donorRes, c.donorAtom, roleDonor)
		acceptorCap := capOf(c.acceptorRes, c.acceptorAtom, roleAcceptor)

		remaining[donorKey]--
		remaining[acceptorKey]--

		bonds = append(bonds, chem.HBond{
			DonorResidue:    c.donorRes,
			DonorAtom:       c.donorAtom,
			AcceptorResidue: c.acceptorRes,
			AcceptorAtom:    c.acceptorAtom,
			Distance:        c.distance,
			Context:         chem.ContextOf(c.donorAtom, c.acceptorAtom),
			DonorSlot:       donorCap - donorLeft,
			AcceptorSlot:    acceptorCap - acceptorLeft,
			Alignment:       c.alignment,
		})
	}
	return bonds
}
