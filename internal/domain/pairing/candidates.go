package pairing

import (
	"sort"

	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/NucleoBond/pkg/types/geometry"
)

// candidate is one geometrically plausible donor→acceptor pairing.  It is
// ephemeral: generated fresh per query, sorted, consumed by the solver, and
// never cached across calls.
type candidate struct {
	donorRes     string
	donorAtom    string
	acceptorRes  string
	acceptorAtom string
	distance     float64
	alignment    float64
}

// rejectFn reports a filtered candidate with its reason for the metrics and
// debug-log surface.
type rejectFn func(reason string)

// generateCandidates enumerates donor→acceptor pairings in both role
// directions between two registered residues, filters them on the configured
// distance and alignment cutoffs, and returns them in the contract order.
// Both directions are always generated, so the unordered result set does not
// depend on argument order.
func generateCandidates(a, b *entry, maxDistance, minAlignment float64, reject rejectFn) []candidate {
	var out []candidate
	out = appendDirected(out, a, b, maxDistance, minAlignment, reject)
	out = appendDirected(out, b, a, maxDistance, minAlignment, reject)
	sortCandidates(out)
	return out
}

// appendDirected scans donors of from against acceptors of to.  Atom names
// are iterated in sorted order so generation is deterministic before the
// final sort even among equal-scoring candidates.
func appendDirected(out []candidate, from, to *entry, maxDistance, minAlignment float64, reject rejectFn) []candidate {
	for _, donorName := range from.res.AtomNames() {
		if from.capacityOf(donorName).Donor() == 0 {
			continue
		}
		donor, _ := from.res.Atom(donorName)

		for _, acceptorName := range to.res.AtomNames() {
			if to.capacityOf(acceptorName).Acceptor() == 0 {
				continue
			}
			acceptor, _ := to.res.Atom(acceptorName)

			dist := donor.DistanceTo(acceptor)
			if dist > maxDistance {
				reject(prometheus.RejectDistance)
				continue
			}

			align := alignmentScore(from, donorName, to, acceptorName)
			if align < minAlignment {
				reject(prometheus.RejectAlignment)
				continue
			}

			out = append(out, candidate{
				donorRes:     from.res.ID(),
				donorAtom:    donorName,
				acceptorRes:  to.res.ID(),
				acceptorAtom: acceptorName,
				distance:     dist,
				alignment:    align,
			})
		}
	}
	return out
}

// alignmentScore approximates donor→acceptor angular favorability in [0,1]
// without explicit hydrogens.  The direction away from a donor's heavy
// substituents approximates its hydrogen vector; the direction opposite an
// acceptor's substituents approximates its lone-pair vector.  Each endpoint
// contributes (1+cosθ)/2 against the bond axis; an endpoint with no
// resolvable substituent direction contributes a neutral 1.0 so that sparse
// residues still pair on distance.
func alignmentScore(donorEntry *entry, donorName string, acceptorEntry *entry, acceptorName string) float64 {
	donor, _ := donorEntry.res.Atom(donorName)
	acceptor, _ := acceptorEntry.res.Atom(acceptorName)

	axis := acceptor.Position.Sub(donor.Position)

	donorTerm := 1.0
	if subst, ok := donorEntry.res.SubstituentDirection(donorName); ok {
		if cos, ok := geometry.CosAngle(subst.Scale(-1), axis); ok {
			donorTerm = (1 + cos) / 2
		}
	}

	acceptorTerm := 1.0
	if subst, ok := acceptorEntry.res.SubstituentDirection(acceptorName); ok {
		if cos, ok := geometry.CosAngle(subst.Scale(-1), axis.Scale(-1)); ok {
			acceptorTerm = (1 + cos) / 2
		}
	}

	return (donorTerm + acceptorTerm) / 2
}

// sortCandidates orders by descending alignment, then ascending distance,
// then lexicographic donor and acceptor atom names, with residue ids as the
// final key.  This exact ordering is a behavioral contract consumed by the
// solver: the greedy acceptance walk, and therefore the output, depends on it.
func sortCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.alignment != b.alignment {
			return a.alignment > b.alignment
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.donorAtom != b.donorAtom {
			return a.donorAtom < b.donorAtom
		}
		if a.acceptorAtom != b.acceptorAtom {
			return a.acceptorAtom < b.acceptorAtom
		}
		if a.donorRes != b.donorRes {
			return a.donorRes < b.donorRes
		}
		return a.acceptorRes < b.acceptorRes
	})
}
