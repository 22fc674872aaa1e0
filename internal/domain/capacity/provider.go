// Package capacity classifies the hydrogen-bond donor/acceptor capacity of
// residue atoms.  Two Provider implementations exist: GeometricClassifier
// infers capacity from live 3D neighbor geometry, and StaticTable replays the
// fixed legacy reference values for byte-compatible validation.  The engine
// selects one at construction; algorithms never branch on the mode.
package capacity

import (
	"github.com/turtacn/NucleoBond/internal/domain/structure"
	"github.com/turtacn/NucleoBond/pkg/types/chem"
)

// Provider yields the hydrogen-bonding capacity of one atom of a residue.
//
// Implementations are pure: no side effects, no retained state, and no
// errors — an atom that cannot be classified (missing, wrong element,
// degenerate geometry) yields chem.ZeroCapacity so that one malformed
// residue never aborts a whole-structure batch.
type Provider interface {
	// Capacity returns the donor/acceptor capacity of the named atom.
	Capacity(res *structure.Residue, atomName string) chem.Capacity

	// Mode identifies the implementation for logs and diagnostics.
	Mode() string
}
