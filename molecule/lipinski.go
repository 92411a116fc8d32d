package molecule

import "github.com/cx-luo/go-smiles/smiles"

// LipinskiProfile holds the handful of descriptors Lipinski's rule of five
// is computed from.
type LipinskiProfile struct {
	MolecularWeight       float64
	HydrogenBondDonors    int
	HydrogenBondAcceptors int
	RotatableBonds        int
}

// ViolatesRuleOfFive reports whether the profile fails more than one of
// the three rule-of-five thresholds it checks (molecular weight, donors,
// acceptors). LogP is not computed, so the fourth rule-of-five threshold
// is not checked.
func (p LipinskiProfile) ViolatesRuleOfFive() bool {
	violations := 0
	if p.MolecularWeight > 500 {
		violations++
	}
	if p.HydrogenBondDonors > 5 {
		violations++
	}
	if p.HydrogenBondAcceptors > 10 {
		violations++
	}
	return violations > 1
}

// Lipinski computes a LipinskiProfile directly off a parsed atom/bond
// list. Donor/acceptor counts use the same proxy the teacher's
// NumHydrogenBondDonors/NumHydrogenBondAcceptors use: an N or O is an
// acceptor when its connectivity leaves room for a lone pair, and a donor
// when it carries at least one hydrogen. Rotatable bonds use the same
// ring-edge heuristic as NumRotatableBonds: a single bond between two
// non-terminal atoms that don't share two or more common neighbors (which
// would mark it as part of a small ring instead).
func Lipinski(atoms []smiles.Atom, bonds []smiles.Bond) LipinskiProfile {
	neighbors := make([][]int, len(atoms))
	for _, b := range bonds {
		neighbors[b.Atom0] = append(neighbors[b.Atom0], b.Atom1)
		neighbors[b.Atom1] = append(neighbors[b.Atom1], b.Atom0)
	}

	profile := LipinskiProfile{MolecularWeight: MolecularWeight(atoms)}

	for i, a := range atoms {
		if a.AtomicNumber != 7 && a.AtomicNumber != 8 {
			continue
		}
		if a.Charge <= 0 && len(neighbors[i]) <= maxAcceptorConnectivity(a.AtomicNumber) {
			profile.HydrogenBondAcceptors++
		}
		if a.Charge >= 0 && hydrogenCount(a) > 0 {
			profile.HydrogenBondDonors++
		}
	}

	for _, b := range bonds {
		if b.Order != smiles.BondSingle || b.IsRing {
			continue
		}
		if len(neighbors[b.Atom0]) <= 1 || len(neighbors[b.Atom1]) <= 1 {
			continue
		}
		if sharesTwoOrMoreNeighbors(neighbors, b.Atom0, b.Atom1) {
			continue
		}
		profile.RotatableBonds++
	}

	return profile
}

func maxAcceptorConnectivity(atomicNumber int) int {
	if atomicNumber == 8 {
		return 2
	}
	return 3
}

func sharesTwoOrMoreNeighbors(neighbors [][]int, u, v int) bool {
	seen := make(map[int]bool, len(neighbors[u]))
	for _, n := range neighbors[u] {
		seen[n] = true
	}
	shared := 0
	for _, n := range neighbors[v] {
		if seen[n] {
			shared++
		}
	}
	return shared >= 2
}
