package molecule

import "github.com/cx-luo/go-smiles/smiles"

// MolecularWeight sums standard atomic weights across atoms plus the
// hydrogen weight contributed by each atom's explicit or implicit
// hydrogen count. An atom carrying an explicit isotope uses its mass
// number directly rather than the standard weight, the same
// simplification the teacher's CalcMolecularWeight makes.
func MolecularWeight(atoms []smiles.Atom) float64 {
	var weight float64
	for _, a := range atoms {
		if a.AtomicNumber > 0 {
			weight += atomicWeight(a.AtomicNumber, a.Isotope)
		}
		weight += float64(hydrogenCount(a)) * atomicWeights[1]
	}
	return weight
}

func hydrogenCount(a smiles.Atom) int {
	if a.HydrogenCount != smiles.Unset {
		return a.HydrogenCount
	}
	if a.ImplicitHydrogenCount != smiles.Unset {
		return a.ImplicitHydrogenCount
	}
	return 0
}
