package smiles

// bondOrderValue is the numeric contribution a bond order makes to an
// atom's valence sum. Aromatic bonds count as 1, same as a single bond;
// the aromatic ring's extra bond order is recovered separately by the
// aromatic valence bump below.
func bondOrderValue(o BondOrder) int {
	switch o {
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondQuadruple:
		return 4
	default:
		return 1
	}
}

// assignImplicitHydrogens fills in ImplicitHydrogenCount for every
// organic-subset atom written outside a bracket. Bracket atoms are never
// touched — their hydrogen count, if any, was written explicitly and
// implicit hydrogens are only inferred where the grammar allows none to be
// written at all.
func assignImplicitHydrogens(atoms []Atom, bonds []Bond) {
	neighborCount := make([]int, len(atoms))
	valenceSum := make([]int, len(atoms))
	for _, b := range bonds {
		neighborCount[b.Atom0]++
		neighborCount[b.Atom1]++
		v := bondOrderValue(b.Order)
		valenceSum[b.Atom0] += v
		valenceSum[b.Atom1] += v
	}

	for i := range atoms {
		a := &atoms[i]
		if a.IsBracket || a.AtomicNumber == 0 {
			continue
		}
		valences, ok := standardValences[a.AtomicNumber]
		if !ok {
			continue
		}

		valence := valenceSum[i]
		if a.IsAromatic && valence == neighborCount[i] {
			valence++
		}

		// An aromatic atom only ever checks the lowest listed valence: a
		// ring-fusion aromatic atom whose summed valence already exceeds it
		// (five-bonded aromatic N, for instance) gets no implicit hydrogens
		// rather than being rounded up to a higher standard valence.
		if a.IsAromatic {
			if valences[0] >= valence {
				a.ImplicitHydrogenCount = valences[0] - valence
			} else {
				a.ImplicitHydrogenCount = 0
			}
		} else {
			for _, v := range valences {
				if v >= valence {
					a.ImplicitHydrogenCount = v - valence
					break
				}
			}
			if a.ImplicitHydrogenCount == Unset {
				a.ImplicitHydrogenCount = 0
			}
		}
	}
}
