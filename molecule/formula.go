// Package molecule computes read-only descriptors (gross formula,
// molecular weight, Lipinski profile) from an already-parsed SMILES atom
// and bond list. It never re-derives structure; it only summarizes what
// package smiles has already produced.
package molecule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cx-luo/go-smiles/smiles"
)

// GrossFormula renders the molecular formula in Hill order: carbon first,
// hydrogen second if carbon is present, every other element alphabetically
// by symbol. Implicit and explicit hydrogens are both counted. Atoms
// without a resolved atomic number (the wildcard "*") are skipped, the way
// a gross formula has no symbol to contribute for an unspecified atom.
func GrossFormula(atoms []smiles.Atom) string {
	counts := make(map[int]int)
	for _, a := range atoms {
		if a.AtomicNumber == 0 {
			continue
		}
		counts[a.AtomicNumber]++
		counts[1] += hydrogenCount(a)
	}
	return hillString(counts)
}

func hillString(counts map[int]int) string {
	_, hasCarbon := counts[6]

	elems := make([]int, 0, len(counts))
	for z := range counts {
		elems = append(elems, z)
	}

	sort.Slice(elems, func(i, j int) bool {
		a, b := elems[i], elems[j]
		if hasCarbon {
			if a == 6 {
				return b != 6
			}
			if b == 6 {
				return false
			}
			if a == 1 {
				return b != 1
			}
			if b == 1 {
				return false
			}
		}
		return symbolOf(a) < symbolOf(b)
	})

	var parts []string
	for _, z := range elems {
		n := counts[z]
		if n <= 0 {
			continue
		}
		if n == 1 {
			parts = append(parts, symbolOf(z))
		} else {
			parts = append(parts, fmt.Sprintf("%s%d", symbolOf(z), n))
		}
	}
	return strings.Join(parts, "")
}
