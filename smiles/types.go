package smiles

// Unset is the sentinel value for optional integer fields (isotope,
// hydrogen count, implicit hydrogen count, atom class) that have not been
// assigned. Charge uses 0 as its own sentinel, since unwritten charge and
// zero formal charge are indistinguishable in the grammar.
const Unset = -1

// BondOrder is the order of a bond.
type BondOrder int

const (
	BondUnspecified BondOrder = iota
	BondSingle
	BondDouble
	BondTriple
	BondQuadruple
	BondAromatic
)

// BondStereo records the raw up/down cis-trans marker on a bond.
type BondStereo int

const (
	StereoUnspecified BondStereo = iota
	StereoUp
	StereoDown
)

// Atom is one atom in the molecular graph, indexed in parse order.
type Atom struct {
	AtomicNumber           int    // Z; 0 for the wildcard '*'
	Symbol                 string // up to 3 bytes, as written
	Isotope                int    // mass number, or Unset
	Charge                 int    // signed formal charge; 0 means unset
	HydrogenCount          int    // explicit bracket H count, or Unset
	ImplicitHydrogenCount  int    // filled by the post-pass, Unset until then
	IsBracket              bool
	IsOrganic              bool
	IsAromatic             bool
	Chirality              string // "", "@", or "@@"
	AtomClass              int    // non-negative, or Unset
	Position               int    // byte offset in the source
	Length                 int    // byte width in the source
}

// Bond is one edge of the molecular graph. Atom0 is always less than
// Atom1; when a bond is supplied in the opposite order, the parser swaps
// the endpoints and flips up/down stereo accordingly.
type Bond struct {
	Atom0      int
	Atom1      int
	Order      BondOrder
	Stereo     BondStereo
	IsImplicit bool
	IsRing     bool
	Position   int
	Length     int
}

func newAtom() Atom {
	return Atom{
		Isotope:               Unset,
		HydrogenCount:         Unset,
		ImplicitHydrogenCount: Unset,
		AtomClass:             Unset,
		Position:              Unset,
	}
}

func newBond() Bond {
	return Bond{
		Atom0:    Unset,
		Atom1:    Unset,
		Order:    BondUnspecified,
		Stereo:   StereoUnspecified,
		Position: Unset,
	}
}
