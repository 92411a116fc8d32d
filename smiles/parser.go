package smiles

// maxInputLength bounds the byte length Parse accepts, matching the
// reference implementation's int32 position arithmetic.
const maxInputLength = 1<<31 - 1

// ringSlot tracks one of the 100 possible ring-bond-closure digits/percent
// numbers. An open slot remembers which atom opened it and what bond was
// written there, so the matching close can validate or default the order.
type ringSlot struct {
	open     bool
	atom     int
	order    BondOrder
	stereo   BondStereo
	isSet    bool // true once an explicit bond symbol has been seen
	position int
}

// parenEntry is one level of the branch stack: the atom index to return to
// when the matching ')' is read, and the byte position of the '(' itself so
// an unmatched open parenthesis can be reported where it was written rather
// than at end of input.
type parenEntry struct {
	atom     int
	position int
}

// Parser holds all mutable state for one Parse call. The zero value is
// ready to use; Init exists for parity with the spec's explicit lifecycle
// and simply resets a Parser for reuse.
type Parser struct {
	Atoms []Atom
	Bonds []Bond

	input []byte
	pos   int
	end   int

	ringTable [100]ringSlot

	parenStack []parenEntry

	prevAtom int // index of the atom the next chain bond attaches to, or Unset
}

// Init resets p for a new parse, discarding any previous result. It exists
// to mirror the specified Init/Parse/Free lifecycle; Go's garbage collector
// makes a separate Free step unnecessary, so Free below simply clears the
// slices for the caller that wants the same discipline as the reference.
func (p *Parser) Init() {
	*p = Parser{}
}

// Free releases the Parser's backing storage. Go has no manual allocator to
// return memory to, so Free's only effect is to let the garbage collector
// reclaim the backing arrays immediately rather than whenever the Parser
// itself is collected; callers that reuse a Parser across many molecules
// should prefer Init instead of Free+new Parser.
func (p *Parser) Free() {
	p.Atoms = nil
	p.Bonds = nil
	p.parenStack = nil
	p.ringTable = [100]ringSlot{}
}

func (p *Parser) addAtom(a Atom) int {
	p.Atoms = growAppend(&p.Atoms, a)
	return len(p.Atoms) - 1
}

func (p *Parser) pushParen(atom, position int) {
	growAppend(&p.parenStack, parenEntry{atom: atom, position: position})
}

func (p *Parser) popParen() (parenEntry, bool) {
	if len(p.parenStack) == 0 {
		return parenEntry{}, false
	}
	e := p.parenStack[len(p.parenStack)-1]
	p.parenStack = p.parenStack[:len(p.parenStack)-1]
	return e, true
}
