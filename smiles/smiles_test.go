package smiles

import "testing"

func TestParseEthane(t *testing.T) {
	outcome, err := Parse([]byte("CC"))
	if err != nil {
		t.Fatalf("Parse(CC) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse(CC) outcome = %v, want OK", outcome)
	}
}

func TestParseRingClosureAcrossDot(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("C1.C1"))
	if err != nil {
		t.Fatalf("Parse(C1.C1) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse(C1.C1) outcome = %v, want OK", outcome)
	}
	if len(p.Atoms) != 2 {
		t.Fatalf("got %d atoms, want 2", len(p.Atoms))
	}
	if len(p.Bonds) != 1 {
		t.Fatalf("got %d bonds, want 1", len(p.Bonds))
	}
	b := p.Bonds[0]
	if b.Atom0 != 0 || b.Atom1 != 1 || !b.IsRing {
		t.Fatalf("unexpected ring bond: %+v", b)
	}
}

func TestParseDisconnectedAtoms(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("C.C"))
	if err != nil {
		t.Fatalf("Parse(C.C) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse(C.C) outcome = %v, want OK", outcome)
	}
	if len(p.Atoms) != 2 || len(p.Bonds) != 0 {
		t.Fatalf("got %d atoms, %d bonds, want 2 atoms, 0 bonds", len(p.Atoms), len(p.Bonds))
	}
}

func TestParseWildcardAndDot(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("[*].C"))
	if err != nil {
		t.Fatalf("Parse([*].C) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse([*].C) outcome = %v, want OK", outcome)
	}
	if len(p.Atoms) != 2 {
		t.Fatalf("got %d atoms, want 2", len(p.Atoms))
	}
	if p.Atoms[0].AtomicNumber != 0 || p.Atoms[0].Symbol != "*" {
		t.Fatalf("first atom should be the wildcard, got %+v", p.Atoms[0])
	}
}

func TestParseTrailingGarbageAfterBranch(t *testing.T) {
	outcome, err := Parse([]byte("[*](C)^"))
	if outcome != SyntaxErrorOutcome {
		t.Fatalf("outcome = %v, want SyntaxErrorOutcome", outcome)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err is %T, want *ParseError", err)
	}
	if pe.Position != 6 {
		t.Fatalf("error position = %d, want 6", pe.Position)
	}
}

func TestParseInvalidBracketContents(t *testing.T) {
	outcome, err := Parse([]byte("[,*](C)^"))
	if outcome != SyntaxErrorOutcome {
		t.Fatalf("outcome = %v, want SyntaxErrorOutcome", outcome)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err is %T, want *ParseError", err)
	}
	if pe.Position != 1 {
		t.Fatalf("error position = %d, want 1", pe.Position)
	}
}

func TestParseBenzeneRing(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("c1ccccc1"))
	if err != nil {
		t.Fatalf("Parse(c1ccccc1) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse(c1ccccc1) outcome = %v, want OK", outcome)
	}
	if len(p.Atoms) != 6 {
		t.Fatalf("got %d atoms, want 6", len(p.Atoms))
	}
	if len(p.Bonds) != 6 {
		t.Fatalf("got %d bonds, want 6", len(p.Bonds))
	}
	for i, a := range p.Atoms {
		if !a.IsAromatic {
			t.Fatalf("atom %d not aromatic: %+v", i, a)
		}
		if a.ImplicitHydrogenCount != 1 {
			t.Fatalf("atom %d implicit H = %d, want 1", i, a.ImplicitHydrogenCount)
		}
	}
	for _, b := range p.Bonds {
		if b.Order != BondAromatic {
			t.Fatalf("bond %+v order = %v, want BondAromatic", b, b.Order)
		}
	}
}

func TestParseFormicAcid(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("C(=O)O"))
	if err != nil {
		t.Fatalf("Parse(C(=O)O) returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("Parse(C(=O)O) outcome = %v, want OK", outcome)
	}
	if len(p.Atoms) != 3 || len(p.Bonds) != 2 {
		t.Fatalf("got %d atoms, %d bonds, want 3 atoms, 2 bonds", len(p.Atoms), len(p.Bonds))
	}
	if p.Atoms[0].ImplicitHydrogenCount != 1 {
		t.Fatalf("carbon implicit H = %d, want 1", p.Atoms[0].ImplicitHydrogenCount)
	}
	if p.Atoms[1].ImplicitHydrogenCount != 0 {
		t.Fatalf("carbonyl oxygen implicit H = %d, want 0", p.Atoms[1].ImplicitHydrogenCount)
	}
	if p.Atoms[2].ImplicitHydrogenCount != 1 {
		t.Fatalf("hydroxyl oxygen implicit H = %d, want 1", p.Atoms[2].ImplicitHydrogenCount)
	}
}

func TestParseUnclosedRingBond(t *testing.T) {
	outcome, err := Parse([]byte("C1CC"))
	if outcome != SyntaxErrorOutcome {
		t.Fatalf("outcome = %v, want SyntaxErrorOutcome", outcome)
	}
	if err == nil {
		t.Fatalf("expected an error for an unclosed ring bond")
	}
}

func TestParseUnmatchedCloseParen(t *testing.T) {
	outcome, _ := Parse([]byte("CC)C"))
	if outcome != SyntaxErrorOutcome {
		t.Fatalf("outcome = %v, want SyntaxErrorOutcome", outcome)
	}
}

func TestParseIsotopeChargeAndClass(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("[13CH3+:1]"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("outcome = %v, want OK", outcome)
	}
	a := p.Atoms[0]
	if a.Isotope != 13 {
		t.Errorf("isotope = %d, want 13", a.Isotope)
	}
	if a.HydrogenCount != 3 {
		t.Errorf("hydrogen count = %d, want 3", a.HydrogenCount)
	}
	if a.Charge != 1 {
		t.Errorf("charge = %d, want 1", a.Charge)
	}
	if a.AtomClass != 1 {
		t.Errorf("atom class = %d, want 1", a.AtomClass)
	}
}

func TestParseDoubledSignCharge(t *testing.T) {
	var p Parser
	outcome, err := p.Parse([]byte("[Fe++]"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if outcome != OK {
		t.Fatalf("outcome = %v, want OK", outcome)
	}
	if p.Atoms[0].Charge != 2 {
		t.Errorf("charge = %d, want 2", p.Atoms[0].Charge)
	}
}
