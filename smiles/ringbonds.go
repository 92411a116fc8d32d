package smiles

// atomRingBonds reads the zero or more ring-closure numbers that can
// follow an atom (e.g. the "12" in "C12CCCCC1CCCC2"). Each number either
// opens a new ring-bond slot (remembering this atom) or closes one already
// open (emitting the bond between the two atoms that share the number).
func (p *Parser) atomRingBonds(atomIdx int) error {
	for {
		start := p.pos
		bondTok := lex(p.input, p.pos, p.end, false)
		hasBond := bondTok.is(catBond)

		lookPos := p.pos
		if hasBond {
			lookPos += bondTok.length
		}
		numTok := lex(p.input, lookPos, p.end, false)
		if !numTok.is(catDigit | catPercent) {
			// No ring-bond digit follows; any bond symbol here belongs to
			// the next chain atom instead, so leave it unconsumed.
			return nil
		}
		if hasBond {
			p.pos = lookPos
		}

		matched, number, pos := p.ringBondNumber()
		if !matched {
			return syntaxErrorf(start, "ring bond number expected after bond symbol")
		}
		if number >= len(p.ringTable) {
			return syntaxErrorf(pos, "ring bond number %d out of range", number)
		}

		order := BondOrder(bondTok.intVal)
		stereo := bondTok.stereo
		if !hasBond {
			order, stereo = BondUnspecified, StereoUnspecified
		}

		slot := &p.ringTable[number]
		if !slot.open {
			slot.open = true
			slot.atom = atomIdx
			slot.order = order
			slot.stereo = stereo
			slot.isSet = hasBond
			slot.position = pos
			continue
		}

		finalOrder, finalStereo := order, stereo
		switch {
		case hasBond && slot.isSet:
			if order != slot.order {
				return syntaxErrorf(pos, "conflicting bond order on ring closure %d", number)
			}
		case slot.isSet:
			finalOrder, finalStereo = slot.order, slot.stereo
		}

		if slot.atom == atomIdx {
			return syntaxErrorf(pos, "ring bond %d cannot close on the same atom that opened it", number)
		}

		// Ring-closure bonds are never marked implicit, even when neither
		// occurrence of the digit carried a bond symbol: the reference
		// always constructs the closing bond with implicit = 0.
		if err := p.addBond(slot.atom, atomIdx, resolveRingOrder(p, slot.atom, atomIdx, finalOrder), finalStereo, false, true, pos, p.pos-pos); err != nil {
			return err
		}
		*slot = ringSlot{}
	}
}

func resolveRingOrder(p *Parser, a, b int, order BondOrder) BondOrder {
	if order != BondUnspecified {
		return order
	}
	return defaultBondOrder(p.Atoms[a], p.Atoms[b])
}

// defaultBondOrder is the order an omitted bond symbol implies: aromatic
// when both endpoints are aromatic atoms, single otherwise.
func defaultBondOrder(a, b Atom) BondOrder {
	if a.IsAromatic && b.IsAromatic {
		return BondAromatic
	}
	return BondSingle
}

// checkRingClosures reports the first ring-bond number left open at end of
// input, pointing at the ring-bond number that opened it.
func (p *Parser) checkRingClosures() error {
	for n := range p.ringTable {
		if p.ringTable[n].open {
			return syntaxErrorf(p.ringTable[n].position, "unclosed ring bond %d", n)
		}
	}
	return nil
}
