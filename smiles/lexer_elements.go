package smiles

// lexElement resolves a token starting with an uppercase ASCII letter. It
// implements the full element table: every one- or two-letter IUPAC symbol,
// Z 1-118. Outside a bracket, the ten organic-subset symbols (B C N O P S F
// Cl Br I) take priority and are emitted as catAliphaticOrganic instead of
// catElement, consuming only the bytes the organic-subset symbol itself
// uses (so "Cu" outside a bracket lexes as aliphatic-organic carbon, length
// 1, leaving the 'u' as a separate, unrecognized token — matching the
// reference lexer rather than guessing a two-letter match was intended).
func lexElement(c0, c1 byte, inBracket bool, t token) token {
	if !inBracket {
		switch c0 {
		case 'B':
			if c1 == 'r' {
				t.category = catAliphaticOrganic
				t.intVal = 35
				t.length = 2
				return t
			}
			t.category = catAliphaticOrganic
			t.intVal = 5
			return t
		case 'C':
			if c1 == 'l' {
				t.category = catAliphaticOrganic
				t.intVal = 17
				t.length = 2
				return t
			}
			t.category = catAliphaticOrganic
			t.intVal = 6
			return t
		case 'N':
			t.category = catAliphaticOrganic
			t.intVal = 7
			return t
		case 'O':
			t.category = catAliphaticOrganic
			t.intVal = 8
			return t
		case 'P':
			t.category = catAliphaticOrganic
			t.intVal = 15
			return t
		case 'S':
			t.category = catAliphaticOrganic
			t.intVal = 16
			return t
		case 'F':
			t.category = catAliphaticOrganic
			t.intVal = 9
			return t
		case 'I':
			t.category = catAliphaticOrganic
			t.intVal = 53
			return t
		}
	}

	if z, length, ok := elementTable(c0, c1); ok {
		t.category = catElement
		if z == 1 {
			t.category |= catHydrogen
		}
		t.intVal = z
		t.length = length
		return t
	}

	return token{}
}

// elementTable returns the atomic number and symbol length for the
// two-byte window (c0, c1) starting at an uppercase letter. It greedily
// prefers a two-letter match, falling back to the single-letter element
// when c0 alone is also a valid symbol (e.g. "N" vs "Na", "C" vs "Cs").
func elementTable(c0, c1 byte) (z int, length int, ok bool) {
	switch c0 {
	case 'A':
		switch c1 {
		case 'c':
			return 89, 2, true
		case 'g':
			return 47, 2, true
		case 'l':
			return 13, 2, true
		case 'm':
			return 95, 2, true
		case 'r':
			return 18, 2, true
		case 's':
			return 33, 2, true
		case 't':
			return 85, 2, true
		case 'u':
			return 79, 2, true
		}
	case 'B':
		switch c1 {
		case 'a':
			return 56, 2, true
		case 'e':
			return 4, 2, true
		case 'h':
			return 107, 2, true
		case 'i':
			return 83, 2, true
		case 'k':
			return 97, 2, true
		case 'r':
			return 35, 2, true
		}
		return 5, 1, true
	case 'C':
		switch c1 {
		case 'a':
			return 20, 2, true
		case 'd':
			return 48, 2, true
		case 'e':
			return 58, 2, true
		case 'f':
			return 98, 2, true
		case 'l':
			return 17, 2, true
		case 'm':
			return 96, 2, true
		case 'n':
			return 112, 2, true
		case 'o':
			return 27, 2, true
		case 'r':
			return 24, 2, true
		case 's':
			return 55, 2, true
		case 'u':
			return 29, 2, true
		}
		return 6, 1, true
	case 'D':
		switch c1 {
		case 'b':
			return 105, 2, true
		case 's':
			return 110, 2, true
		case 'y':
			return 66, 2, true
		}
	case 'E':
		switch c1 {
		case 'r':
			return 68, 2, true
		case 's':
			return 99, 2, true
		case 'u':
			return 63, 2, true
		}
	case 'F':
		switch c1 {
		case 'e':
			return 26, 2, true
		case 'l':
			return 114, 2, true
		case 'm':
			return 100, 2, true
		case 'r':
			return 87, 2, true
		}
		return 9, 1, true
	case 'G':
		switch c1 {
		case 'a':
			return 31, 2, true
		case 'd':
			return 64, 2, true
		case 'e':
			return 32, 2, true
		}
	case 'H':
		switch c1 {
		case 'e':
			return 2, 2, true
		case 'f':
			return 72, 2, true
		case 'g':
			return 80, 2, true
		case 'o':
			return 67, 2, true
		case 's':
			return 108, 2, true
		}
		return 1, 1, true
	case 'I':
		switch c1 {
		case 'n':
			return 49, 2, true
		case 'r':
			return 77, 2, true
		}
		return 53, 1, true
	case 'K':
		switch c1 {
		case 'r':
			return 36, 2, true
		}
		return 19, 1, true
	case 'L':
		switch c1 {
		case 'a':
			return 57, 2, true
		case 'i':
			return 3, 2, true
		case 'r':
			return 103, 2, true
		case 'u':
			return 71, 2, true
		case 'v':
			return 116, 2, true
		}
	case 'M':
		switch c1 {
		case 'c':
			return 115, 2, true
		case 'd':
			return 101, 2, true
		case 'g':
			return 12, 2, true
		case 'n':
			return 25, 2, true
		case 'o':
			return 42, 2, true
		case 't':
			return 109, 2, true
		}
	case 'N':
		switch c1 {
		case 'a':
			return 11, 2, true
		case 'b':
			return 41, 2, true
		case 'd':
			return 60, 2, true
		case 'e':
			return 10, 2, true
		case 'h':
			return 113, 2, true
		case 'i':
			return 28, 2, true
		case 'o':
			return 102, 2, true
		case 'p':
			return 93, 2, true
		}
		return 7, 1, true
	case 'O':
		switch c1 {
		case 'g':
			return 118, 2, true
		case 's':
			return 76, 2, true
		}
		return 8, 1, true
	case 'P':
		switch c1 {
		case 'a':
			return 91, 2, true
		case 'b':
			return 82, 2, true
		case 'd':
			return 46, 2, true
		case 'm':
			return 61, 2, true
		case 'o':
			return 84, 2, true
		case 'r':
			return 59, 2, true
		case 't':
			return 78, 2, true
		case 'u':
			return 94, 2, true
		}
		return 15, 1, true
	case 'R':
		switch c1 {
		case 'a':
			return 88, 2, true
		case 'b':
			return 37, 2, true
		case 'e':
			return 75, 2, true
		case 'f':
			return 104, 2, true
		case 'g':
			return 111, 2, true
		case 'h':
			return 45, 2, true
		case 'n':
			return 86, 2, true
		case 'u':
			return 44, 2, true
		}
	case 'S':
		switch c1 {
		case 'b':
			return 51, 2, true
		case 'c':
			return 21, 2, true
		case 'e':
			return 34, 2, true
		case 'g':
			return 106, 2, true
		case 'i':
			return 14, 2, true
		case 'm':
			return 62, 2, true
		case 'n':
			return 50, 2, true
		case 'r':
			return 38, 2, true
		}
		return 16, 1, true
	case 'T':
		switch c1 {
		case 'a':
			return 73, 2, true
		case 'b':
			return 65, 2, true
		case 'c':
			return 43, 2, true
		case 'e':
			return 52, 2, true
		case 'h':
			return 90, 2, true
		case 'i':
			return 22, 2, true
		case 'l':
			return 81, 2, true
		case 'm':
			return 69, 2, true
		case 's':
			return 117, 2, true
		}
	case 'U':
		return 92, 1, true
	case 'V':
		return 23, 1, true
	case 'W':
		return 74, 1, true
	case 'X':
		switch c1 {
		case 'e':
			return 54, 2, true
		}
	case 'Y':
		switch c1 {
		case 'b':
			return 70, 2, true
		}
		return 39, 1, true
	case 'Z':
		switch c1 {
		case 'n':
			return 30, 2, true
		case 'r':
			return 40, 2, true
		}
	}
	return 0, 0, false
}
