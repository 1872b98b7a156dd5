package letters

// Bigram is a candidate letter pair with its desirability weight
// (1..10, higher is more spawnable).
type Bigram struct {
	Pair   Pair
	Weight int
}

// bg builds a table entry from a two-letter literal.
func bg(s string, w int) Bigram {
	return Bigram{Pair: Pair{Letter(s[0]), Letter(s[1])}, Weight: w}
}

// bigramTable is the curated pair pool, ordered roughly by English
// bigram frequency. QU carries a mid weight so Q always arrives with
// its U within reach.
var bigramTable = []Bigram{
	bg("TH", 10), bg("HE", 10), bg("IN", 10), bg("ER", 10), bg("AN", 10),
	bg("RE", 9), bg("ON", 9), bg("AT", 9), bg("EN", 9), bg("ND", 9),
	bg("TI", 8), bg("ES", 8), bg("OR", 8), bg("TE", 8), bg("ED", 8),
	bg("IS", 7), bg("IT", 7), bg("AL", 7), bg("AR", 7), bg("ST", 7),
	bg("TO", 6), bg("NT", 6), bg("NG", 6), bg("SE", 6), bg("HA", 6),
	bg("AS", 6), bg("OU", 6),
	bg("IO", 5), bg("LE", 5), bg("VE", 5), bg("CO", 5), bg("ME", 5),
	bg("DE", 5), bg("HI", 5),
	bg("RI", 4), bg("RO", 4), bg("IC", 4), bg("NE", 4), bg("EA", 4),
	bg("RA", 4), bg("CE", 4),
	bg("LI", 3), bg("CH", 3), bg("LL", 3), bg("BE", 3), bg("MA", 3),
	bg("SI", 3), bg("OM", 3), bg("UR", 3), bg("CA", 3), bg("EL", 3),
	bg("QU", 3),
	bg("TA", 2), bg("LA", 2), bg("NS", 2), bg("DI", 2), bg("FO", 2),
	bg("HO", 2), bg("PE", 2), bg("EC", 2), bg("PR", 2), bg("NO", 2),
	bg("US", 2), bg("AC", 2),
	bg("OT", 1), bg("IL", 1), bg("TR", 1), bg("LY", 1), bg("NC", 1),
	bg("ET", 1), bg("UT", 1), bg("SO", 1), bg("RS", 1), bg("UN", 1),
	bg("LO", 1), bg("WA", 1), bg("GE", 1), bg("IE", 1), bg("WH", 1),
	bg("WI", 1), bg("EM", 1), bg("AD", 1), bg("OL", 1), bg("LD", 1),
	bg("EE", 1), bg("SS", 1),
}

// Bigrams returns the curated pair pool. The slice is shared; callers
// must not modify it.
func Bigrams() []Bigram {
	return bigramTable
}

// continuations maps the strongest bigrams to letters that commonly
// extend them into words. Presence of a continuation letter on the
// board makes the bigram more attractive to spawn.
var continuations = map[Pair][]Letter{
	{'T', 'H'}: {'E', 'A', 'I', 'O'},
	{'H', 'E'}: {'R', 'N', 'A'},
	{'I', 'N'}: {'G', 'E', 'T'},
	{'E', 'R'}: {'S', 'E', 'A'},
	{'A', 'N'}: {'D', 'T', 'Y'},
	{'R', 'E'}: {'S', 'D', 'A'},
	{'O', 'N'}: {'E', 'S', 'G'},
	{'S', 'T'}: {'A', 'E', 'R'},
	{'C', 'H'}: {'A', 'E', 'I'},
	{'Q', 'U'}: {'E', 'I', 'A'},
}

// Continuations returns the letters that commonly follow p, or nil for
// pairs outside the table. The slice is shared; callers must not
// modify it.
func Continuations(p Pair) []Letter {
	return continuations[p]
}
