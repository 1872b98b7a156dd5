package spawn

import (
	"errors"
	"math/rand"
	"testing"

	"letterfall/internal/board"
	"letterfall/internal/geom"
	"letterfall/internal/letters"
)

func pairOf(s string) letters.Pair {
	return letters.Pair{letters.Letter(s[0]), letters.Letter(s[1])}
}

func poolOf(weights map[string]int) []letters.Bigram {
	out := make([]letters.Bigram, 0, len(weights))
	// Deterministic order for reproducible draws.
	for _, s := range []string{"TH", "HE", "ER", "NT", "EA", "ST", "QU", "QX", "EE", "ZZ"} {
		if w, ok := weights[s]; ok {
			out = append(out, letters.Bigram{Pair: pairOf(s), Weight: w})
		}
	}
	return out
}

func censusOf(word string) board.Histogram {
	discs := make([]*board.Disc, 0, len(word))
	for i, r := range word {
		discs = append(discs, board.New(board.DiscID(i), letters.Letter(r), geom.Vec2{}))
	}
	return board.Census(discs)
}

func TestNewSelectorRejectsEmptyPool(t *testing.T) {
	_, err := NewSelector(nil, DefaultTuning(), rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestNewSelectorRejectsBadTuning(t *testing.T) {
	tn := DefaultTuning()
	tn.Candidates = 0
	if _, err := NewSelector(letters.Bigrams(), tn, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for zero candidates")
	}
	tn = DefaultTuning()
	tn.TargetVowelRatio = 1.5
	if _, err := NewSelector(letters.Bigrams(), tn, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for vowel ratio above 1")
	}
}

func TestSelectPairOnEmptyBoard(t *testing.T) {
	s, err := NewSelector(letters.Bigrams(), DefaultTuning(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	var empty board.Histogram
	winner := s.SelectPair(empty)
	if letters.Index(winner[0]) < 0 || letters.Index(winner[1]) < 0 {
		t.Fatalf("winner %s contains untracked letters", winner)
	}
	cands := s.LastCandidates()
	if len(cands) != DefaultTuning().Candidates {
		t.Fatalf("drew %d candidates, want %d", len(cands), DefaultTuning().Candidates)
	}
	for _, c := range cands {
		if c.Breakdown.Distribution != DefaultTuning().EmptyBoardGain {
			t.Errorf("%s: empty-board distribution term %f, want %f",
				c.Pair, c.Breakdown.Distribution, DefaultTuning().EmptyBoardGain)
		}
		if c.Breakdown.Recency != 0 {
			t.Errorf("%s: first selection should see zero recency, got %f", c.Pair, c.Breakdown.Recency)
		}
	}
	recent := s.Recent()
	if len(recent) != 1 || recent[0] != winner {
		t.Fatalf("winner not recorded in memory: %v", recent)
	}
}

func TestSelectPairDeterministicPerSeed(t *testing.T) {
	mk := func() *Selector {
		s, err := NewSelector(letters.Bigrams(), DefaultTuning(), rand.New(rand.NewSource(99)))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	a, b := mk(), mk()
	h := censusOf("STRANGE")
	for i := 0; i < 8; i++ {
		pa, pb := a.SelectPair(h), b.SelectPair(h)
		if pa != pb {
			t.Fatalf("selection %d diverged: %s vs %s", i, pa, pb)
		}
	}
}

func TestOverrepresentedLetterScoresBelowDeficit(t *testing.T) {
	// Equal table weights isolate the board-driven terms. The board is
	// drowning in E while N and T are missing entirely.
	pool := poolOf(map[string]int{"ER": 5, "NT": 5})
	tn := DefaultTuning()
	tn.Candidates = 2
	s, err := NewSelector(pool, tn, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	h := censusOf("EEEEEEEEEE")
	s.SelectPair(h)
	cands := s.LastCandidates()
	var er, nt *Candidate
	for i := range cands {
		switch cands[i].Pair.String() {
		case "ER":
			er = &cands[i]
		case "NT":
			nt = &cands[i]
		}
	}
	if er == nil || nt == nil {
		t.Fatal("both candidates should have been drawn")
	}
	if nt.Score <= er.Score {
		t.Fatalf("NT (%f) should outscore ER (%f) on an E-flooded board", nt.Score, er.Score)
	}
	if er.Breakdown.Overrep <= 0 {
		t.Errorf("ER should carry an overrepresentation penalty, got %f", er.Breakdown.Overrep)
	}
}

func TestQUOutscoresQX(t *testing.T) {
	pool := poolOf(map[string]int{"QU": 3, "QX": 3})
	tn := DefaultTuning()
	tn.Candidates = 2
	for seed := int64(0); seed < 10; seed++ {
		s, err := NewSelector(pool, tn, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		if got := s.SelectPair(board.Histogram{}); got.String() != "QU" {
			t.Fatalf("seed %d: QX won over QU", seed)
		}
	}
}

func TestRecentWinnerIsAvoided(t *testing.T) {
	pool := poolOf(map[string]int{"TH": 10, "HE": 10})
	tn := DefaultTuning()
	tn.Candidates = 2
	s, err := NewSelector(pool, tn, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	var empty board.Histogram
	prev := s.SelectPair(empty)
	for i := 0; i < 6; i++ {
		next := s.SelectPair(empty)
		if next == prev {
			t.Fatalf("call %d repeated %s despite fresh recency penalty", i+2, next)
		}
		prev = next
	}
}

func TestVowelBalanceTermSwitchesDirection(t *testing.T) {
	pool := poolOf(map[string]int{"EA": 5, "ST": 5})
	tn := DefaultTuning()
	tn.Candidates = 2
	s, err := NewSelector(pool, tn, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}

	breakdownFor := func(h board.Histogram, pair string) Breakdown {
		s.SelectPair(h)
		for _, c := range s.LastCandidates() {
			if c.Pair.String() == pair {
				return c.Breakdown
			}
		}
		t.Fatalf("candidate %s not drawn", pair)
		return Breakdown{}
	}

	// Vowel-starved board: the vowel pair collects the bonus.
	if b := breakdownFor(censusOf("STRNGTH"), "EA"); b.Vowel != 10 {
		t.Errorf("EA on consonant board: vowel term %f, want 10", b.Vowel)
	}
	if b := breakdownFor(censusOf("STRNGTH"), "ST"); b.Vowel != 0 {
		t.Errorf("ST on consonant board: vowel term %f, want 0", b.Vowel)
	}
	// Vowel-flooded board: the consonant pair collects it instead.
	if b := breakdownFor(censusOf("AEIOUAEIOU"), "ST"); b.Vowel != 10 {
		t.Errorf("ST on vowel board: vowel term %f, want 10", b.Vowel)
	}
	if b := breakdownFor(censusOf("AEIOUAEIOU"), "EA"); b.Vowel != 0 {
		t.Errorf("EA on vowel board: vowel term %f, want 0", b.Vowel)
	}
}

func TestOddDoublePenalizedCommonDoubleNot(t *testing.T) {
	pool := poolOf(map[string]int{"EE": 1, "ZZ": 1})
	tn := DefaultTuning()
	tn.Candidates = 2
	s, err := NewSelector(pool, tn, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	s.SelectPair(censusOf("TRAIN"))
	for _, c := range s.LastCandidates() {
		switch c.Pair.String() {
		case "EE":
			if c.Breakdown.Overrep != 0 {
				t.Errorf("EE is a common double, overrep term %f, want 0", c.Breakdown.Overrep)
			}
		case "ZZ":
			// Odd double only; Z is rare but absent from the board.
			if c.Breakdown.Overrep != DefaultTuning().OddDoublePenalty {
				t.Errorf("ZZ overrep term %f, want %f", c.Breakdown.Overrep, DefaultTuning().OddDoublePenalty)
			}
		}
	}
}

func TestMemoryCapacityThroughSelector(t *testing.T) {
	pool := poolOf(map[string]int{"TH": 10, "HE": 10})
	tn := DefaultTuning()
	tn.Candidates = 2
	s, err := NewSelector(pool, tn, rand.New(rand.NewSource(13)))
	if err != nil {
		t.Fatal(err)
	}
	var empty board.Histogram
	for i := 0; i < 25; i++ {
		s.SelectPair(empty)
	}
	if got := len(s.Recent()); got != tn.RecencySize {
		t.Fatalf("memory grew to %d, capacity is %d", got, tn.RecencySize)
	}
	s.Reset()
	if len(s.Recent()) != 0 {
		t.Fatal("reset should clear the memory")
	}
}

func TestBagDrawsFollowFrequency(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(17)))
	counts := make(map[letters.Letter]int)
	for i := 0; i < 3000; i++ {
		p := b.SelectPair(board.Histogram{})
		counts[p[0]]++
		counts[p[1]]++
	}
	if counts['E'] <= counts['Z'] {
		t.Fatalf("E (%d) should be drawn far more often than Z (%d)", counts['E'], counts['Z'])
	}
	for l := range counts {
		if letters.Index(l) < 0 {
			t.Fatalf("bag produced untracked letter %q", l)
		}
	}
}
