package letters

import "testing"

func TestTargetPercentsSumToRoughlyHundred(t *testing.T) {
	var sum float64
	for _, l := range All() {
		sum += TargetPercent(l)
	}
	if sum < 99.5 || sum > 100.5 {
		t.Fatalf("target percents sum to %f, want ~100", sum)
	}
}

func TestRadiusMonotonicInFrequency(t *testing.T) {
	for _, a := range All() {
		for _, b := range All() {
			if TargetPercent(a) < TargetPercent(b) && Radius(a) > Radius(b) {
				t.Errorf("radius not monotonic: %c (%.2f%% -> %.1f) vs %c (%.2f%% -> %.1f)",
					a, TargetPercent(a), Radius(a), b, TargetPercent(b), Radius(b))
			}
		}
	}
}

func TestRadiusBounds(t *testing.T) {
	for _, l := range All() {
		r := Radius(l)
		if r < minRadius || r > maxRadius {
			t.Errorf("radius of %c out of bounds: %f", l, r)
		}
	}
	if Radius('E') != maxRadius {
		t.Errorf("E should anchor the top of the scale, got %f", Radius('E'))
	}
}

func TestVowelUnits(t *testing.T) {
	if VowelUnits('A') != 1 || VowelUnits('U') != 1 {
		t.Error("full vowels should count 1 unit")
	}
	if VowelUnits('Y') != 0.2 {
		t.Errorf("Y should count 0.2 units, got %f", VowelUnits('Y'))
	}
	if VowelUnits('T') != 0 {
		t.Error("consonants should count 0 vowel units")
	}
	if ConsonantUnits('Y') != 0.8 {
		t.Errorf("Y should count 0.8 consonant units, got %f", ConsonantUnits('Y'))
	}
}

func TestBigramTableWellFormed(t *testing.T) {
	seen := make(map[Pair]bool)
	hasQU := false
	for _, b := range Bigrams() {
		if Index(b.Pair[0]) < 0 || Index(b.Pair[1]) < 0 {
			t.Errorf("bigram %s contains untracked letter", b.Pair)
		}
		if b.Weight < 1 || b.Weight > 10 {
			t.Errorf("bigram %s has weight %d outside 1..10", b.Pair, b.Weight)
		}
		if seen[b.Pair] {
			t.Errorf("duplicate bigram %s", b.Pair)
		}
		seen[b.Pair] = true
		if b.Pair.String() == "QU" {
			hasQU = true
		}
	}
	if len(seen) < 60 {
		t.Errorf("bigram table suspiciously small: %d entries", len(seen))
	}
	if !hasQU {
		t.Error("bigram table must contain QU")
	}
}

func TestContinuationsCoverTopBigrams(t *testing.T) {
	for _, s := range []string{"TH", "IN", "QU"} {
		p := Pair{Letter(s[0]), Letter(s[1])}
		if len(Continuations(p)) == 0 {
			t.Errorf("expected continuations for %s", s)
		}
	}
	if Continuations(Pair{'Z', 'Q'}) != nil {
		t.Error("unlisted pair should have no continuations")
	}
}

func TestUntrackedByteIsInert(t *testing.T) {
	if Index('a') != -1 {
		t.Error("lowercase bytes are untracked")
	}
	if TargetPercent('?') != 0 || Value('?') != 0 {
		t.Error("untracked bytes should return zero values")
	}
	if Radius('?') != minRadius {
		t.Error("untracked bytes should get the minimum radius")
	}
}

func TestPairString(t *testing.T) {
	p := Pair{'Q', 'U'}
	if p.String() != "QU" {
		t.Errorf("got %q", p.String())
	}
	if !(Pair{'L', 'L'}).Double() {
		t.Error("LL should report Double")
	}
	if (Pair{'Q', 'U'}).Double() {
		t.Error("QU should not report Double")
	}
}
