package sim

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunConverges(t *testing.T) {
	opts := DefaultOptions()
	opts.Rounds = 400
	opts.Seed = 3
	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Distance) != opts.Rounds || len(res.Vowels) != opts.Rounds || len(res.BoardSize) != opts.Rounds {
		t.Fatalf("series lengths = %d/%d/%d, want %d",
			len(res.Distance), len(res.Vowels), len(res.BoardSize), opts.Rounds)
	}
	if !res.Converging() {
		t.Fatalf("selector did not converge: early %.1f late %.1f",
			res.EarlyDistance(), res.LateDistance())
	}
	if ratio := res.Final.VowelRatio(); ratio < 0.15 || ratio > 0.65 {
		t.Errorf("final vowel ratio %.2f far from the target band", ratio)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Rounds = 120
	opts.Seed = 9
	a, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a.Final != b.Final {
		t.Fatalf("same seed produced different boards:\n%v\n%v", a.Final, b.Final)
	}
	for i := range a.Distance {
		if a.Distance[i] != b.Distance[i] {
			t.Fatalf("distance series diverged at round %d: %v vs %v",
				i, a.Distance[i], b.Distance[i])
		}
	}
}

func TestRunRespectsMaxDiscs(t *testing.T) {
	opts := DefaultOptions()
	opts.Rounds = 100
	opts.WordEvery = 0
	opts.MaxDiscs = 30
	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	total := res.Final.Total()
	if total < opts.MaxDiscs || total > opts.MaxDiscs+2 {
		t.Fatalf("final board size = %d, want close to cap %d", total, opts.MaxDiscs)
	}
}

func TestRunRejectsBadRounds(t *testing.T) {
	opts := DefaultOptions()
	opts.Rounds = 0
	if _, err := Run(opts); err == nil {
		t.Fatal("expected error for zero rounds")
	}
}

func TestReportSections(t *testing.T) {
	opts := DefaultOptions()
	opts.Rounds = 50
	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Report(&buf, res, 80, 6, false); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 50", "Verdict:", "Board Series", "Legend:", "Board vs Target"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
