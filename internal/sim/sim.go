// Package sim drives the spawner headlessly so tuning changes can be
// judged without playing a game: rounds of pair selection run against
// a scripted consumption model, and the recorded series feed the text
// plots.
package sim

import (
	"fmt"
	"io"
	"math/rand"

	"letterfall/internal/board"
	"letterfall/internal/letters"
	"letterfall/internal/spawn"
	"letterfall/internal/stats"
)

// Options configures a simulation run.
type Options struct {
	// Rounds of spawning to simulate.
	Rounds int

	// PairsPerRound spawned each round while the board is under
	// MaxDiscs.
	PairsPerRound int

	// Every WordEvery rounds the model consumes WordLength letters,
	// standing in for a committed word.
	WordEvery  int
	WordLength int

	// MaxDiscs pauses spawning above this board size, mimicking a full
	// arena.
	MaxDiscs int

	Seed   int64
	Tuning spawn.Tuning
}

// DefaultOptions mirrors a casual game's pacing.
func DefaultOptions() Options {
	return Options{
		Rounds:        300,
		PairsPerRound: 1,
		WordEvery:     3,
		WordLength:    4,
		MaxDiscs:      40,
		Seed:          1,
		Tuning:        spawn.DefaultTuning(),
	}
}

// Result holds per-round series and the final board mix.
type Result struct {
	Rounds    int
	Final     board.Histogram
	Distance  []float64
	Vowels    []float64
	BoardSize []float64
}

// EarlyDistance averages the first quarter of the distance series.
func (r Result) EarlyDistance() float64 {
	return meanQuarter(r.Distance, false)
}

// LateDistance averages the last quarter of the distance series.
func (r Result) LateDistance() float64 {
	return meanQuarter(r.Distance, true)
}

// Converging reports whether the board moved toward the reference
// distribution over the run.
func (r Result) Converging() bool {
	return r.LateDistance() < r.EarlyDistance()
}

func meanQuarter(values []float64, last bool) float64 {
	if len(values) == 0 {
		return 0
	}
	q := len(values) / 4
	if q < 1 {
		q = 1
	}
	slice := values[:q]
	if last {
		slice = values[len(values)-q:]
	}
	var sum float64
	for _, v := range slice {
		sum += v
	}
	return sum / float64(len(slice))
}

// Run executes the simulation. The board is a pure histogram here; the
// selector never sees geometry, so none is needed.
func Run(opts Options) (Result, error) {
	if opts.Rounds <= 0 {
		return Result{}, fmt.Errorf("rounds must be positive, got %d", opts.Rounds)
	}
	rnd := rand.New(rand.NewSource(opts.Seed))
	sel, err := spawn.NewSelector(letters.Bigrams(), opts.Tuning, rnd)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build selector: %w", err)
	}

	var h board.Histogram
	res := Result{Rounds: opts.Rounds}
	for round := 0; round < opts.Rounds; round++ {
		if h.Total() < opts.MaxDiscs {
			for p := 0; p < opts.PairsPerRound; p++ {
				pair := sel.SelectPair(h)
				for _, l := range pair {
					if i := letters.Index(l); i >= 0 {
						h[i]++
					}
				}
			}
		}
		if opts.WordEvery > 0 && (round+1)%opts.WordEvery == 0 {
			consume(rnd, &h, opts.WordLength)
		}
		res.Distance = append(res.Distance, h.Distance())
		res.Vowels = append(res.Vowels, h.VowelRatio())
		res.BoardSize = append(res.BoardSize, float64(h.Total()))
	}
	res.Final = h
	return res, nil
}

// consume removes up to n letters the way a player would spend them:
// the draw is weighted by board count times reference frequency, so
// common letters drain fast and awkward ones linger.
func consume(rnd *rand.Rand, h *board.Histogram, n int) {
	for i := 0; i < n; i++ {
		var total float64
		for j, c := range h {
			total += float64(c) * letters.TargetPercent(letters.Letter('A'+j))
		}
		if total <= 0 {
			return
		}
		pick := rnd.Float64() * total
		var acc float64
		for j, c := range h {
			acc += float64(c) * letters.TargetPercent(letters.Letter('A'+j))
			if pick < acc && c > 0 {
				h[j]--
				break
			}
		}
	}
}

// Report writes the run verdict: headline numbers, the series plot and
// the final board-vs-target table.
func Report(w io.Writer, res Result, totalWidth, height int, useColor bool) error {
	if res.Rounds == 0 {
		_, err := fmt.Fprintln(w, "No rounds simulated.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Rounds: %d\n", res.Rounds); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Final discs: %d\n", res.Final.Total()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Distance early: %.1f  late: %.1f\n", res.EarlyDistance(), res.LateDistance()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Final vowel ratio: %.2f\n", res.Final.VowelRatio()); err != nil {
		return err
	}
	verdict := "diverging"
	if res.Converging() {
		verdict = "converging"
	}
	if _, err := fmt.Fprintf(w, "Verdict: %s\n\n", verdict); err != nil {
		return err
	}

	vowelPct := make([]float64, len(res.Vowels))
	for i, v := range res.Vowels {
		vowelPct[i] = v * 100
	}
	width := 0
	if totalWidth > 0 {
		width = stats.PlotWidthFor(totalWidth)
	}
	if err := stats.PlotSeriesWithColor(w, "Board Series", []stats.Series{
		{Name: "Distance", Values: res.Distance},
		{Name: "Vowel %", Values: vowelPct},
		{Name: "Discs", Values: res.BoardSize},
	}, width, height, useColor); err != nil {
		return err
	}
	return stats.RenderBalanceTable(w, res.Final)
}
