package spawn

import "fmt"

// Tuning collects every knob of the pair selector. The zero value is
// not usable; start from DefaultTuning and adjust.
type Tuning struct {
	// Candidates is how many distinct pairs are drawn from the bigram
	// pool per selection.
	Candidates int

	// RecencySize caps the recently-spawned-pair memory.
	RecencySize int

	// TargetVowelRatio is the vowel share the board is steered toward,
	// with VowelBand as the dead zone on each side where no vowel
	// correction applies.
	TargetVowelRatio float64
	VowelBand        float64

	// VowelUnitBonus is awarded per vowel-equivalent unit of the pair
	// when the board runs short of vowels, and per consonant-equivalent
	// unit when it runs over.
	VowelUnitBonus float64

	// DistributionWeight, BigramWeight and VowelWeight scale their
	// terms into the combined score; OverrepWeight and RecencyWeight
	// scale the two penalty terms, which are subtracted.
	DistributionWeight float64
	BigramWeight       float64
	VowelWeight        float64
	OverrepWeight      float64
	RecencyWeight      float64

	// EmptyBoardGain substitutes for the distribution term when no
	// discs exist yet, so early spawns are not dominated by it.
	EmptyBoardGain float64

	// ContinuationBonus is added to bigram goodness per continuation
	// letter of the pair already present on the board.
	ContinuationBonus float64

	// OverrepPerPoint is charged per percentage point a pair letter
	// already sits above its target share.
	OverrepPerPoint float64

	// RarePenalty is the flat charge for spawning Q, X, Z or J when
	// that letter is already at or above target.
	RarePenalty float64

	// QWithoutUPenalty punishes pairs that bring a Q without a U
	// beside it; QUBonus rewards exactly "QU".
	QWithoutUPenalty float64
	QUBonus          float64

	// OddDoublePenalty is charged for doubled letters outside the
	// common English doubles.
	OddDoublePenalty float64

	// Recency penalties: an occurrence in memory slot i (0 = newest)
	// costs max(RecencyFloor, RecencyBase - RecencyDecay*i).
	RecencyBase  float64
	RecencyDecay float64
	RecencyFloor float64
}

// DefaultTuning returns the shipped spawner behavior.
func DefaultTuning() Tuning {
	return Tuning{
		Candidates:         15,
		RecencySize:        10,
		TargetVowelRatio:   0.40,
		VowelBand:          0.05,
		VowelUnitBonus:     5,
		DistributionWeight: 2.0,
		BigramWeight:       1.5,
		VowelWeight:        1.0,
		OverrepWeight:      1.0,
		RecencyWeight:      1.0,
		EmptyBoardGain:     5,
		ContinuationBonus:  0.5,
		OverrepPerPoint:    2.0,
		RarePenalty:        9,
		QWithoutUPenalty:   20,
		QUBonus:            10,
		OddDoublePenalty:   3,
		RecencyBase:        15,
		RecencyDecay:       3,
		RecencyFloor:       2,
	}
}

// validate rejects settings that would make selection degenerate.
func (t Tuning) validate() error {
	if t.Candidates < 1 {
		return fmt.Errorf("tuning: candidates must be >= 1, got %d", t.Candidates)
	}
	if t.RecencySize < 0 {
		return fmt.Errorf("tuning: recency size must be >= 0, got %d", t.RecencySize)
	}
	if t.TargetVowelRatio < 0 || t.TargetVowelRatio > 1 {
		return fmt.Errorf("tuning: target vowel ratio must be in [0,1], got %f", t.TargetVowelRatio)
	}
	if t.VowelBand < 0 {
		return fmt.Errorf("tuning: vowel band must be >= 0, got %f", t.VowelBand)
	}
	return nil
}
