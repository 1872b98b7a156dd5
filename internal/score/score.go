// Package score prices committed words and persists finished games.
package score

import (
	"time"

	"letterfall/internal/letters"
)

// Strategy labels stored with each game, so runs under different
// spawners can be compared.
const (
	StrategyBigram = "bigram"
	StrategyBag    = "bag"
)

// WordPoints prices a word: the sum of its letter values times a
// length multiplier that makes long words worth chasing.
func WordPoints(word string) int {
	base := 0
	for i := 0; i < len(word); i++ {
		base += letters.Value(letters.Letter(word[i]))
	}
	mult := len(word) - 2
	if mult < 1 {
		mult = 1
	}
	return base * mult
}

// GameRecord is one finished game.
type GameRecord struct {
	ID             int64
	StartedAt      time.Time
	EndedAt        time.Time
	Strategy       string
	Score          int
	Words          int
	BestWord       string
	BestWordPoints int
	DurationMs     int64
}

// LetterCount tracks one letter's traffic within a game: how many
// discs of it spawned and how many left the board inside words.
type LetterCount struct {
	Letter  string
	Spawned int
	Used    int
}

// LetterAggregate is LetterCount summed over several games.
type LetterAggregate struct {
	Letter  string
	Spawned int64
	Used    int64
}

// UseRatio is the share of spawned discs that ended up in words.
// Letters with a low ratio clog boards.
func (a LetterAggregate) UseRatio() float64 {
	if a.Spawned == 0 {
		return 0
	}
	return float64(a.Used) / float64(a.Spawned)
}
