// Package letters holds the static English letter model: target board
// frequencies, vowel weights, disc radii, point values and the curated
// bigram tables the spawner draws from. Everything here is data; the
// package has no state.
package letters

import "math"

// Letter is an uppercase ASCII letter 'A'..'Z'.
type Letter byte

// Count is the number of tracked letters.
const Count = 26

// Pair is an ordered two-letter combination. Order is significant:
// "QU" and "UQ" are different pairs.
type Pair [2]Letter

// String returns the pair as a two-character string.
func (p Pair) String() string {
	return string([]byte{byte(p[0]), byte(p[1])})
}

// Double reports whether both letters of the pair are the same.
func (p Pair) Double() bool {
	return p[0] == p[1]
}

// Index maps a letter to 0..25, or -1 if it is not 'A'..'Z'.
func Index(l Letter) int {
	if l < 'A' || l > 'Z' {
		return -1
	}
	return int(l - 'A')
}

// All returns the tracked letters in alphabetical order.
func All() []Letter {
	out := make([]Letter, Count)
	for i := range out {
		out[i] = Letter('A' + i)
	}
	return out
}

// targetPercent is the desired share of each letter on a healthy board,
// in percent. The values follow standard English text frequencies and
// sum to ~100.
var targetPercent = [Count]float64{
	'A' - 'A': 8.2,
	'B' - 'A': 1.5,
	'C' - 'A': 2.8,
	'D' - 'A': 4.3,
	'E' - 'A': 12.7,
	'F' - 'A': 2.2,
	'G' - 'A': 2.0,
	'H' - 'A': 6.1,
	'I' - 'A': 7.0,
	'J' - 'A': 0.15,
	'K' - 'A': 0.77,
	'L' - 'A': 4.0,
	'M' - 'A': 2.4,
	'N' - 'A': 6.7,
	'O' - 'A': 7.5,
	'P' - 'A': 1.9,
	'Q' - 'A': 0.1,
	'R' - 'A': 6.0,
	'S' - 'A': 6.3,
	'T' - 'A': 9.1,
	'U' - 'A': 2.8,
	'V' - 'A': 1.0,
	'W' - 'A': 2.4,
	'X' - 'A': 0.15,
	'Y' - 'A': 2.0,
	'Z' - 'A': 0.07,
}

// value is the point value of each letter, higher for rarer letters.
var value = [Count]int{
	'A' - 'A': 1,
	'B' - 'A': 3,
	'C' - 'A': 3,
	'D' - 'A': 2,
	'E' - 'A': 1,
	'F' - 'A': 4,
	'G' - 'A': 2,
	'H' - 'A': 4,
	'I' - 'A': 1,
	'J' - 'A': 8,
	'K' - 'A': 5,
	'L' - 'A': 1,
	'M' - 'A': 3,
	'N' - 'A': 1,
	'O' - 'A': 1,
	'P' - 'A': 3,
	'Q' - 'A': 10,
	'R' - 'A': 1,
	'S' - 'A': 1,
	'T' - 'A': 1,
	'U' - 'A': 1,
	'V' - 'A': 4,
	'W' - 'A': 4,
	'X' - 'A': 8,
	'Y' - 'A': 4,
	'Z' - 'A': 10,
}

// Disc radii interpolate between these bounds by target frequency, so
// common letters are bigger and easier to hit.
const (
	minRadius = 16.0
	maxRadius = 26.0
)

// maxTargetPercent anchors the top of the radius scale (the E share).
const maxTargetPercent = 12.7

// TargetPercent returns the target board share of l in percent, or 0
// for an untracked byte.
func TargetPercent(l Letter) float64 {
	i := Index(l)
	if i < 0 {
		return 0
	}
	return targetPercent[i]
}

// Value returns the point value of l, or 0 for an untracked byte.
func Value(l Letter) int {
	i := Index(l)
	if i < 0 {
		return 0
	}
	return value[i]
}

// Radius returns the disc radius for l. The mapping is monotonic
// non-decreasing in target frequency; a square-root curve keeps rare
// letters from collapsing to indistinguishable sizes.
func Radius(l Letter) float64 {
	pct := TargetPercent(l)
	if pct <= 0 {
		return minRadius
	}
	frac := pct / maxTargetPercent
	if frac > 1 {
		frac = 1
	}
	return minRadius + (maxRadius-minRadius)*math.Sqrt(frac)
}

// VowelUnits returns how much of a vowel l counts as: 1 for A, E, I,
// O, U, 0.2 for the semi-vowel Y, 0 otherwise.
func VowelUnits(l Letter) float64 {
	switch l {
	case 'A', 'E', 'I', 'O', 'U':
		return 1
	case 'Y':
		return 0.2
	}
	return 0
}

// ConsonantUnits is the complement of VowelUnits for tracked letters.
func ConsonantUnits(l Letter) float64 {
	if Index(l) < 0 {
		return 0
	}
	return 1 - VowelUnits(l)
}

// IsRare reports whether l is one of the low-frequency letters that
// clog a board when oversupplied.
func IsRare(l Letter) bool {
	switch l {
	case 'Q', 'X', 'Z', 'J':
		return true
	}
	return false
}

// CommonDouble reports whether a doubled l is a normal English double
// (as in LL, EE, SS) rather than a dead pair.
func CommonDouble(l Letter) bool {
	switch l {
	case 'E', 'L', 'S', 'O', 'T', 'F':
		return true
	}
	return false
}
