package score

import "sort"

// Report summarizes stored games for the scores browser.
type Report struct {
	Games          int
	TotalScore     int64
	TotalWords     int
	AvgScore       float64
	Best           *GameRecord
	BestWord       string
	BestWordPoints int
	TotalPlayMs    int64
}

// BuildReport aggregates game records into a Report. Games may be in
// any order.
func BuildReport(games []GameRecord) Report {
	var r Report
	r.Games = len(games)
	for i := range games {
		g := &games[i]
		r.TotalScore += int64(g.Score)
		r.TotalWords += g.Words
		r.TotalPlayMs += g.DurationMs
		if r.Best == nil || g.Score > r.Best.Score {
			r.Best = g
		}
		if g.BestWordPoints > r.BestWordPoints {
			r.BestWord = g.BestWord
			r.BestWordPoints = g.BestWordPoints
		}
	}
	if r.Games > 0 {
		r.AvgScore = float64(r.TotalScore) / float64(r.Games)
	}
	return r
}

// TopLettersByUse returns the n letters that appeared in the most
// committed words, ties broken alphabetically.
func TopLettersByUse(aggs []LetterAggregate, n int) []LetterAggregate {
	if n <= 0 {
		return nil
	}
	sorted := make([]LetterAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Used != sorted[j].Used {
			return sorted[i].Used > sorted[j].Used
		}
		return sorted[i].Letter < sorted[j].Letter
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// StickiestLetters returns the n letters most likely to clog the
// board: lowest use ratio among letters spawned at least minSpawned
// times.
func StickiestLetters(aggs []LetterAggregate, n int, minSpawned int64) []LetterAggregate {
	if n <= 0 {
		return nil
	}
	var eligible []LetterAggregate
	for _, a := range aggs {
		if a.Spawned >= minSpawned {
			eligible = append(eligible, a)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		ri, rj := eligible[i].UseRatio(), eligible[j].UseRatio()
		if ri != rj {
			return ri < rj
		}
		if eligible[i].Spawned != eligible[j].Spawned {
			return eligible[i].Spawned > eligible[j].Spawned
		}
		return eligible[i].Letter < eligible[j].Letter
	})
	if n > len(eligible) {
		n = len(eligible)
	}
	return eligible[:n]
}
