// Package stats renders series plots, sparklines and tables for the
// simulator report and the plain-text scores output.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"letterfall/internal/board"
	"letterfall/internal/letters"
	"letterfall/internal/score"
)

const sparkChars = " .:-=+*#%@"

// GameRates computes words-per-minute and points-per-word for a game.
func GameRates(rec score.GameRecord) (wordsPerMin, pointsPerWord float64) {
	if rec.DurationMs > 0 {
		minutes := float64(rec.DurationMs) / 60000.0
		wordsPerMin = float64(rec.Words) / minutes
	}
	if rec.Words > 0 {
		pointsPerWord = float64(rec.Score) / float64(rec.Words)
	}
	return wordsPerMin, pointsPerWord
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderGameSummary prints a summary block for the stored games.
func RenderGameSummary(w io.Writer, games []score.GameRecord) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	rep := score.BuildReport(games)
	var totalRate float64
	for _, g := range games {
		rate, _ := GameRates(g)
		totalRate += rate
	}
	count := float64(len(games))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", rep.Games); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Score: %.1f\n", rep.AvgScore); err != nil {
		return err
	}
	if rep.Best != nil {
		if _, err := fmt.Fprintf(w, "Best Score: %d\n", rep.Best.Score); err != nil {
			return err
		}
	}
	if rep.BestWord != "" {
		if _, err := fmt.Fprintf(w, "Best Word: %s (%d)\n", rep.BestWord, rep.BestWordPoints); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Avg Words/min: %.2f\n", totalRate/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderScoreCurves prints score and word-count curves across games,
// smoothed over window and sized to a given total width.
func RenderScoreCurves(w io.Writer, games []score.GameRecord, window, totalWidth, height int, useColor bool) error {
	if len(games) == 0 {
		return nil
	}
	scores := make([]float64, len(games))
	words := make([]float64, len(games))
	for i, g := range games {
		scores[i] = float64(g.Score)
		words[i] = float64(g.Words)
	}
	scores = MovingAverage(scores, window)
	words = MovingAverage(words, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Score Curves", []Series{
		{Name: "Score", Values: scores},
		{Name: "Words", Values: words},
	}, width, height, useColor)
}

// RenderLetterTable prints per-letter spawn/use aggregates, stickiest
// letters first.
func RenderLetterTable(w io.Writer, aggs []score.LetterAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No letter stats found.")
		return err
	}
	sorted := make([]score.LetterAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		ri, rj := sorted[i].UseRatio(), sorted[j].UseRatio()
		if ri == rj {
			return sorted[i].Letter < sorted[j].Letter
		}
		return ri < rj
	})

	if _, err := fmt.Fprintln(w, "Per-Letter"); err != nil {
		return err
	}
	headers := []string{"Letter", "Spawned", "Used", "Use %"}
	rows := make([][]string, 0, len(sorted))
	for _, a := range sorted {
		rows = append(rows, []string{
			a.Letter,
			fmt.Sprintf("%d", a.Spawned),
			fmt.Sprintf("%d", a.Used),
			fmt.Sprintf("%.1f%%", a.UseRatio()*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderBalanceTable prints board share against the reference share
// for every letter, largest gap first.
func RenderBalanceTable(w io.Writer, h board.Histogram) error {
	type row struct {
		letter letters.Letter
		count  int
		pct    float64
		target float64
	}
	rows := make([]row, 0, letters.Count)
	for _, l := range letters.All() {
		rows = append(rows, row{
			letter: l,
			count:  h.Count(l),
			pct:    h.Percent(l),
			target: letters.TargetPercent(l),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		gi := math.Abs(rows[i].pct - rows[i].target)
		gj := math.Abs(rows[j].pct - rows[j].target)
		if gi == gj {
			return rows[i].letter < rows[j].letter
		}
		return gi > gj
	})

	if _, err := fmt.Fprintln(w, "Board vs Target"); err != nil {
		return err
	}
	headers := []string{"Letter", "Discs", "Board %", "Target %"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			string(rune(r.letter)),
			fmt.Sprintf("%d", r.count),
			fmt.Sprintf("%.1f", r.pct),
			fmt.Sprintf("%.1f", r.target),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
