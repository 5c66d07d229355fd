// Package frequency counts number occurrences over a draw window and
// derives per-number deviation metrics and hot/cold flags.
package frequency

import (
	"math"
	"sort"

	"drawlab/domain/analysis"
	"drawlab/domain/core"
	"drawlab/domain/draw"
)

// Options narrows the analyzed window. The zero value means full history.
type Options struct {
	WindowDays int           // 0 means unbounded
	DateFrom   core.DrawDate // explicit bounds win over WindowDays
	DateTo     core.DrawDate
	GameType   core.GameType // empty means no game filter
}

// Engine is the frequency engine. Stateless; safe for concurrent use.
type Engine struct{}

// New creates a frequency engine.
func New() *Engine {
	return &Engine{}
}

// Analyze builds the frequency table and deviation metrics for the draws
// matching opts. A filter that matches nothing yields an all-zero table
// over the full [1, MaxNumber] range, not an error.
func (e *Engine) Analyze(history draw.History, variant draw.Variant, opts Options) analysis.FrequencyReport {
	selected := filterDraws(history, opts)

	counts := make(map[int]int, variant.MaxNumber)
	for n := 1; n <= variant.MaxNumber; n++ {
		counts[n] = 0
	}
	for _, d := range selected {
		for _, n := range d.Numbers {
			counts[n]++
		}
	}

	drawCount := len(selected)
	totalObs := variant.PickCount * drawCount
	expected := 0.0
	if variant.MaxNumber > 0 {
		expected = float64(totalObs) / float64(variant.MaxNumber)
	}

	report := analysis.FrequencyReport{
		GameType:          variant.GameType,
		MaxNumber:         variant.MaxNumber,
		PickCount:         variant.PickCount,
		WindowDays:        opts.WindowDays,
		DrawCount:         drawCount,
		TotalObservations: totalObs,
		ExpectedPerNumber: expected,
		Frequencies:       counts,
		Numbers:           make([]analysis.NumberStat, 0, variant.MaxNumber),
		HotNumbers:        []int{},
		ColdNumbers:       []int{},
	}

	// Binomial proportion z-test per number: p0 = 1/N, p-hat = observed/nTotal.
	p0 := 1.0 / float64(variant.MaxNumber)
	se := 0.0
	if totalObs > 0 {
		se = math.Sqrt(p0 * (1 - p0) / float64(totalObs))
	}

	for n := 1; n <= variant.MaxNumber; n++ {
		observed := counts[n]
		stat := analysis.NumberStat{
			Number:   n,
			Observed: observed,
			Expected: expected,
			Delta:    float64(observed) - expected,
		}
		if expected > 0 {
			stat.PctDelta = (float64(observed) - expected) / expected * 100.0
		}
		if totalObs > 0 && se > 0 {
			pHat := float64(observed) / float64(totalObs)
			stat.ZScore = (pHat - p0) / se
		}
		stat.Hot = stat.ZScore > analysis.HotColdZThreshold
		stat.Cold = stat.ZScore < -analysis.HotColdZThreshold
		if stat.Hot {
			report.HotNumbers = append(report.HotNumbers, n)
		}
		if stat.Cold {
			report.ColdNumbers = append(report.ColdNumbers, n)
		}
		report.Numbers = append(report.Numbers, stat)
	}

	report.TopByDelta, report.BottomByDelta = rankByDelta(report.Numbers, variant.PickCount)
	return report
}

// rankByDelta returns the topK numbers with the largest positive deviation
// and the topK with the largest negative deviation, each sorted ascending.
func rankByDelta(numbers []analysis.NumberStat, topK int) (top, bottom []int) {
	ranked := make([]analysis.NumberStat, len(numbers))
	copy(ranked, numbers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Delta > ranked[j].Delta
	})

	top = []int{}
	for _, s := range ranked {
		if s.Delta > 0 && len(top) < topK {
			top = append(top, s.Number)
		}
	}
	bottom = []int{}
	for i := len(ranked) - 1; i >= 0; i-- {
		if ranked[i].Delta < 0 && len(bottom) < topK {
			bottom = append(bottom, ranked[i].Number)
		}
	}
	sort.Ints(top)
	sort.Ints(bottom)
	return top, bottom
}

func filterDraws(history draw.History, opts Options) draw.History {
	from, to := opts.DateFrom, opts.DateTo
	if opts.WindowDays > 0 && from.IsZero() {
		if to.IsZero() {
			to = core.NewDrawDate(core.Now().Time())
		}
		from = to.AddDays(-(opts.WindowDays - 1))
	}

	selected := make(draw.History, 0, len(history))
	for _, d := range history {
		if opts.GameType != "" && d.GameType != opts.GameType {
			continue
		}
		if !from.IsZero() && d.Date.Before(from) {
			continue
		}
		if !to.IsZero() && d.Date.After(to) {
			continue
		}
		selected = append(selected, d)
	}
	return selected
}
