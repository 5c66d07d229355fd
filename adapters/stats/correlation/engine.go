// Package correlation builds the pairwise co-occurrence correlation
// matrix between lottery numbers and flags statistically significant
// pairs.
package correlation

import (
	"math"
	"sort"

	montstats "github.com/montanaflynn/stats"

	"drawlab/domain/analysis"
	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/stats"
)

// MinSampleSize is the smallest draw count for which pair significance
// is computable (the t-test needs n-2 > 0).
const MinSampleSize = 3

// Options labels the report; filtering happens upstream.
type Options struct {
	GameType   core.GameType
	WindowDays int
}

// Engine is the correlation engine. Stateless; safe for concurrent use.
type Engine struct{}

// New creates a correlation engine.
func New() *Engine {
	return &Engine{}
}

// Analyze computes the full MaxNumber x MaxNumber Pearson correlation
// matrix over binary presence indicators, one row per draw. Numbers with
// zero variance (never drawn, or drawn every time) correlate 0 with
// everything; the diagonal stays exactly 1.0 regardless.
//
// With n <= 2 draws significance cannot be computed: the matrix is still
// returned, all pairs are non-significant and InsufficientSample is set.
func (e *Engine) Analyze(history draw.History, variant draw.Variant, opts Options) analysis.CorrelationReport {
	n := len(history)
	maxNum := variant.MaxNumber

	report := analysis.CorrelationReport{
		GameType:         opts.GameType,
		WindowDays:       opts.WindowDays,
		DrawCount:        n,
		MaxNumber:        maxNum,
		SignificantPairs: []analysis.SignificantPair{},
	}

	presence := presenceMatrix(history, maxNum)
	matrix := correlationMatrix(presence, maxNum, n)
	report.Matrix = matrix

	if n < MinSampleSize {
		report.InsufficientSample = true
		report.Summary = summarize(matrix, maxNum)
		return report
	}

	for i := 0; i < maxNum; i++ {
		for j := i + 1; j < maxNum; j++ {
			r := matrix[i][j]
			if math.Abs(r) < analysis.MinPairCorrelation {
				continue
			}
			tStat := stats.CorrelationTStat(r, n)
			pValue := stats.TTestPValue(tStat, n-2)
			if pValue >= analysis.SignificanceLevel {
				continue
			}
			report.SignificantPairs = append(report.SignificantPairs, analysis.SignificantPair{
				Number1: i + 1,
				Number2: j + 1,
				R:       r,
				TStat:   tStat,
				PValue:  pValue,
			})
		}
	}

	sort.SliceStable(report.SignificantPairs, func(a, b int) bool {
		return math.Abs(report.SignificantPairs[a].R) > math.Abs(report.SignificantPairs[b].R)
	})

	report.Summary = summarize(matrix, maxNum)
	return report
}

// presenceMatrix builds the draws x numbers binary indicator matrix.
func presenceMatrix(history draw.History, maxNum int) [][]float64 {
	presence := make([][]float64, len(history))
	for i, d := range history {
		row := make([]float64, maxNum)
		for _, n := range d.Numbers {
			if n >= 1 && n <= maxNum {
				row[n-1] = 1
			}
		}
		presence[i] = row
	}
	return presence
}

// correlationMatrix computes the symmetric Pearson matrix over columns.
func correlationMatrix(presence [][]float64, maxNum, n int) [][]float64 {
	means := make([]float64, maxNum)
	for _, row := range presence {
		for j, v := range row {
			means[j] += v
		}
	}
	if n > 0 {
		for j := range means {
			means[j] /= float64(n)
		}
	}

	variances := make([]float64, maxNum)
	for _, row := range presence {
		for j, v := range row {
			d := v - means[j]
			variances[j] += d * d
		}
	}

	matrix := make([][]float64, maxNum)
	for i := range matrix {
		matrix[i] = make([]float64, maxNum)
		matrix[i][i] = 1.0
	}

	for i := 0; i < maxNum; i++ {
		for j := i + 1; j < maxNum; j++ {
			if variances[i] == 0 || variances[j] == 0 {
				continue // r stays 0 for degenerate columns
			}
			cov := 0.0
			for _, row := range presence {
				cov += (row[i] - means[i]) * (row[j] - means[j])
			}
			r := cov / math.Sqrt(variances[i]*variances[j])
			// Guard against floating-point drift outside [-1, 1].
			if r > 1 {
				r = 1
			}
			if r < -1 {
				r = -1
			}
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return matrix
}

// summarize reduces the upper off-diagonal triangle to mean/min/max.
func summarize(matrix [][]float64, maxNum int) analysis.CorrelationSummary {
	values := make([]float64, 0, maxNum*(maxNum-1)/2)
	for i := 0; i < maxNum; i++ {
		for j := i + 1; j < maxNum; j++ {
			values = append(values, matrix[i][j])
		}
	}
	if len(values) == 0 {
		return analysis.CorrelationSummary{}
	}
	mean, _ := montstats.Mean(values)
	min, _ := montstats.Min(values)
	max, _ := montstats.Max(values)
	return analysis.CorrelationSummary{Mean: mean, Min: min, Max: max}
}
