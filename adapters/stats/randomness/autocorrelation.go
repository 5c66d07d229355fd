package randomness

import (
	"math"

	"drawlab/domain/analysis"
	"drawlab/internal/stats"
)

// DefaultMaxLags caps the autocorrelation lag range at 1..min(10, n/3).
const DefaultMaxLags = 10

// Autocorrelation computes the Pearson autocorrelation of the ordered
// scalar sequence at each lag and tests each coefficient with
// t = r * sqrt(n-k-2) / sqrt(1-r^2) against Student's t with n-k-2
// degrees of freedom. Lags with n-k-2 <= 0 are skipped (insufficient
// data). The report is consistent with randomness only when no tested
// lag is significant.
//
// Pass nil lags to test the default range 1..min(DefaultMaxLags, n/3).
func Autocorrelation(sequence []int, lags []int) analysis.AutocorrelationResult {
	n := len(sequence)
	result := analysis.AutocorrelationResult{
		TestResult: analysis.TestResult{
			TestName:      "autocorrelation",
			PValue:        1.0,
			AppearsRandom: true,
		},
		Lags:            []analysis.LagCorrelation{},
		SignificantLags: []int{},
		SampleSize:      n,
	}
	if n < 2 {
		return result
	}

	if lags == nil {
		maxLag := n / 3
		if maxLag > DefaultMaxLags {
			maxLag = DefaultMaxLags
		}
		for k := 1; k <= maxLag; k++ {
			lags = append(lags, k)
		}
	}

	data := make([]float64, n)
	for i, x := range sequence {
		data[i] = float64(x)
	}

	maxAbsR := 0.0
	minP := 1.0
	for _, k := range lags {
		df := n - k - 2
		if k < 1 || k >= n || df <= 0 {
			continue
		}

		r := pearson(data[:n-k], data[k:])
		tStat := r * math.Sqrt(float64(df)) / math.Sqrt(1-r*r)
		if r*r >= 1 {
			tStat = math.Inf(1)
			if r < 0 {
				tStat = math.Inf(-1)
			}
		}
		pValue := stats.TTestPValue(tStat, df)

		lag := analysis.LagCorrelation{
			Lag:         k,
			R:           r,
			TStat:       tStat,
			PValue:      pValue,
			Significant: pValue < analysis.SignificanceLevel,
		}
		result.Lags = append(result.Lags, lag)

		if lag.Significant {
			result.SignificantLags = append(result.SignificantLags, k)
		}
		if math.Abs(r) >= maxAbsR {
			maxAbsR = math.Abs(r)
			result.Statistic = r
		}
		if pValue < minP {
			minP = pValue
		}
	}

	result.PValue = minP
	result.AppearsRandom = len(result.SignificantLags) == 0
	return result
}

// pearson computes the Pearson correlation of two equal-length series.
// Zero variance in either series yields 0.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
