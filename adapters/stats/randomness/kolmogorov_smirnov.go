package randomness

import (
	"math"
	"sort"

	"drawlab/domain/analysis"
)

// KolmogorovSmirnov compares the empirical distribution of observed
// numbers against the discrete uniform on [1, maxNumber].
//
// The sample is expanded from the frequency table (each number repeated
// by its count) and D is the maximum distance between the empirical CDF
// and the continuity-corrected theoretical CDF F(x) = (x - 0.5) / N.
// The p-value uses the asymptotic two-sided approximation
// p = 2 * exp(-2 * n * D^2), clamped to [0, 1].
func KolmogorovSmirnov(frequencies map[int]int, maxNumber int) analysis.KSResult {
	sample := expandSample(frequencies, maxNumber)
	n := len(sample)

	result := analysis.KSResult{
		TestResult: analysis.TestResult{
			TestName:      "kolmogorov_smirnov",
			PValue:        1.0,
			AppearsRandom: true,
		},
		SampleSize:    n,
		CriticalValue: 1.36,
	}
	if n == 0 {
		return result
	}

	sort.Ints(sample)

	// Check the CDF step from both sides at every sample point.
	d := 0.0
	for i, x := range sample {
		theoretical := (float64(x) - 0.5) / float64(maxNumber)
		upper := math.Abs(float64(i+1)/float64(n) - theoretical)
		lower := math.Abs(float64(i)/float64(n) - theoretical)
		if upper > d {
			d = upper
		}
		if lower > d {
			d = lower
		}
	}

	pValue := 2 * math.Exp(-2*float64(n)*d*d)
	if pValue > 1 {
		pValue = 1
	}
	if pValue < 0 {
		pValue = 0
	}
	if d < 1e-10 {
		pValue = 1.0
	}

	result.Statistic = d
	result.PValue = pValue
	result.AppearsRandom = pValue > analysis.SignificanceLevel
	result.CriticalValue = 1.36 / math.Sqrt(float64(n))
	return result
}

func expandSample(frequencies map[int]int, maxNumber int) []int {
	total := 0
	for n := 1; n <= maxNumber; n++ {
		if c := frequencies[n]; c > 0 {
			total += c
		}
	}
	sample := make([]int, 0, total)
	for n := 1; n <= maxNumber; n++ {
		for i := 0; i < frequencies[n]; i++ {
			sample = append(sample, n)
		}
	}
	return sample
}
