package randomness

import (
	"math"

	"drawlab/domain/analysis"
)

// Entropy computes the Shannon entropy of the observed frequency table,
// H = -sum p_i * log2(p_i) over nonzero categories, normalized by the
// maximum log2(maxNumber).
//
// The verdict is the heuristic cutoff Normalized > EntropyRandomCutoff,
// not a hypothesis test: PValue stays 0. An empty table yields
// appears_random = false. That is the opposite of the other tests'
// empty-data convention and intentional: entropy measures evidence FOR
// uniformity, and with no observations there is none to assert.
func Entropy(frequencies map[int]int, maxNumber int) analysis.EntropyResult {
	result := analysis.EntropyResult{
		TestResult: analysis.TestResult{
			TestName: "shannon_entropy",
		},
	}
	if maxNumber < 2 {
		return result
	}
	result.MaxEntropy = math.Log2(float64(maxNumber))

	total := 0
	for n := 1; n <= maxNumber; n++ {
		total += frequencies[n]
	}
	if total == 0 {
		return result
	}

	h := 0.0
	for n := 1; n <= maxNumber; n++ {
		count := frequencies[n]
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		h -= p * math.Log2(p)
	}

	result.Statistic = h
	result.Normalized = h / result.MaxEntropy
	result.AppearsRandom = result.Normalized > analysis.EntropyRandomCutoff
	return result
}
