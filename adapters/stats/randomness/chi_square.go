package randomness

import (
	"drawlab/domain/analysis"
	"drawlab/internal/stats"
)

// ChiSquare performs the chi-square goodness-of-fit test of the observed
// frequency table against the uniform distribution over all maxNumber
// categories.
//
// H0: observed frequencies follow the uniform distribution (random).
// H1: they do not.
//
// An empty table (total = 0) is no evidence against randomness: the test
// returns statistic 0, p-value 1, appears_random true.
func ChiSquare(frequencies map[int]int, maxNumber int) analysis.ChiSquareResult {
	total := 0
	for n := 1; n <= maxNumber; n++ {
		total += frequencies[n]
	}

	result := analysis.ChiSquareResult{
		TestResult: analysis.TestResult{
			TestName:      "chi_square",
			PValue:        1.0,
			AppearsRandom: true,
		},
		TotalObservations: total,
	}
	if total == 0 || maxNumber < 2 {
		return result
	}

	expected := float64(total) / float64(maxNumber)
	result.ExpectedFrequency = expected

	statistic := 0.0
	for n := 1; n <= maxNumber; n++ {
		diff := float64(frequencies[n]) - expected
		statistic += diff * diff / expected
	}

	df := maxNumber - 1
	result.Statistic = statistic
	result.DegreesOfFreedom = df
	result.PValue = stats.ChiSquarePValue(statistic, df)
	result.AppearsRandom = result.PValue > analysis.SignificanceLevel
	return result
}
