package randomness

import (
	"math"

	"drawlab/domain/analysis"
	"drawlab/internal/stats"
)

// Runs performs the Wald-Wolfowitz runs test on the ordered scalar
// sequence after binarizing it with the given policy.
//
// R counts maximal constant subsequences; under H0 the expected run count
// is mu = 2*n1*n2/n + 1 with variance
// sigma^2 = 2*n1*n2*(2*n1*n2 - n) / (n^2 * (n-1)).
//
// A sequence with no variation (n1 = 0 or n2 = 0) has an undefined
// sigma; that degenerates to z = 0, p = 1 rather than an error, since no
// ordering pattern is detectable without both symbol types.
func Runs(sequence []int, maxNumber int, policy analysis.RunsPolicy) analysis.RunsResult {
	result := analysis.RunsResult{
		TestResult: analysis.TestResult{
			TestName:      "runs_" + string(policy),
			PValue:        1.0,
			AppearsRandom: true,
		},
		Policy: policy,
	}
	n := len(sequence)
	if n < 2 {
		return result
	}

	binary := binarize(sequence, maxNumber, policy)

	runs := 1
	for i := 1; i < len(binary); i++ {
		if binary[i] != binary[i-1] {
			runs++
		}
	}

	n1 := 0
	for _, b := range binary {
		n1 += b
	}
	n2 := n - n1

	result.ObservedRuns = runs
	result.N1 = n1
	result.N2 = n2

	if n1 == 0 || n2 == 0 {
		result.ExpectedRuns = 1.0
		return result
	}

	nf := float64(n)
	mu := 2*float64(n1)*float64(n2)/nf + 1
	variance := 2 * float64(n1) * float64(n2) * (2*float64(n1)*float64(n2) - nf) / (nf * nf * (nf - 1))
	result.ExpectedRuns = mu

	if variance <= 0 {
		return result
	}

	z := (float64(runs) - mu) / math.Sqrt(variance)
	result.Statistic = z
	result.PValue = stats.NormalTwoTailedPValue(z)
	result.AppearsRandom = result.PValue > analysis.SignificanceLevel
	return result
}

// binarize maps the scalar sequence to a 0/1 sequence under the policy.
func binarize(sequence []int, maxNumber int, policy analysis.RunsPolicy) []int {
	n := len(sequence)
	binary := make([]int, n)

	switch policy {
	case analysis.RunsEvenOdd:
		for i, x := range sequence {
			if x%2 == 0 {
				binary[i] = 1
			}
		}
	case analysis.RunsHighLow:
		threshold := float64(maxNumber) / 2
		for i, x := range sequence {
			if float64(x) > threshold {
				binary[i] = 1
			}
		}
	case analysis.RunsAscending:
		binary[0] = 1
		for i := 1; i < n; i++ {
			if sequence[i] > sequence[i-1] {
				binary[i] = 1
			}
		}
	default: // RunsMedian: split at the midpoint of [1, maxNumber]
		midpoint := (1 + float64(maxNumber)) / 2
		for i, x := range sequence {
			if float64(x) > midpoint {
				binary[i] = 1
			}
		}
	}
	return binary
}
