// Package stats provides the distribution helpers shared by the analysis
// engines. All exact p-values go through gonum's distuv so CDF behavior is
// consistent across tests; the single closed-form approximation lives here
// too so the Monte Carlo path does not duplicate it.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquarePValue computes the right-tail p-value for a chi-square
// statistic with the given degrees of freedom.
func ChiSquarePValue(chiSquare float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return clampProbability(1 - chiDist.CDF(chiSquare))
}

// TTestPValue computes the two-tailed p-value for a t-statistic using
// Student's t-distribution.
func TTestPValue(tStatistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(degreesOfFreedom)}
	return clampProbability(2 * (1 - tDist.CDF(math.Abs(tStatistic))))
}

// NormalTwoTailedPValue computes the two-tailed p-value for a z-score
// under the standard normal.
func NormalTwoTailedPValue(z float64) float64 {
	return clampProbability(2 * (1 - distuv.UnitNormal.CDF(math.Abs(z))))
}

// NormalCDF computes the standard normal CDF.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// CorrelationTStat transforms a Pearson coefficient into a t-statistic
// with sampleSize-2 degrees of freedom. Perfect correlations saturate to
// +/-Inf rather than dividing by zero.
func CorrelationTStat(r float64, sampleSize int) float64 {
	denom := 1 - r*r
	if denom <= 0 {
		return math.Inf(sign(r))
	}
	return r * math.Sqrt(float64(sampleSize-2)/denom)
}

// ChiSquarePValueApprox computes the right-tail chi-square p-value via the
// Wilson-Hilferty cube-root transform. Less accurate than the exact CDF;
// used by the Monte Carlo calibration path where a closed form is wanted.
func ChiSquarePValueApprox(chiSquare float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	if chiSquare <= 0 {
		return 1.0
	}
	df := float64(degreesOfFreedom)

	// For large df the plain normal approximation is already tight.
	if df > 100 {
		z := (chiSquare - df) / math.Sqrt(2*df)
		return clampProbability(1 - 0.5*(1+math.Erf(z/math.Sqrt2)))
	}

	z := (math.Cbrt(chiSquare/df) - (1 - 2/(9*df))) / math.Sqrt(2/(9*df))
	cdf := 0.5 * (1 + math.Erf(z/math.Sqrt2))
	return clampProbability(1 - cdf)
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
