// Package randomness implements the five statistical randomness tests:
// chi-square goodness-of-fit, Kolmogorov-Smirnov, runs, autocorrelation
// and Shannon entropy. Each test is a pure function of its inputs; the
// Suite fans the full battery out concurrently over one window.
package randomness

import (
	"drawlab/domain/analysis"
	"drawlab/domain/draw"
)

// SequenceScalar selects the per-draw scalar fed to the ordered-sequence
// tests (runs, autocorrelation).
type SequenceScalar string

const (
	ScalarFirstDrawn SequenceScalar = "first_drawn"
	ScalarSum        SequenceScalar = "sum"
)

// SuiteOptions configures a full battery run. The zero value uses the
// first-drawn scalar, the three classic runs policies and the default
// autocorrelation lag range.
type SuiteOptions struct {
	Scalar       SequenceScalar
	RunsPolicies []analysis.RunsPolicy
	Lags         []int
	WindowDays   int
}

// Suite runs the full randomness battery. Stateless; safe for concurrent
// use from multiple requests.
type Suite struct{}

// NewSuite creates a randomness test suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Run executes all five tests against one frequency table and its source
// history. The frequency-driven tests (chi-square, KS, entropy) consume
// the table; the ordered-sequence tests consume the scalar sequence
// extracted from the history in draw order.
func (s *Suite) Run(freq analysis.FrequencyReport, history draw.History, opts SuiteOptions) analysis.RandomnessReport {
	if opts.Scalar == "" {
		opts.Scalar = ScalarFirstDrawn
	}
	if len(opts.RunsPolicies) == 0 {
		opts.RunsPolicies = []analysis.RunsPolicy{
			analysis.RunsMedian,
			analysis.RunsEvenOdd,
			analysis.RunsHighLow,
		}
	}

	sequence := extractSequence(history, opts.Scalar)

	report := analysis.RandomnessReport{
		GameType:   freq.GameType,
		WindowDays: opts.WindowDays,
		RunsTests:  make([]analysis.RunsResult, len(opts.RunsPolicies)),
	}

	// The tests are independent pure functions, so the battery fans out
	// one goroutine per test and joins on completion.
	done := make(chan struct{})
	go func() {
		report.ChiSquare = ChiSquare(freq.Frequencies, freq.MaxNumber)
		done <- struct{}{}
	}()
	go func() {
		report.KolmogorovSmirnov = KolmogorovSmirnov(freq.Frequencies, freq.MaxNumber)
		done <- struct{}{}
	}()
	go func() {
		report.Entropy = Entropy(freq.Frequencies, freq.MaxNumber)
		done <- struct{}{}
	}()
	go func() {
		for i, policy := range opts.RunsPolicies {
			report.RunsTests[i] = Runs(sequence, freq.MaxNumber, policy)
		}
		done <- struct{}{}
	}()
	go func() {
		report.Autocorrelation = Autocorrelation(sequence, opts.Lags)
		done <- struct{}{}
	}()
	for i := 0; i < 5; i++ {
		<-done
	}

	report.Sample = sampleInfo(freq)
	report.Summary = summarize(report)
	return report
}

func extractSequence(history draw.History, scalar SequenceScalar) []int {
	if scalar == ScalarSum {
		return history.Sums()
	}
	return history.FirstDrawn()
}

func sampleInfo(freq analysis.FrequencyReport) analysis.SampleInfo {
	covered := 0
	for n := 1; n <= freq.MaxNumber; n++ {
		if freq.Frequencies[n] > 0 {
			covered++
		}
	}
	info := analysis.SampleInfo{
		TotalDraws:        freq.DrawCount,
		TotalObservations: freq.TotalObservations,
		NumbersCovered:    covered,
	}
	if freq.MaxNumber > 0 {
		info.CoveragePercentage = float64(covered) / float64(freq.MaxNumber) * 100.0
	}
	return info
}

func summarize(report analysis.RandomnessReport) analysis.RandomnessSummary {
	summary := analysis.RandomnessSummary{
		AppearsRandom: report.ChiSquare.AppearsRandom,
	}
	if report.ChiSquare.PValue > analysis.SignificanceLevel {
		summary.ConfidenceLevel = "95%"
	} else {
		summary.ConfidenceLevel = "Not at 95%"
	}
	if report.Sample.TotalDraws >= 100 {
		summary.DataQuality = "Good"
	} else {
		summary.DataQuality = "Limited sample"
	}
	return summary
}
