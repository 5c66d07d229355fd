package randomness

import (
	"reflect"
	"testing"

	"drawlab/adapters/stats/frequency"
	"drawlab/domain/analysis"
	"drawlab/internal/testkit"
)

func TestSuite_RunsAllFiveTests(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(150, variant, 21)
	freq := frequency.New().Analyze(history, variant, frequency.Options{GameType: variant.GameType})

	report := NewSuite().Run(freq, history, SuiteOptions{})

	if report.ChiSquare.TestName != "chi_square" {
		t.Error("chi-square result missing")
	}
	if report.KolmogorovSmirnov.TestName != "kolmogorov_smirnov" {
		t.Error("KS result missing")
	}
	if len(report.RunsTests) != 3 {
		t.Fatalf("default battery should run 3 runs-test policies, got %d", len(report.RunsTests))
	}
	if report.Autocorrelation.TestName != "autocorrelation" {
		t.Error("autocorrelation result missing")
	}
	if report.Entropy.TestName != "shannon_entropy" {
		t.Error("entropy result missing")
	}

	for _, result := range []analysis.TestResult{
		report.ChiSquare.TestResult,
		report.KolmogorovSmirnov.TestResult,
		report.Autocorrelation.TestResult,
	} {
		if result.PValue < 0 || result.PValue > 1 {
			t.Errorf("%s: p-value %f outside [0,1]", result.TestName, result.PValue)
		}
	}
}

func TestSuite_UniformHistoryLooksRandom(t *testing.T) {
	variant := testkit.LottoVariant()
	// Rotating 6-number blocks over 147 draws: every number appears
	// exactly 18 times, an exactly uniform table.
	sets := make([][]int, 147)
	for i := range sets {
		numbers := make([]int, variant.PickCount)
		for j := range numbers {
			numbers[j] = (i*variant.PickCount+j)%variant.MaxNumber + 1
		}
		sets[i] = numbers
	}
	history := testkit.HistoryFromNumbers(sets, variant)
	freq := frequency.New().Analyze(history, variant, frequency.Options{GameType: variant.GameType})

	report := NewSuite().Run(freq, history, SuiteOptions{})

	if report.ChiSquare.Statistic != 0 || report.ChiSquare.PValue != 1.0 {
		t.Errorf("exactly uniform table should give stat=0 p=1, got stat=%f p=%f",
			report.ChiSquare.Statistic, report.ChiSquare.PValue)
	}
	if !report.ChiSquare.AppearsRandom {
		t.Error("uniform history rejected by chi-square")
	}
	if !report.Entropy.AppearsRandom {
		t.Errorf("uniform history entropy too low, normalized=%f", report.Entropy.Normalized)
	}
	if !report.Summary.AppearsRandom {
		t.Error("summary verdict should follow chi-square")
	}
	if report.Summary.DataQuality != "Good" {
		t.Errorf("400 draws is a good sample, got %q", report.Summary.DataQuality)
	}
}

func TestSuite_RiggedHistoryRejected(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.RiggedHistory(49, 7, variant, 404)
	freq := frequency.New().Analyze(history, variant, frequency.Options{GameType: variant.GameType})

	report := NewSuite().Run(freq, history, SuiteOptions{})

	if report.ChiSquare.AppearsRandom {
		t.Errorf("100%%-frequency number should break uniformity, p=%f", report.ChiSquare.PValue)
	}
	if report.Summary.AppearsRandom {
		t.Error("summary should reject the rigged history")
	}
	if report.Summary.ConfidenceLevel != "Not at 95%" {
		t.Errorf("confidence level = %q", report.Summary.ConfidenceLevel)
	}
}

func TestSuite_EmptyHistory(t *testing.T) {
	variant := testkit.LottoVariant()
	freq := frequency.New().Analyze(nil, variant, frequency.Options{GameType: variant.GameType})

	report := NewSuite().Run(freq, nil, SuiteOptions{})

	// Hypothesis tests treat no data as no evidence; entropy does not.
	if !report.ChiSquare.AppearsRandom || !report.KolmogorovSmirnov.AppearsRandom {
		t.Error("empty data should be non-evidence for chi-square and KS")
	}
	if report.Entropy.AppearsRandom {
		t.Error("empty data must not appear random under entropy")
	}
	if report.Sample.TotalDraws != 0 || report.Sample.NumbersCovered != 0 {
		t.Errorf("sample info should be zero, got %+v", report.Sample)
	}
}

func TestSuite_Idempotent(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(100, variant, 77)
	freq := frequency.New().Analyze(history, variant, frequency.Options{GameType: variant.GameType})
	suite := NewSuite()

	first := suite.Run(freq, history, SuiteOptions{})
	second := suite.Run(freq, history, SuiteOptions{})

	if !reflect.DeepEqual(first, second) {
		t.Error("re-running the battery on unchanged input must be bit-identical")
	}
}

func TestSuite_SumScalar(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(90, variant, 8)
	freq := frequency.New().Analyze(history, variant, frequency.Options{GameType: variant.GameType})

	report := NewSuite().Run(freq, history, SuiteOptions{Scalar: ScalarSum})

	if report.Autocorrelation.SampleSize != len(history) {
		t.Errorf("sum scalar should yield one value per draw, got %d", report.Autocorrelation.SampleSize)
	}
}
