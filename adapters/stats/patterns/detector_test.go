package patterns

import (
	"reflect"
	"testing"

	"drawlab/internal/testkit"
)

func TestDetectConsecutive(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.HistoryFromNumbers([][]int{
		{4, 5, 6, 20, 30, 40},  // one run of 3
		{1, 2, 9, 10, 33, 48},  // two runs of 2
		{7, 14, 21, 28, 35, 42}, // no runs
	}, variant)

	report := New().Analyze(history, Options{GameType: variant.GameType})

	if report.Consecutive.TotalSequences != 3 {
		t.Errorf("total sequences = %d, want 3", report.Consecutive.TotalSequences)
	}
	if report.Consecutive.MaxLength != 3 {
		t.Errorf("max length = %d, want 3", report.Consecutive.MaxLength)
	}
	if report.Consecutive.LengthCounts[2] != 2 || report.Consecutive.LengthCounts[3] != 1 {
		t.Errorf("length counts = %v, want 2:2 3:1", report.Consecutive.LengthCounts)
	}
	wantAvg := (3.0 + 2.0 + 2.0) / 3.0
	if report.Consecutive.AvgLength != wantAvg {
		t.Errorf("avg length = %f, want %f", report.Consecutive.AvgLength, wantAvg)
	}
}

func TestDetectConsecutive_UnsortedInput(t *testing.T) {
	variant := testkit.LottoVariant()
	// Numbers arrive in draw order; the detector sorts per draw.
	history := testkit.HistoryFromNumbers([][]int{{6, 4, 5, 40, 30, 20}}, variant)

	report := New().Analyze(history, Options{GameType: variant.GameType})

	if report.Consecutive.TotalSequences != 1 || report.Consecutive.MaxLength != 3 {
		t.Errorf("expected the run 4-5-6, got %+v", report.Consecutive)
	}
}

func TestDetectArithmetic(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.HistoryFromNumbers([][]int{
		{5, 10, 15, 22, 31, 47}, // 5,10,15 with difference 5
		{2, 13, 24, 35, 41, 44}, // 2,13,24,35 with difference 11
	}, variant)

	report := New().Analyze(history, Options{GameType: variant.GameType})

	// Draw one contributes one window; draw two contributes the 4-term
	// window plus its two nested 3-term windows.
	if report.Arithmetic.TotalSequences != 4 {
		t.Fatalf("total sequences = %d, want 4", report.Arithmetic.TotalSequences)
	}
	if report.Arithmetic.CommonDifferences[5] != 1 {
		t.Errorf("difference 5 count = %d, want 1", report.Arithmetic.CommonDifferences[5])
	}
	if report.Arithmetic.CommonDifferences[11] != 3 {
		t.Errorf("difference 11 count = %d, want 3", report.Arithmetic.CommonDifferences[11])
	}

	maxLen := 0
	for _, seq := range report.Arithmetic.Sequences {
		if seq.Length > maxLen {
			maxLen = seq.Length
		}
	}
	if maxLen != 4 {
		t.Errorf("longest progression length = %d, want 4", maxLen)
	}
}

func TestDetectDigits(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.HistoryFromNumbers([][]int{
		{7, 17, 23, 31, 44, 48}, // 7 and 17 share ending 7
		{1, 12, 23, 34, 45, 6},  // all endings distinct
	}, variant)

	report := New().Analyze(history, Options{GameType: variant.GameType})

	if report.Digits.DrawsWithRepeatedEnd != 1 {
		t.Errorf("draws with repeated ending = %d, want 1", report.Digits.DrawsWithRepeatedEnd)
	}
	if report.Digits.RepeatRate != 0.5 {
		t.Errorf("repeat rate = %f, want 0.5", report.Digits.RepeatRate)
	}
	if report.Digits.LastDigitCounts[7] != 2 {
		t.Errorf("ending digit 7 count = %d, want 2", report.Digits.LastDigitCounts[7])
	}
}

func TestDetectSums(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.HistoryFromNumbers([][]int{
		{1, 2, 3, 4, 5, 6},       // sum 21
		{1, 2, 3, 4, 5, 27},      // sum 42
		{44, 45, 46, 47, 48, 49}, // sum 279
	}, variant)

	report := New().Analyze(history, Options{GameType: variant.GameType})

	if report.Sums.Min != 21 || report.Sums.Max != 279 {
		t.Errorf("sum range = [%d, %d], want [21, 279]", report.Sums.Min, report.Sums.Max)
	}
	if want := (21.0 + 42.0 + 279.0) / 3.0; report.Sums.Mean != want {
		t.Errorf("mean = %f, want %f", report.Sums.Mean, want)
	}
	if report.Sums.Median != 42 {
		t.Errorf("median = %f, want 42", report.Sums.Median)
	}
	if report.Sums.Histogram[21] != 1 || report.Sums.Histogram[42] != 1 || report.Sums.Histogram[279] != 1 {
		t.Errorf("histogram = %v", report.Sums.Histogram)
	}
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	report := New().Analyze(nil, Options{GameType: "lotto"})

	if report.DrawsAnalyzed != 0 {
		t.Errorf("draws analyzed = %d, want 0", report.DrawsAnalyzed)
	}
	if report.Consecutive.TotalSequences != 0 || report.Arithmetic.TotalSequences != 0 {
		t.Error("empty history should yield empty pattern counts")
	}
	if report.Digits.RepeatRate != 0 {
		t.Errorf("repeat rate = %f, want 0", report.Digits.RepeatRate)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(80, variant, 52)
	detector := New()
	opts := Options{GameType: variant.GameType}

	first := detector.Analyze(history, opts)
	second := detector.Analyze(history, opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("re-running the detector on unchanged input must be bit-identical")
	}
}
