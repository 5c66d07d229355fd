package analysis

import (
	"drawlab/domain/core"
)

// ============================================================================
// FREQUENCY
// ============================================================================

// NumberStat carries per-number deviation metrics within a window.
type NumberStat struct {
	Number   int     `json:"number"`
	Observed int     `json:"observed"`
	Expected float64 `json:"expected"`
	Delta    float64 `json:"delta"`
	PctDelta float64 `json:"pct_delta"`
	ZScore   float64 `json:"z_score"`
	Hot      bool    `json:"hot"`
	Cold     bool    `json:"cold"`
}

// FrequencyReport is the Frequency Engine output.
// INVARIANTS:
// - Frequencies has a key for every number in [1, MaxNumber]
// - sum of Frequencies == PickCount * DrawCount
type FrequencyReport struct {
	GameType          core.GameType `json:"game_type"`
	MaxNumber         int           `json:"max_number"`
	PickCount         int           `json:"pick_count"`
	WindowDays        int           `json:"window_days,omitempty"`
	DrawCount         int           `json:"draw_count"`
	TotalObservations int           `json:"total_observations"`
	ExpectedPerNumber float64       `json:"expected_per_number"`
	Frequencies       map[int]int   `json:"frequencies"`
	Numbers           []NumberStat  `json:"numbers"` // ordered 1..MaxNumber
	HotNumbers        []int         `json:"hot_numbers"`
	ColdNumbers       []int         `json:"cold_numbers"`
	TopByDelta        []int         `json:"top_by_delta"`    // largest positive deviation
	BottomByDelta     []int         `json:"bottom_by_delta"` // largest negative deviation
}

// ============================================================================
// RANDOMNESS TESTS
// ============================================================================

// TestResult is the common shape of one randomness test: a statistic, a
// p-value and the verdict p_value > SignificanceLevel.
type TestResult struct {
	TestName         string  `json:"test_name"`
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom,omitempty"`
	PValue           float64 `json:"p_value"`
	AppearsRandom    bool    `json:"appears_random"`
}

// ChiSquareResult is the goodness-of-fit test against the uniform
// distribution over all categories.
type ChiSquareResult struct {
	TestResult
	ExpectedFrequency float64 `json:"expected_frequency"`
	TotalObservations int     `json:"total_observations"`
}

// KSResult is the Kolmogorov-Smirnov test against the discrete uniform.
type KSResult struct {
	TestResult
	CriticalValue float64 `json:"critical_value"`
	SampleSize    int     `json:"sample_size"`
}

// RunsPolicy selects how the scalar sequence is binarized for the runs test.
type RunsPolicy string

const (
	RunsMedian    RunsPolicy = "median"
	RunsEvenOdd   RunsPolicy = "even_odd"
	RunsHighLow   RunsPolicy = "high_low"
	RunsAscending RunsPolicy = "ascending"
)

// RunsResult is the Wald-Wolfowitz runs test on a binarized sequence.
type RunsResult struct {
	TestResult
	Policy       RunsPolicy `json:"policy"`
	ObservedRuns int        `json:"observed_runs"`
	ExpectedRuns float64    `json:"expected_runs"`
	N1           int        `json:"n1"`
	N2           int        `json:"n2"`
}

// LagCorrelation is one tested lag of the autocorrelation analysis.
type LagCorrelation struct {
	Lag         int     `json:"lag"`
	R           float64 `json:"r"`
	TStat       float64 `json:"t_stat"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// AutocorrelationResult reports per-lag serial correlation. The embedded
// statistic is the correlation at the most extreme lag; AppearsRandom
// holds only when no tested lag is significant.
type AutocorrelationResult struct {
	TestResult
	Lags            []LagCorrelation `json:"lags"`
	SignificantLags []int            `json:"significant_lags"`
	SampleSize      int              `json:"sample_size"`
}

// EntropyResult is the Shannon entropy measure. The verdict here is the
// heuristic Normalized > EntropyRandomCutoff, not a p-value threshold,
// and empty data yields AppearsRandom=false: entropy cannot assert
// randomness without observations, unlike the no-evidence convention of
// the hypothesis tests. PValue is therefore always 0 and not meaningful.
type EntropyResult struct {
	TestResult
	MaxEntropy float64 `json:"max_entropy"`
	Normalized float64 `json:"normalized"`
}

// SampleInfo summarizes the data volume behind a randomness report.
type SampleInfo struct {
	TotalDraws         int     `json:"total_draws"`
	TotalObservations  int     `json:"total_observations"`
	NumbersCovered     int     `json:"numbers_covered"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// RandomnessSummary is the headline verdict of a full suite run.
type RandomnessSummary struct {
	AppearsRandom   bool   `json:"appears_random"`
	ConfidenceLevel string `json:"confidence_level"`
	DataQuality     string `json:"data_quality"`
}

// RandomnessReport aggregates all five tests over one window.
type RandomnessReport struct {
	GameType          core.GameType         `json:"game_type"`
	WindowDays        int                   `json:"window_days,omitempty"`
	Sample            SampleInfo            `json:"sample_size"`
	ChiSquare         ChiSquareResult       `json:"chi_square_test"`
	KolmogorovSmirnov KSResult              `json:"kolmogorov_smirnov_test"`
	RunsTests         []RunsResult          `json:"runs_tests"`
	Autocorrelation   AutocorrelationResult `json:"autocorrelation"`
	Entropy           EntropyResult         `json:"entropy"`
	Summary           RandomnessSummary     `json:"summary"`
}

// ============================================================================
// PATTERNS
// ============================================================================

// ConsecutivePatterns summarizes step-1 runs inside draws.
type ConsecutivePatterns struct {
	TotalSequences int         `json:"total_sequences"`
	MaxLength      int         `json:"max_length"`
	AvgLength      float64     `json:"avg_length"`
	LengthCounts   map[int]int `json:"length_counts"`
}

// ArithmeticSequence is one constant-difference subsequence found in a draw.
type ArithmeticSequence struct {
	DrawNumber int64 `json:"draw_number"`
	Sequence   []int `json:"sequence"`
	Difference int   `json:"common_difference"`
	Length     int   `json:"length"`
}

// ArithmeticPatterns summarizes constant-difference subsequences.
type ArithmeticPatterns struct {
	TotalSequences    int                  `json:"total_sequences"`
	Sequences         []ArithmeticSequence `json:"sequences"`
	CommonDifferences map[int]int          `json:"common_differences"`
}

// DigitPatterns summarizes last-digit repetition inside draws.
type DigitPatterns struct {
	LastDigitCounts      map[int]int `json:"last_digit_counts"`
	DrawsWithRepeatedEnd int         `json:"draws_with_repeated_ending"`
	RepeatRate           float64     `json:"repeat_rate"`
}

// SumPatterns is the per-draw sum distribution.
type SumPatterns struct {
	Min       int         `json:"min"`
	Max       int         `json:"max"`
	Mean      float64     `json:"mean"`
	Median    float64     `json:"median"`
	StdDev    float64     `json:"std_dev"`
	Histogram map[int]int `json:"histogram"`
}

// PatternReport aggregates pattern detection over a draw set.
type PatternReport struct {
	GameType      core.GameType       `json:"game_type"`
	WindowDays    int                 `json:"window_days,omitempty"`
	DrawsAnalyzed int                 `json:"draws_analyzed"`
	Consecutive   ConsecutivePatterns `json:"consecutive_numbers"`
	Arithmetic    ArithmeticPatterns  `json:"arithmetic_sequences"`
	Digits        DigitPatterns       `json:"digit_patterns"`
	Sums          SumPatterns         `json:"sum_patterns"`
}

// ============================================================================
// CORRELATION
// ============================================================================

// SignificantPair is a number pair whose co-occurrence correlation passed
// both the t-test and the minimum magnitude threshold.
type SignificantPair struct {
	Number1 int     `json:"number1"`
	Number2 int     `json:"number2"`
	R       float64 `json:"correlation"`
	TStat   float64 `json:"t_stat"`
	PValue  float64 `json:"p_value"`
}

// CorrelationSummary describes the off-diagonal correlation mass.
type CorrelationSummary struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// CorrelationReport is the pairwise co-occurrence analysis.
// INVARIANTS: Matrix is MaxNumber x MaxNumber, symmetric, diagonal 1.0,
// all entries in [-1, 1].
type CorrelationReport struct {
	GameType           core.GameType      `json:"game_type"`
	WindowDays         int                `json:"window_days,omitempty"`
	DrawCount          int                `json:"draw_count"`
	MaxNumber          int                `json:"max_number"`
	Matrix             [][]float64        `json:"correlation_matrix"`
	SignificantPairs   []SignificantPair  `json:"significant_pairs"`
	Summary            CorrelationSummary `json:"summary"`
	InsufficientSample bool               `json:"insufficient_sample"`
}

// ============================================================================
// MONTE CARLO
// ============================================================================

// SimulationRun is the outcome of one synthetic draw batch.
type SimulationRun struct {
	ChiSquare     float64 `json:"chi_square"`
	PValue        float64 `json:"p_value"`
	AppearsRandom bool    `json:"appears_random"`
}

// SimulationReport aggregates Monte Carlo runs. Unlike every other report
// in this package, the values vary run to run; only their distribution is
// stable.
type SimulationReport struct {
	Runs          int     `json:"runs"`
	DrawsPerRun   int     `json:"draws_per_run"`
	PickCount     int     `json:"pick_count"`
	MaxNumber     int     `json:"max_number"`
	MeanChiSquare float64 `json:"mean_chi_square"`
	MeanPValue    float64 `json:"mean_p_value"`
	RandomRuns    int     `json:"random_runs"`
	RandomPct     float64 `json:"random_pct"`
}
