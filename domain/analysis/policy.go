package analysis

// Policy knobs shared by the analysis engines. These are deliberate
// thresholds, not derived constants; variant games that need different
// cutoffs override them per call via engine options.
const (
	// SignificanceLevel is the alpha for every hypothesis test:
	// p_value > SignificanceLevel reads as "appears random".
	SignificanceLevel = 0.05

	// HotColdZThreshold flags a number hot (z above) or cold (z below
	// the negation) under the binomial proportion z-test.
	HotColdZThreshold = 2.0

	// EntropyRandomCutoff is a heuristic: normalized Shannon entropy
	// above this reads as consistent with randomness. It is not a
	// hypothesis-test p-value.
	EntropyRandomCutoff = 0.9

	// MinPairCorrelation suppresses significant-but-negligible pairs
	// in the correlation report.
	MinPairCorrelation = 0.05
)
