package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"drawlab/domain/analysis"
)

func TestWriteWorkbook(t *testing.T) {
	bundle := Bundle{
		Frequency: analysis.FrequencyReport{
			Numbers: []analysis.NumberStat{
				{Number: 1, Observed: 12, Expected: 10.5, Delta: 1.5, ZScore: 0.4},
				{Number: 2, Observed: 30, Expected: 10.5, Delta: 19.5, ZScore: 3.1, Hot: true},
			},
		},
		Randomness: analysis.RandomnessReport{
			ChiSquare: analysis.ChiSquareResult{
				TestResult: analysis.TestResult{TestName: "chi_square", Statistic: 42.1, PValue: 0.7, AppearsRandom: true},
			},
			KolmogorovSmirnov: analysis.KSResult{
				TestResult: analysis.TestResult{TestName: "kolmogorov_smirnov", Statistic: 0.05, PValue: 0.9, AppearsRandom: true},
			},
			RunsTests: []analysis.RunsResult{
				{TestResult: analysis.TestResult{TestName: "runs", Statistic: -0.3, PValue: 0.76, AppearsRandom: true}, Policy: analysis.RunsMedian},
			},
		},
		Patterns: analysis.PatternReport{DrawsAnalyzed: 100},
		Correlation: analysis.CorrelationReport{
			SignificantPairs: []analysis.SignificantPair{
				{Number1: 3, Number2: 9, R: 0.21, PValue: 0.01},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewExporter().Write(&buf, bundle))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Frequency", "Randomness", "Patterns", "Correlation"}, f.GetSheetList())

	number, err := f.GetCellValue("Frequency", "A3")
	require.NoError(t, err)
	assert.Equal(t, "2", number)

	test, err := f.GetCellValue("Randomness", "A2")
	require.NoError(t, err)
	assert.Equal(t, "chi_square", test)

	pair, err := f.GetCellValue("Correlation", "B2")
	require.NoError(t, err)
	assert.Equal(t, "9", pair)
}
