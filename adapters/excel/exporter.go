// Package excel renders analysis reports into an xlsx workbook, one
// sheet per report.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"drawlab/domain/analysis"
	"drawlab/internal/errors"
)

// Bundle is the set of reports one export covers.
type Bundle struct {
	Frequency   analysis.FrequencyReport
	Randomness  analysis.RandomnessReport
	Patterns    analysis.PatternReport
	Correlation analysis.CorrelationReport
}

// Exporter builds xlsx workbooks from analysis reports.
type Exporter struct{}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Write renders the bundle as a workbook onto w.
func (e *Exporter) Write(w io.Writer, bundle Bundle) error {
	f, err := e.build(bundle)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return errors.WithCode(errors.CodeExportError, errors.Wrap(err, "writing workbook"))
	}
	return nil
}

// SaveFile renders the bundle as a workbook at path.
func (e *Exporter) SaveFile(path string, bundle Bundle) error {
	f, err := e.build(bundle)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return errors.WithCode(errors.CodeExportError, errors.Wrap(err, "saving workbook"))
	}
	return nil
}

func (e *Exporter) build(bundle Bundle) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeFrequencySheet(f, bundle.Frequency); err != nil {
		return nil, errors.WithCode(errors.CodeExportError, errors.Wrap(err, "frequency sheet"))
	}
	if err := e.writeRandomnessSheet(f, bundle.Randomness); err != nil {
		return nil, errors.WithCode(errors.CodeExportError, errors.Wrap(err, "randomness sheet"))
	}
	if err := e.writePatternsSheet(f, bundle.Patterns); err != nil {
		return nil, errors.WithCode(errors.CodeExportError, errors.Wrap(err, "patterns sheet"))
	}
	if err := e.writeCorrelationSheet(f, bundle.Correlation); err != nil {
		return nil, errors.WithCode(errors.CodeExportError, errors.Wrap(err, "correlation sheet"))
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func (e *Exporter) writeFrequencySheet(f *excelize.File, report analysis.FrequencyReport) error {
	const sheet = "Frequency"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Number", "Observed", "Expected", "Delta", "Z-Score", "Hot", "Cold"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, stat := range report.Numbers {
		row := []interface{}{stat.Number, stat.Observed, stat.Expected, stat.Delta, stat.ZScore, stat.Hot, stat.Cold}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeRandomnessSheet(f *excelize.File, report analysis.RandomnessReport) error {
	const sheet = "Randomness"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Test", "Statistic", "P-Value", "Appears Random"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	rows := [][]interface{}{
		{report.ChiSquare.TestName, report.ChiSquare.Statistic, report.ChiSquare.PValue, report.ChiSquare.AppearsRandom},
		{report.KolmogorovSmirnov.TestName, report.KolmogorovSmirnov.Statistic, report.KolmogorovSmirnov.PValue, report.KolmogorovSmirnov.AppearsRandom},
	}
	for _, runs := range report.RunsTests {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%s (%s)", runs.TestName, runs.Policy), runs.Statistic, runs.PValue, runs.AppearsRandom,
		})
	}
	rows = append(rows,
		[]interface{}{report.Autocorrelation.TestName, report.Autocorrelation.Statistic, report.Autocorrelation.PValue, report.Autocorrelation.AppearsRandom},
		[]interface{}{report.Entropy.TestName, report.Entropy.Statistic, "", report.Entropy.AppearsRandom},
	)
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	summary := []interface{}{"Overall", "", "", report.Summary.AppearsRandom}
	return f.SetSheetRow(sheet, fmt.Sprintf("A%d", len(rows)+3), &summary)
}

func (e *Exporter) writePatternsSheet(f *excelize.File, report analysis.PatternReport) error {
	const sheet = "Patterns"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Draws analyzed", report.DrawsAnalyzed},
		{"Consecutive sequences", report.Consecutive.TotalSequences},
		{"Longest consecutive run", report.Consecutive.MaxLength},
		{"Arithmetic sequences", report.Arithmetic.TotalSequences},
		{"Draws with repeated ending digit", report.Digits.DrawsWithRepeatedEnd},
		{"Ending-digit repeat rate", report.Digits.RepeatRate},
		{"Sum mean", report.Sums.Mean},
		{"Sum median", report.Sums.Median},
		{"Sum std dev", report.Sums.StdDev},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeCorrelationSheet(f *excelize.File, report analysis.CorrelationReport) error {
	const sheet = "Correlation"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Number A", "Number B", "r", "P-Value"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, pair := range report.SignificantPairs {
		row := []interface{}{pair.Number1, pair.Number2, pair.R, pair.PValue}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
