// Package patterns scans draw sets for structural regularities:
// consecutive-number runs, arithmetic progressions, repeated ending
// digits and the per-draw sum distribution.
package patterns

import (
	montstats "github.com/montanaflynn/stats"

	"drawlab/domain/analysis"
	"drawlab/domain/core"
	"drawlab/domain/draw"
)

// MinConsecutiveLength is the shortest step-1 run worth reporting.
const MinConsecutiveLength = 2

// MinArithmeticLength is the shortest constant-difference subsequence
// worth reporting. Step-1 pairs are already covered by the consecutive
// scan, so arithmetic detection starts at 3.
const MinArithmeticLength = 3

// Options labels the report; the detector itself takes the draw set as-is.
type Options struct {
	GameType   core.GameType
	WindowDays int
}

// Detector is the pattern detector. Stateless; safe for concurrent use.
type Detector struct{}

// New creates a pattern detector.
func New() *Detector {
	return &Detector{}
}

// Analyze aggregates all pattern scans over the supplied draws.
func (d *Detector) Analyze(history draw.History, opts Options) analysis.PatternReport {
	return analysis.PatternReport{
		GameType:      opts.GameType,
		WindowDays:    opts.WindowDays,
		DrawsAnalyzed: len(history),
		Consecutive:   d.detectConsecutive(history),
		Arithmetic:    d.detectArithmetic(history),
		Digits:        d.detectDigits(history),
		Sums:          d.detectSums(history),
	}
}

// detectConsecutive finds maximal step-1 runs within each sorted draw.
func (d *Detector) detectConsecutive(history draw.History) analysis.ConsecutivePatterns {
	result := analysis.ConsecutivePatterns{
		LengthCounts: map[int]int{},
	}
	totalLength := 0

	for _, dr := range history {
		numbers := dr.SortedNumbers()
		runLength := 1
		for i := 1; i <= len(numbers); i++ {
			if i < len(numbers) && numbers[i] == numbers[i-1]+1 {
				runLength++
				continue
			}
			if runLength >= MinConsecutiveLength {
				result.TotalSequences++
				result.LengthCounts[runLength]++
				totalLength += runLength
				if runLength > result.MaxLength {
					result.MaxLength = runLength
				}
			}
			runLength = 1
		}
	}

	if result.TotalSequences > 0 {
		result.AvgLength = float64(totalLength) / float64(result.TotalSequences)
	}
	return result
}

// detectArithmetic records every contiguous subsequence of length >= 3
// with a constant difference in each sorted draw. Nested windows are
// reported individually, so a 4-term progression also yields its two
// 3-term windows. Quadratic in the pick count, which stays tiny.
func (d *Detector) detectArithmetic(history draw.History) analysis.ArithmeticPatterns {
	result := analysis.ArithmeticPatterns{
		Sequences:         []analysis.ArithmeticSequence{},
		CommonDifferences: map[int]int{},
	}

	for _, dr := range history {
		numbers := dr.SortedNumbers()
		for i := 0; i < len(numbers); i++ {
			for j := i + MinArithmeticLength; j <= len(numbers); j++ {
				window := numbers[i:j]
				diff, ok := constantDifference(window)
				if !ok {
					break // a longer window from i cannot recover
				}
				seq := make([]int, len(window))
				copy(seq, window)
				result.Sequences = append(result.Sequences, analysis.ArithmeticSequence{
					DrawNumber: dr.DrawNumber,
					Sequence:   seq,
					Difference: diff,
					Length:     len(seq),
				})
				result.CommonDifferences[diff]++
			}
		}
	}

	result.TotalSequences = len(result.Sequences)
	return result
}

func constantDifference(window []int) (int, bool) {
	diff := window[1] - window[0]
	for k := 2; k < len(window); k++ {
		if window[k]-window[k-1] != diff {
			return 0, false
		}
	}
	return diff, true
}

// detectDigits flags draws where two or more numbers share an ending digit.
func (d *Detector) detectDigits(history draw.History) analysis.DigitPatterns {
	result := analysis.DigitPatterns{
		LastDigitCounts: map[int]int{},
	}

	for _, dr := range history {
		perDraw := map[int]int{}
		for _, n := range dr.Numbers {
			digit := n % 10
			result.LastDigitCounts[digit]++
			perDraw[digit]++
		}
		for _, count := range perDraw {
			if count >= 2 {
				result.DrawsWithRepeatedEnd++
				break
			}
		}
	}

	if len(history) > 0 {
		result.RepeatRate = float64(result.DrawsWithRepeatedEnd) / float64(len(history))
	}
	return result
}

// detectSums aggregates the per-draw number sums into a histogram with
// summary statistics.
func (d *Detector) detectSums(history draw.History) analysis.SumPatterns {
	result := analysis.SumPatterns{
		Histogram: map[int]int{},
	}
	if len(history) == 0 {
		return result
	}

	sums := make([]float64, 0, len(history))
	result.Min = history[0].Sum()
	result.Max = result.Min
	for _, dr := range history {
		sum := dr.Sum()
		result.Histogram[sum]++
		sums = append(sums, float64(sum))
		if sum < result.Min {
			result.Min = sum
		}
		if sum > result.Max {
			result.Max = sum
		}
	}

	mean, _ := montstats.Mean(sums)
	median, _ := montstats.Median(sums)
	stdDev, _ := montstats.StandardDeviation(sums)
	result.Mean = mean
	result.Median = median
	result.StdDev = stdDev
	return result
}
