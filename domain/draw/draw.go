package draw

import (
	"fmt"
	"sort"

	"drawlab/domain/core"
)

// Draw is one historical drawing event: a dated set of distinct numbers.
// Value object, never mutated after construction.
type Draw struct {
	ID         core.DrawID   `json:"id" db:"id"`
	DrawNumber int64         `json:"draw_number" db:"draw_number"`
	Date       core.DrawDate `json:"draw_date" db:"draw_date"`
	GameType   core.GameType `json:"game_type" db:"game_type"`
	Provider   string        `json:"game_provider,omitempty" db:"game_provider"`
	Numbers    []int         `json:"numbers" db:"-"`
}

// SortedNumbers returns the draw's numbers in ascending order without
// touching the original slice.
func (d Draw) SortedNumbers() []int {
	out := make([]int, len(d.Numbers))
	copy(out, d.Numbers)
	sort.Ints(out)
	return out
}

// Sum returns the sum of the draw's numbers.
func (d Draw) Sum() int {
	total := 0
	for _, n := range d.Numbers {
		total += n
	}
	return total
}

// ValidationError reports a malformed draw rejected at the boundary.
type ValidationError struct {
	DrawNumber int64
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid draw %d: %s", e.DrawNumber, e.Reason)
}

// Validate checks the draw against its game variant: exactly PickCount
// distinct numbers, each in [1, MaxNumber]. Runs at the ingestion
// boundary; the analysis engines assume validated input.
func (d Draw) Validate(v Variant) error {
	if len(d.Numbers) != v.PickCount {
		return &ValidationError{
			DrawNumber: d.DrawNumber,
			Reason:     fmt.Sprintf("expected %d numbers, got %d", v.PickCount, len(d.Numbers)),
		}
	}
	seen := make(map[int]bool, len(d.Numbers))
	for _, n := range d.Numbers {
		if n < 1 || n > v.MaxNumber {
			return &ValidationError{
				DrawNumber: d.DrawNumber,
				Reason:     fmt.Sprintf("number %d out of range [1, %d]", n, v.MaxNumber),
			}
		}
		if seen[n] {
			return &ValidationError{
				DrawNumber: d.DrawNumber,
				Reason:     fmt.Sprintf("duplicate number %d", n),
			}
		}
		seen[n] = true
	}
	return nil
}

// History is an ordered (chronological) sequence of draws.
type History []Draw

// FirstDrawn extracts the first-drawn number of each draw, preserving
// draw order. This is the default scalar sequence for the ordered-sequence
// tests.
func (h History) FirstDrawn() []int {
	seq := make([]int, 0, len(h))
	for _, d := range h {
		if len(d.Numbers) > 0 {
			seq = append(seq, d.Numbers[0])
		}
	}
	return seq
}

// Sums extracts the per-draw number sum, preserving draw order.
func (h History) Sums() []int {
	seq := make([]int, 0, len(h))
	for _, d := range h {
		seq = append(seq, d.Sum())
	}
	return seq
}

// AllNumbers flattens every number of every draw, preserving draw order.
func (h History) AllNumbers() []int {
	seq := make([]int, 0, len(h)*6)
	for _, d := range h {
		seq = append(seq, d.Numbers...)
	}
	return seq
}
