// Package testkit builds synthetic draw histories with known statistical
// properties for tests and demo data.
package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"drawlab/domain/core"
	"drawlab/domain/draw"
)

// LottoVariant is the default 6-of-49 game shape used across the tests.
func LottoVariant() draw.Variant {
	return draw.Variant{GameType: "lotto", PickCount: 6, MaxNumber: 49}
}

// UniformHistory generates count draws of genuinely uniform random
// numbers for the variant, dated daily ending today. Deterministic for a
// given seed.
func UniformHistory(count int, variant draw.Variant, seed int64) draw.History {
	rng := rand.New(rand.NewSource(seed))
	history := make(draw.History, 0, count)
	start := time.Now().UTC().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		history = append(history, draw.Draw{
			ID:         core.DrawID(fmt.Sprintf("draw-%06d", i+1)),
			DrawNumber: int64(i + 1),
			Date:       core.NewDrawDate(start.AddDate(0, 0, i+1)),
			GameType:   variant.GameType,
			Numbers:    sampleNumbers(rng, variant),
		})
	}
	return history
}

// RiggedHistory generates count draws that always contain fixed, with
// the remaining picks uniform over the other numbers. Used to provoke
// hot-number flags and chi-square rejections.
func RiggedHistory(count, fixed int, variant draw.Variant, seed int64) draw.History {
	rng := rand.New(rand.NewSource(seed))
	history := make(draw.History, 0, count)
	start := time.Now().UTC().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		numbers := []int{fixed}
		for len(numbers) < variant.PickCount {
			n := rng.Intn(variant.MaxNumber) + 1
			if !contains(numbers, n) {
				numbers = append(numbers, n)
			}
		}
		history = append(history, draw.Draw{
			ID:         core.DrawID(fmt.Sprintf("rigged-%06d", i+1)),
			DrawNumber: int64(i + 1),
			Date:       core.NewDrawDate(start.AddDate(0, 0, i+1)),
			GameType:   variant.GameType,
			Numbers:    numbers,
		})
	}
	return history
}

// HistoryFromNumbers builds a dated history from explicit number sets,
// one draw per set, in the given order.
func HistoryFromNumbers(sets [][]int, variant draw.Variant) draw.History {
	history := make(draw.History, 0, len(sets))
	start := time.Now().UTC().AddDate(0, 0, -len(sets))
	for i, numbers := range sets {
		history = append(history, draw.Draw{
			ID:         core.DrawID(fmt.Sprintf("fixed-%06d", i+1)),
			DrawNumber: int64(i + 1),
			Date:       core.NewDrawDate(start.AddDate(0, 0, i+1)),
			GameType:   variant.GameType,
			Numbers:    numbers,
		})
	}
	return history
}

// UniformFrequencies builds a frequency table with the same count for
// every number in [1, maxNumber].
func UniformFrequencies(maxNumber, countEach int) map[int]int {
	freq := make(map[int]int, maxNumber)
	for n := 1; n <= maxNumber; n++ {
		freq[n] = countEach
	}
	return freq
}

// EmptyFrequencies builds an all-zero frequency table over [1, maxNumber].
func EmptyFrequencies(maxNumber int) map[int]int {
	return UniformFrequencies(maxNumber, 0)
}

func sampleNumbers(rng *rand.Rand, variant draw.Variant) []int {
	pool := make([]int, variant.MaxNumber)
	for i := range pool {
		pool[i] = i + 1
	}
	for i := 0; i < variant.PickCount; i++ {
		j := i + rng.Intn(variant.MaxNumber-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]int, variant.PickCount)
	copy(out, pool[:variant.PickCount])
	return out
}

func contains(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
