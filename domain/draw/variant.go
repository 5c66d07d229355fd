package draw

import (
	"fmt"

	"drawlab/domain/core"
)

// Variant describes the shape of a lottery game: PickCount numbers are
// drawn without replacement from [1, MaxNumber].
type Variant struct {
	GameType  core.GameType `json:"game_type"`
	PickCount int           `json:"pick_count"` // k
	MaxNumber int           `json:"max_number"` // N
}

// Validate checks the variant parameters are usable.
func (v Variant) Validate() error {
	if v.PickCount < 1 {
		return fmt.Errorf("variant %q: pick count must be >= 1, got %d", v.GameType, v.PickCount)
	}
	if v.MaxNumber < v.PickCount {
		return fmt.Errorf("variant %q: max number %d smaller than pick count %d", v.GameType, v.MaxNumber, v.PickCount)
	}
	return nil
}

// VariantRegistry is an immutable lookup of known game variants. The
// analysis engines never read from it directly; callers resolve a Variant
// here and pass it down explicitly.
type VariantRegistry map[core.GameType]Variant

// DefaultVariants registers the built-in game variants.
func DefaultVariants() VariantRegistry {
	return VariantRegistry{
		"lotto": {GameType: "lotto", PickCount: 6, MaxNumber: 49},
		"mini":  {GameType: "mini", PickCount: 5, MaxNumber: 42},
	}
}

// Lookup resolves a game type to its variant.
func (r VariantRegistry) Lookup(gameType core.GameType) (Variant, bool) {
	v, ok := r[gameType]
	return v, ok
}
