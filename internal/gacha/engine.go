package gacha

import (
	"github.com/modateam/shopcore/internal/domain"
)

// Rand is the random source the engine draws from. *math/rand.Rand
// satisfies it; tests inject scripted sequences for deterministic replay.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0, like math/rand.
	Intn(n int) int
}

// DrawResult carries the rewards of a dynamic draw sequence together with
// the pity counter to persist afterwards.
type DrawResult struct {
	Items     []domain.Item
	FailCount int
}

// DrawFixed selects one reward using the advertised odds: a weighted pick
// over the catalog items with a positive gacha weight. No pity interaction.
func DrawFixed(catalog []domain.Item, rng Rand) (domain.Item, error) {
	eligible := make([]domain.Item, 0, len(catalog))
	for _, it := range catalog {
		if it.GachaWeight > 0 {
			eligible = append(eligible, it)
		}
	}
	if len(eligible) == 0 {
		return domain.Item{}, domain.ErrEmptyCatalog
	}
	return weightedPick(eligible, rng), nil
}

// DrawDynamic runs `count` sequential pity-adjusted draws starting from the
// member's persisted fail counter. Each draw feeds its counter state into
// the next: a LEGENDARY pick resets the running counter, anything else
// increments it, and once the counter reaches PityLimit-1 the next draw is
// forced legendary. The returned FailCount is the value to persist.
func DrawDynamic(catalog []domain.Item, failCount, count int, rng Rand) (DrawResult, error) {
	if len(catalog) == 0 {
		return DrawResult{}, domain.ErrEmptyCatalog
	}
	if count < 1 {
		return DrawResult{}, domain.ErrInvalidCount
	}

	var legendaries, others []domain.Item
	for _, it := range catalog {
		if it.Rarity.IsLegendary() {
			legendaries = append(legendaries, it)
		} else {
			others = append(others, it)
		}
	}

	result := DrawResult{
		Items:     make([]domain.Item, 0, count),
		FailCount: failCount,
	}

	for i := 0; i < count; i++ {
		var picked domain.Item

		if result.FailCount >= PityLimit-1 {
			// Pity ceiling reached: guaranteed legendary.
			picked = uniformPick(legendaries, catalog, rng)
		} else if rng.Intn(LegendaryRollRange)+1 == LegendaryRollHit {
			picked = uniformPick(legendaries, catalog, rng)
		} else {
			picked = uniformPick(others, catalog, rng)
		}

		if picked.Rarity.IsLegendary() {
			result.FailCount = 0
		} else {
			result.FailCount++
		}

		result.Items = append(result.Items, picked)
	}

	return result, nil
}

// uniformPick selects uniformly from the preferred partition, falling back
// to the full catalog when the partition is empty.
func uniformPick(preferred, fallback []domain.Item, rng Rand) domain.Item {
	pool := preferred
	if len(pool) == 0 {
		pool = fallback
	}
	return pool[rng.Intn(len(pool))]
}

// weightedPick selects one item with probability proportional to its gacha
// weight, via cumulative weights and a binary search over the prefix sums.
// Callers guarantee a non-empty list with positive total weight.
func weightedPick(items []domain.Item, rng Rand) domain.Item {
	cumulative := make([]int, len(items))
	total := 0
	for i, it := range items {
		total += it.GachaWeight
		cumulative[i] = total
	}

	roll := rng.Intn(total)
	lo, hi := 0, len(items)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumulative[mid] <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return items[lo]
}
