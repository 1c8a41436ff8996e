package dataset

import "github.com/efrogs/rarity/internal/rarity"

// TierCount is the number of items falling in one tier.
type TierCount struct {
	rarity.TierRange
	Count int `json:"count"`
}

// Distribution counts items per tier, rarest tier first. Every tier is
// present, including empty ones.
func Distribution(d *Dataset) []TierCount {
	ranges := rarity.Tiers()
	counts := make(map[rarity.Tier]int, len(ranges))
	for _, item := range d.items {
		counts[rarity.Classify(item.Rank)]++
	}

	out := make([]TierCount, len(ranges))
	for i, r := range ranges {
		out[i] = TierCount{TierRange: r, Count: counts[r.Tier]}
	}
	return out
}
