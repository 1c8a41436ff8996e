// Package rarity maps precomputed ranks and scores to display classes.
package rarity

// Tier is a named rarity bracket derived from an item's rank.
// Tiers order from Common (lowest) to Legendary (highest).
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// TierRange describes the ranks covered by a tier. MaxRank is 0 for the
// open-ended bottom tier.
type TierRange struct {
	Tier    Tier   `json:"-"`
	Name    string `json:"tier"`
	MinRank int    `json:"min_rank"`
	MaxRank int    `json:"max_rank,omitempty"`
}

// Upper rank bound (inclusive) of each bounded tier, rarest first.
var tierCeilings = []struct {
	tier    Tier
	maxRank int
}{
	{Legendary, 10},
	{Epic, 50},
	{Rare, 200},
	{Uncommon, 500},
}

// Classify returns the tier for a 1-indexed rank. Every rank maps to exactly
// one tier; ranks below 1 fall into the rarest bracket.
func Classify(rank int) Tier {
	for _, c := range tierCeilings {
		if rank <= c.maxRank {
			return c.tier
		}
	}
	return Common
}

// Tiers lists every tier, rarest first, with its rank range.
func Tiers() []TierRange {
	ranges := make([]TierRange, 0, len(tierCeilings)+1)
	minRank := 1
	for _, c := range tierCeilings {
		ranges = append(ranges, TierRange{
			Tier:    c.tier,
			Name:    c.tier.String(),
			MinRank: minRank,
			MaxRank: c.maxRank,
		})
		minRank = c.maxRank + 1
	}
	return append(ranges, TierRange{Tier: Common, Name: Common.String(), MinRank: minRank})
}

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case Legendary:
		return "Legendary"
	case Epic:
		return "Epic"
	case Rare:
		return "Rare"
	case Uncommon:
		return "Uncommon"
	default:
		return "Common"
	}
}

// Color returns the display color used to render the tier name.
func (t Tier) Color() string {
	switch t {
	case Legendary:
		return "#FACC15" // yellow
	case Epic:
		return "#C084FC" // purple
	case Rare:
		return "#60A5FA" // blue
	case Uncommon:
		return "#22D3EE" // cyan
	default:
		return "#9CA3AF" // gray
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
