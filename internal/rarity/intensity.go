package rarity

import "math"

// Intensity is the display strength of a single trait score.
type Intensity int

const (
	Lightest Intensity = iota
	Light
	Medium
	Strong
	Strongest
)

// MaxBarScore is the score at which a trait bar is drawn at full length.
const MaxBarScore = 150.0

// IntensityFor buckets a trait rarity score. Lower bounds are exclusive, so a
// score of exactly 100 is Strong and exactly 10 is Lightest.
func IntensityFor(score float64) Intensity {
	switch {
	case score > 100:
		return Strongest
	case score > 50:
		return Strong
	case score > 20:
		return Medium
	case score > 10:
		return Light
	default:
		return Lightest
	}
}

// BarWidth returns the fraction of a full bar to fill for score, linear and
// capped at MaxBarScore. NaN and negative scores yield 0.
func BarWidth(score float64) float64 {
	if math.IsNaN(score) || score <= 0 {
		return 0
	}
	if score >= MaxBarScore {
		return 1
	}
	return score / MaxBarScore
}

// String returns the bucket name.
func (i Intensity) String() string {
	switch i {
	case Strongest:
		return "strongest"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Light:
		return "light"
	default:
		return "lightest"
	}
}

// Color returns the bar color for the bucket, darker for rarer traits.
func (i Intensity) Color() string {
	switch i {
	case Strongest:
		return "#14532D"
	case Strong:
		return "#166534"
	case Medium:
		return "#15803D"
	case Light:
		return "#16A34A"
	default:
		return "#22C55E"
	}
}

// Label describes the score range of the bucket for legends.
func (i Intensity) Label() string {
	switch i {
	case Strongest:
		return "100+ points (Extremely rare)"
	case Strong:
		return "50-100 points (Very rare)"
	case Medium:
		return "20-50 points (Rare)"
	case Light:
		return "10-20 points (Uncommon)"
	default:
		return "0-10 points (Common)"
	}
}

// Intensities lists every bucket, strongest first.
func Intensities() []Intensity {
	return []Intensity{Strongest, Strong, Medium, Light, Lightest}
}

// MarshalText encodes the bucket by name.
func (i Intensity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
