// Package score turns on-chain reputation and local reviews into a 0-100
// display score.
package score

import (
	"math"
	"math/big"
)

const (
	onchainWeight = 0.7
	localWeight   = 0.3
	maxRating     = 5.0
)

// Bounds is the assumed range of the contract's reputation counter.
type Bounds struct {
	Min int64
	Max int64
}

func DefaultBounds() Bounds { return Bounds{Min: -100, Max: 200} }

func (b Bounds) orDefault() Bounds {
	if b.Max <= b.Min {
		return DefaultBounds()
	}
	return b
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromReputation clamps raw into b and rescales it linearly onto [0,100].
func FromReputation(raw *big.Int, b Bounds) *int {
	if raw == nil {
		return nil
	}
	b = b.orDefault()
	v := b.Min
	switch {
	case raw.Cmp(big.NewInt(b.Min)) <= 0:
	case raw.Cmp(big.NewInt(b.Max)) >= 0:
		v = b.Max
	default:
		v = raw.Int64()
	}
	scaled := float64(v-b.Min) / float64(b.Max-b.Min) * 100
	out := clampInt(roundHalfUp(scaled), 0, 100)
	return &out
}

// Composite blends the on-chain score (70%) with the local average rating
// scaled to 0-100 (30%). Either side may be missing; both missing is nil.
func Composite(onchain *int, localAverage *float64) *int {
	var local *float64
	if localAverage != nil {
		v := *localAverage / maxRating * 100
		local = &v
	}
	var out int
	switch {
	case onchain == nil && local == nil:
		return nil
	case onchain == nil:
		out = roundHalfUp(*local)
	case local == nil:
		out = *onchain
	default:
		out = roundHalfUp(float64(*onchain)*onchainWeight + *local*localWeight)
	}
	out = clampInt(out, 0, 100)
	return &out
}

// Badge maps a score to the display tone used for score cards.
func Badge(score *int) string {
	switch {
	case score == nil:
		return ""
	case *score >= 75:
		return "success"
	case *score >= 40:
		return "warning"
	default:
		return "secondary"
	}
}
