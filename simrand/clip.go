package simrand

import "math"

// Clip bounds v into [lo, hi] as min(max(v, lo), hi).
//
// The operand order matters: when lo > hi (which happens downstream when a
// concentrate-grade floor exceeds its ceiling), the result is hi. Silent
// clamping, never an error, is the edge policy for every derived column.
func Clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
