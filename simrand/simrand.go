package simrand

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rand is an explicitly owned pseudo-random generator. Every generation
// call in plantsim receives one as its first argument; none of them fall
// back to a hidden process-wide default.
//
// Rand is not safe for concurrent use. The pipeline runs strictly
// sequentially, so a single instance threads through a whole run.
type Rand struct {
	src rand.Source
	rnd *rand.Rand
}

// New returns a Rand seeded deterministically from seed.
// Two Rand values built from the same seed replay identical sequences.
func New(seed int64) *Rand {
	src := rand.NewPCG(uint64(seed), uint64(seed))

	return &Rand{src: src, rnd: rand.New(src)}
}

// Float64 draws a value uniformly from [0, 1).
func (r *Rand) Float64() float64 { return r.rnd.Float64() }

// IntN draws an integer uniformly from [0, n). Panics if n <= 0,
// mirroring math/rand/v2 (programmer error, not a data condition).
func (r *Rand) IntN(n int) int { return r.rnd.IntN(n) }

// Perm returns a random permutation of [0, n).
func (r *Rand) Perm(n int) []int { return r.rnd.Perm(n) }

// Uniform draws from the continuous uniform distribution on [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: r.src}.Rand()
}

// Normal draws from a Gaussian with mean mu and standard deviation sigma.
func (r *Rand) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// LogNormal draws from a log-normal whose underlying normal has mean mu
// and standard deviation sigma (both on the log scale).
func (r *Rand) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Exponential draws from an exponential distribution with the given rate.
func (r *Rand) Exponential(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: r.src}.Rand()
}

// Pick draws an index in [0, len(weights)) with probability proportional
// to weights[i]. Weights need not sum to one; non-positive weights are
// treated as zero. Returns len(weights)-1 if rounding exhausts the mass.
func (r *Rand) Pick(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	u := r.rnd.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		u -= w
		if u < 0 {
			return i
		}
	}

	return len(weights) - 1
}

// Indices draws n row indices uniformly with replacement from [0, upstream).
// This is the bootstrap that couples a derived circuit table to its
// upstream table: output size is independent of upstream size, and
// neither row identity nor time ordering is preserved.
// upstream must be positive; callers validate emptiness first.
func (r *Rand) Indices(upstream, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.rnd.IntN(upstream)
	}

	return idx
}
