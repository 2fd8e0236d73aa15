package orefeed

import (
	"fmt"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Blending defaults.
const (
	DefaultHighGradeCutoff = 60.0 // % Mn splitting high from low grade
	DefaultBlendRatio      = 0.3  // high-grade share of the blended feed
)

// BlendOption configures ore blending.
type BlendOption func(*BlendOptions)

// BlendOptions holds the blending parameters.
type BlendOptions struct {
	// HighGradeCutoff splits the input: rows at or above it form the
	// high-grade stratum.
	HighGradeCutoff float64
	// Ratio is the target high-grade share; the high-grade sample size is
	// n_low · Ratio / (1 − Ratio), capped at the stratum size.
	Ratio float64

	err error
}

// DefaultBlendOptions returns the documented blending defaults.
func DefaultBlendOptions() BlendOptions {
	return BlendOptions{HighGradeCutoff: DefaultHighGradeCutoff, Ratio: DefaultBlendRatio}
}

// WithHighGradeCutoff sets the grade cutoff. Must be positive.
func WithHighGradeCutoff(cutoff float64) BlendOption {
	return func(o *BlendOptions) {
		if cutoff <= 0 {
			o.err = fmt.Errorf("%w: cutoff must be positive (%v)", ErrOptionViolation, cutoff)
			return
		}
		o.HighGradeCutoff = cutoff
	}
}

// WithBlendRatio sets the high-grade share. Must lie in (0, 1).
func WithBlendRatio(ratio float64) BlendOption {
	return func(o *BlendOptions) {
		if ratio <= 0 || ratio >= 1 {
			o.err = fmt.Errorf("%w: blend ratio must be in (0,1) (%v)", ErrOptionViolation, ratio)
			return
		}
		o.Ratio = ratio
	}
}

// Blend simulates mixing high-grade and low-grade ore: it keeps every
// low-grade row, bootstraps high-grade rows up to the configured share,
// and shuffles the result. Timestamps travel with their rows; the blend
// is a feed composition, not a new time series.
// Returns dataset.ErrEmptyUpstream when ore is empty.
func Blend(rng *simrand.Rand, ore Table, opts ...BlendOption) (Table, error) {
	if len(ore) == 0 {
		return nil, dataset.ErrEmptyUpstream
	}
	o := DefaultBlendOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var high, low Table
	for _, r := range ore {
		if r.MnGrade >= o.HighGradeCutoff {
			high = append(high, r)
		} else {
			low = append(low, r)
		}
	}

	nHigh := int(float64(len(low)) * o.Ratio / (1 - o.Ratio))
	if nHigh > len(high) {
		nHigh = len(high)
	}

	blended := make(Table, 0, len(low)+nHigh)
	blended = append(blended, low...)
	if nHigh > 0 {
		for _, idx := range rng.Indices(len(high), nHigh) {
			blended = append(blended, high[idx])
		}
	}

	// Full shuffle so downstream bootstraps see a mixed feed.
	perm := rng.Perm(len(blended))
	shuffled := make(Table, len(blended))
	for i, p := range perm {
		shuffled[i] = blended[p]
	}

	return shuffled, nil
}
