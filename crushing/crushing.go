package crushing

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Derivation coefficients and clip bounds.
const (
	powerNoise = 50.0
	powerMin   = 200.0 // kW
	powerMax   = 800.0

	runtimeWindow = 30 * 24.0 // hours; liner wear resets on a 30-day cycle
	wearNoise     = 5.0
	wearMin       = 20.0
	wearMax       = 100.0

	vibrationBase  = 2.0
	vibrationSlope = 0.05 // per % of lost liner
	vibrationNoise = 0.3

	stride = time.Hour
)

// Generate bootstraps n feed rows from ore and derives crushing
// performance. Returns dataset.ErrInvalidSampleSize for n <= 0 and
// dataset.ErrEmptyUpstream for an empty ore table.
func Generate(rng *simrand.Rand, ore orefeed.Table, n int, opts ...Option) (Table, error) {
	if n <= 0 {
		return nil, dataset.ErrInvalidSampleSize
	}
	if len(ore) == 0 {
		return nil, dataset.ErrEmptyUpstream
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make(Table, n)
	var runtime float64
	for i, idx := range rng.Indices(len(ore), n) {
		feed := ore[idx]

		feedRate := rng.Uniform(o.FeedRate[0], o.FeedRate[1])
		gap := rng.Uniform(o.Gap[0], o.Gap[1])

		// Bond's law: specific energy from the gap/P80 reduction ratio.
		energy := feed.WorkIndex * (1/math.Sqrt(gap) - 1/math.Sqrt(feed.P80)) * feedRate / 100
		power := simrand.Clip(energy*feedRate+rng.Normal(0, powerNoise), powerMin, powerMax)

		productP80 := gap * (0.8 + 0.4*rng.Float64()) * (1 + 0.1*(feed.WorkIndex-15)/10)

		// Runtime accumulates exponential inter-sample gaps, wrapping at
		// the 30-day maintenance window.
		runtime += rng.Exponential(1)
		hours := math.Mod(runtime, runtimeWindow)
		wear := simrand.Clip(100*(1-hours/runtimeWindow)+rng.Normal(0, wearNoise), wearMin, wearMax)

		out[i] = Record{
			Timestamp:    dataset.Stamp(i, stride),
			FeedRate:     feedRate,
			CrusherGap:   gap,
			PowerDraw:    power,
			ProductP80:   productP80,
			LinerWear:    wear,
			VibrationRMS: vibrationBase + (100-wear)*vibrationSlope + rng.Normal(0, vibrationNoise),
			OreHardness:  feed.WorkIndex,
			FeedMoisture: feed.Moisture,
		}
	}

	return out, nil
}
