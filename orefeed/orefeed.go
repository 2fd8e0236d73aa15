package orefeed

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Fixed distribution shapes and derivation coefficients.
const (
	gradeSigma = 0.3 // log-scale spread of the Mn grade draw

	p80LogMean = 15.0 // mm, median of the particle-size draw
	p80Sigma   = 0.4
	p80Min     = 5.0
	p80Max     = 50.0

	workIndexBase  = 12.0 // kWh/t at zero grade
	workIndexSlope = 0.3  // per % Mn; hardness rises with grade
	workIndexNoise = 1.5
	workIndexMin   = 8.0
	workIndexMax   = 22.0

	gravityBase  = 3.2
	gravitySlope = 0.02
	gravityNoise = 0.1

	// (1 - mn/gradePivot) scales Fe and SiO2 down as grade rises.
	gradePivot = 60.0

	stride = 6 * time.Hour
)

// oreTypeWeights is the fixed categorical distribution of ore types.
var oreTypeWeights = []float64{0.6, 0.3, 0.1}

// oreTypes indexes Pick results into categories.
var oreTypes = []OreType{Oxide, Carbonate, Silicate}

// Generate produces n ore feed records from the configured ranges.
// Returns dataset.ErrInvalidSampleSize when n <= 0 and ErrOptionViolation
// for malformed options.
func Generate(rng *simrand.Rand, n int, opts ...Option) (Table, error) {
	if n <= 0 {
		return nil, dataset.ErrInvalidSampleSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	mu := math.Log(o.GradeMean)
	out := make(Table, n)
	for i := range out {
		mn := simrand.Clip(rng.LogNormal(mu, gradeSigma), o.GradeClip.Lo, o.GradeClip.Hi)

		// Impurities anti-correlate with grade via the (1 - mn/60) proxy;
		// values go negative above the pivot and are emitted as computed.
		inverse := 1 - mn/gradePivot
		fe := rng.Uniform(o.FeRange.Lo, o.FeRange.Hi) * inverse
		sio2 := rng.Uniform(o.SiO2Range.Lo, o.SiO2Range.Hi) * inverse

		out[i] = Record{
			Timestamp:       dataset.Stamp(i, stride),
			MnGrade:         mn,
			FeContent:       fe,
			SiO2Content:     sio2,
			Al2O3Content:    rng.Uniform(o.Al2O3Range.Lo, o.Al2O3Range.Hi),
			PContent:        rng.Uniform(o.PRange.Lo, o.PRange.Hi),
			Moisture:        rng.Uniform(o.MoistureRange.Lo, o.MoistureRange.Hi),
			P80:             simrand.Clip(rng.LogNormal(math.Log(p80LogMean), p80Sigma), p80Min, p80Max),
			WorkIndex:       simrand.Clip(workIndexBase+workIndexSlope*mn+rng.Normal(0, workIndexNoise), workIndexMin, workIndexMax),
			SpecificGravity: gravityBase + gravitySlope*mn + rng.Normal(0, gravityNoise),
			OreType:         oreTypes[rng.Pick(oreTypeWeights)],
		}
	}

	return out, nil
}
