package separation

import (
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Derivation coefficients and clip bounds.
const (
	spiralGradeSlope = 0.003  // efficiency gain per % Mn
	spiralSpeedCurve = 0.0001 // quadratic penalty away from the optimum
	spiralSpeedOpt   = 200.0  // rpm
	spiralNoise      = 0.05
	spiralEffMin     = 0.5
	spiralEffMax     = 0.95

	concUpgrade  = 1.3  // spiral concentration factor
	concCeiling  = 48.0 // % Mn after spirals
	tailsFactor  = 0.4
	recoveryTrim = 0.85
	recoveryMin  = 0.4
	recoveryMax  = 0.9

	oxidePenalty  = 0.9 // magnetic stage is weaker on oxides
	magIntENorm   = 0.7 // intensity range width for the gain term
	magEffMin     = 0.6
	magEffMax     = 0.95
	finalUpgrade  = 1.1
	finalCeiling  = 50.0 // % Mn after the magnetic stage

	stride = 2 * time.Hour
)

// Generate bootstraps n feed rows from ore and derives both separation
// stages. Returns dataset.ErrInvalidSampleSize for n <= 0 and
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
	for i, idx := range rng.Indices(len(ore), n) {
		feed := ore[idx]

		speed := rng.Uniform(o.SpiralSpeed[0], o.SpiralSpeed[1])
		washWater := rng.Uniform(0.8, 1.5)
		feedDensity := rng.Uniform(15, 25)

		// Spiral efficiency: base + grade effect − quadratic speed penalty.
		dev := speed - spiralSpeedOpt
		eff := o.SpiralBase + spiralGradeSlope*feed.MnGrade - spiralSpeedCurve*dev*dev
		eff = simrand.Clip(eff+rng.Normal(0, spiralNoise), spiralEffMin, spiralEffMax)

		concGrade := simrand.Clip(feed.MnGrade/(1-eff)*concUpgrade, feed.MnGrade, concCeiling)
		tailsGrade := feed.MnGrade * (1 - eff) * tailsFactor
		recovery := simrand.Clip(eff*(concGrade/feed.MnGrade)*recoveryTrim, recoveryMin, recoveryMax)

		intensity := rng.Uniform(0.8, 1.5)
		beltSpeed := rng.Uniform(0.8, 1.2)

		magEff := o.MagneticBase
		if feed.OreType == orefeed.Oxide {
			magEff *= oxidePenalty
		}
		magEff *= 0.9 + 0.2*(intensity-0.8)/magIntENorm
		magEff = simrand.Clip(magEff, magEffMin, magEffMax)

		finalGrade := simrand.Clip(concGrade*magEff*finalUpgrade, concGrade, finalCeiling)

		out[i] = Record{
			Timestamp:         dataset.Stamp(i, stride),
			FeedGrade:         feed.MnGrade,
			SpiralSpeed:       speed,
			WashWater:         washWater,
			FeedDensity:       feedDensity,
			SpiralConcGrade:   concGrade,
			SpiralTailsGrade:  tailsGrade,
			SpiralRecovery:    recovery,
			SpiralEfficiency:  eff,
			MagneticIntensity: intensity,
			BeltSpeed:         beltSpeed,
			FinalConcGrade:    finalGrade,
			OverallRecovery:   recovery * magEff,
			OreType:           feed.OreType,
		}
	}

	return out, nil
}
