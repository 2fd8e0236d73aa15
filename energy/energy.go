package energy

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/crushing"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/separation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Load model coefficients.
const (
	baseLoadMean  = 200.0 // kW
	baseLoadSwing = 50.0  // kW seasonal amplitude

	spiralPowerScale = 15.0  // kW at reference speed
	spiralSpeedRef   = 200.0 // rpm
	magPowerPerTesla = 25.0  // kW per tesla

	dayShiftStart = 6  // hour, inclusive
	dayShiftEnd   = 18 // hour, inclusive

	maintenanceFactor = 0.1

	tariffBase  = 0.08 // $/kWh
	tariffSwing = 0.02

	stride = time.Hour
)

// Generate produces n hourly power samples. Crushing power is
// bootstrapped from the crushing table; one shared bootstrap over the
// separation table feeds both the spiral and the magnetic separator
// draw, so the two components of a row always come from the same
// upstream sample.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0 and
// dataset.ErrEmptyUpstream when either circuit table is empty.
func Generate(rng *simrand.Rand, crush crushing.Table, sep separation.Table, n int, opts ...Option) (Table, error) {
	if n <= 0 {
		return nil, dataset.ErrInvalidSampleSize
	}
	if len(crush) == 0 || len(sep) == 0 {
		return nil, dataset.ErrEmptyUpstream
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	crushIdx := rng.Indices(len(crush), n)
	sepIdx := rng.Indices(len(sep), n)

	out := make(Table, n)
	for i := range out {
		ts := dataset.Stamp(i, stride)
		hour := ts.Hour()

		base := baseLoadMean + baseLoadSwing*math.Sin(2*math.Pi*float64(ts.YearDay())/365)
		crushPower := crush[crushIdx[i]].PowerDraw

		upstream := sep[sepIdx[i]]
		sepPower := spiralPowerScale*upstream.SpiralSpeed/spiralSpeedRef + magPowerPerTesla*upstream.MagneticIntensity

		auxPower := rng.Uniform(80, 150) + rng.Uniform(25, 45)

		factor := 1.0
		if hour < dayShiftStart || hour > dayShiftEnd {
			factor = o.NightFactor
		}

		total := (base + crushPower + sepPower + auxPower) * factor
		maintenance := rng.Float64() < o.MaintenanceRate
		if maintenance {
			total *= maintenanceFactor
		}

		out[i] = Record{
			Timestamp:       ts,
			TotalPower:      total,
			CrushingPower:   crushPower,
			SeparationPower: sepPower,
			AuxiliaryPower:  auxPower,
			BaseLoad:        base,
			EnergyCost:      tariffBase + tariffSwing*math.Sin(2*math.Pi*float64(hour)/24),
			OpFactor:        factor,
			Maintenance:     maintenance,
		}
	}

	return out, nil
}
