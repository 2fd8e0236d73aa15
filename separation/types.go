// Package separation: record type, tunable options and error definitions
// for the gravity/magnetic separation generator.
package separation

import (
	"errors"
	"fmt"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("separation: invalid option supplied")

// Record is one separation circuit sample covering both stages.
type Record struct {
	Timestamp time.Time
	FeedGrade float64 // % Mn, resampled from ore

	// Spiral stage
	SpiralSpeed      float64 // rpm
	WashWater        float64 // m³/h per spiral
	FeedDensity      float64 // % solids
	SpiralConcGrade  float64 // %, clipped [feed, 48]
	SpiralTailsGrade float64 // %
	SpiralRecovery   float64 // fraction, clipped [0.4, 0.9]
	SpiralEfficiency float64 // fraction, clipped [0.5, 0.95]; not emitted to CSV

	// Magnetic stage
	MagneticIntensity float64 // T
	BeltSpeed         float64 // m/s
	FinalConcGrade    float64 // %, clipped [spiral conc, 50]
	OverallRecovery   float64 // fraction

	OreType orefeed.OreType
}

// Table is a generated separation circuit dataset.
type Table []Record

// Len implements dataset.Table.
func (t Table) Len() int { return len(t) }

// Header implements dataset.Table.
func (t Table) Header() []string {
	return []string{
		"timestamp", "feed_grade_pct", "spiral_speed_rpm", "wash_water_m3h",
		"feed_density_pct_solids", "spiral_concentrate_grade_pct",
		"spiral_tailings_grade_pct", "spiral_recovery", "magnetic_intensity_t",
		"belt_speed_ms", "final_concentrate_grade_pct", "overall_recovery",
		"ore_type",
	}
}

// Row implements dataset.Table.
func (t Table) Row(i int) []string {
	r := t[i]

	return []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.FeedGrade, 2),
		dataset.Float(r.SpiralSpeed, 0),
		dataset.Float(r.WashWater, 2),
		dataset.Float(r.FeedDensity, 1),
		dataset.Float(r.SpiralConcGrade, 2),
		dataset.Float(r.SpiralTailsGrade, 2),
		dataset.Float(r.SpiralRecovery, 3),
		dataset.Float(r.MagneticIntensity, 2),
		dataset.Float(r.BeltSpeed, 2),
		dataset.Float(r.FinalConcGrade, 2),
		dataset.Float(r.OverallRecovery, 3),
		string(r.OreType),
	}
}

// Option configures separation generation via functional arguments.
type Option func(*Options)

// Options holds the operator-controlled draw ranges and stage baselines.
type Options struct {
	// SpiralSpeed is the uniform spiral speed draw range (rpm).
	SpiralSpeed [2]float64
	// SpiralBase is the base spiral efficiency before grade/speed effects.
	SpiralBase float64
	// MagneticBase is the base magnetic separation efficiency.
	MagneticBase float64

	err error
}

// DefaultOptions returns the documented equipment baselines and ranges.
func DefaultOptions() Options {
	return Options{
		SpiralSpeed:  [2]float64{180, 220},
		SpiralBase:   0.75,
		MagneticBase: 0.80,
	}
}

// WithSpiralSpeedRange sets the spiral speed draw range (rpm).
func WithSpiralSpeedRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: spiral speed range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.SpiralSpeed = [2]float64{lo, hi}
	}
}

// WithSpiralBase sets the base spiral efficiency. Must lie in (0, 1).
func WithSpiralBase(base float64) Option {
	return func(o *Options) {
		if base <= 0 || base >= 1 {
			o.err = fmt.Errorf("%w: spiral base efficiency must be in (0,1) (%v)", ErrOptionViolation, base)
			return
		}
		o.SpiralBase = base
	}
}

// WithMagneticBase sets the base magnetic efficiency. Must lie in (0, 1).
func WithMagneticBase(base float64) Option {
	return func(o *Options) {
		if base <= 0 || base >= 1 {
			o.err = fmt.Errorf("%w: magnetic base efficiency must be in (0,1) (%v)", ErrOptionViolation, base)
			return
		}
		o.MagneticBase = base
	}
}
