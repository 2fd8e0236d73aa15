// Package orefeed: record type, tunable options and error definitions
// for the ore feed generator.
package orefeed

import (
	"errors"
	"fmt"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("orefeed: invalid option supplied")

// OreType is the categorical ore classification.
type OreType string

// Ore type categories with their default draw weights.
const (
	Oxide     OreType = "oxide"     // weight 0.6
	Carbonate OreType = "carbonate" // weight 0.3
	Silicate  OreType = "silicate"  // weight 0.1
)

// Record is one ore feed characterization sample. Values are kept at
// full precision; CSV rounding happens in Row.
type Record struct {
	Timestamp       time.Time
	MnGrade         float64 // %
	FeContent       float64 // %
	SiO2Content     float64 // %
	Al2O3Content    float64 // %
	PContent        float64 // %
	Moisture        float64 // %
	P80             float64 // mm
	WorkIndex       float64 // kWh/t
	SpecificGravity float64
	OreType         OreType
}

// Table is a generated ore feed dataset.
type Table []Record

// Len implements dataset.Table.
func (t Table) Len() int { return len(t) }

// Header implements dataset.Table.
func (t Table) Header() []string {
	return []string{
		"timestamp", "mn_grade_pct", "fe_content_pct", "siO2_content_pct",
		"al2O3_content_pct", "p_content_pct", "moisture_pct", "p80_mm",
		"work_index_kwh_t", "specific_gravity", "ore_type",
	}
}

// Row implements dataset.Table, applying the documented per-column precision.
func (t Table) Row(i int) []string {
	r := t[i]

	return []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.MnGrade, 2),
		dataset.Float(r.FeContent, 2),
		dataset.Float(r.SiO2Content, 2),
		dataset.Float(r.Al2O3Content, 2),
		dataset.Float(r.PContent, 3),
		dataset.Float(r.Moisture, 1),
		dataset.Float(r.P80, 1),
		dataset.Float(r.WorkIndex, 1),
		dataset.Float(r.SpecificGravity, 2),
		string(r.OreType),
	}
}

// Range is a closed-open [Lo, Hi) draw interval for a uniform parameter.
type Range struct {
	Lo, Hi float64
}

// Option configures ore feed generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds the configured ore characterization ranges.
type Options struct {
	// GradeMean is the target mean Mn grade (%) of the log-normal draw.
	GradeMean float64
	// GradeClip bounds the drawn grades (hard floor/ceiling).
	GradeClip Range
	// Impurity and moisture draw ranges.
	FeRange       Range
	SiO2Range     Range
	Al2O3Range    Range
	PRange        Range
	MoistureRange Range

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented ore characterization defaults,
// based on typical manganese ores.
func DefaultOptions() Options {
	return Options{
		GradeMean:     62.0,
		GradeClip:     Range{44.13, 77.71},
		FeRange:       Range{16, 22},
		SiO2Range:     Range{2, 8},
		Al2O3Range:    Range{5, 8},
		PRange:        Range{0.05, 0.3},
		MoistureRange: Range{5, 10},
	}
}

// WithGradeMean sets the target mean Mn grade. Must be positive.
func WithGradeMean(mean float64) Option {
	return func(o *Options) {
		if mean <= 0 {
			o.err = fmt.Errorf("%w: GradeMean must be positive (%v)", ErrOptionViolation, mean)
			return
		}
		o.GradeMean = mean
	}
}

// WithMoistureRange sets the uniform moisture draw range.
func WithMoistureRange(lo, hi float64) Option {
	return func(o *Options) {
		if hi <= lo {
			o.err = fmt.Errorf("%w: moisture range [%v, %v) is empty", ErrOptionViolation, lo, hi)
			return
		}
		o.MoistureRange = Range{lo, hi}
	}
}

// WithFeRange sets the uniform iron content draw range.
func WithFeRange(lo, hi float64) Option {
	return func(o *Options) {
		if hi <= lo {
			o.err = fmt.Errorf("%w: Fe range [%v, %v) is empty", ErrOptionViolation, lo, hi)
			return
		}
		o.FeRange = Range{lo, hi}
	}
}

// WithSiO2Range sets the uniform silica content draw range.
func WithSiO2Range(lo, hi float64) Option {
	return func(o *Options) {
		if hi <= lo {
			o.err = fmt.Errorf("%w: SiO2 range [%v, %v) is empty", ErrOptionViolation, lo, hi)
			return
		}
		o.SiO2Range = Range{lo, hi}
	}
}
