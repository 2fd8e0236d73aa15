// Package crushing: record type, tunable options and error definitions
// for the crushing circuit generator.
package crushing

import (
	"errors"
	"fmt"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("crushing: invalid option supplied")

// Record is one crushing circuit sample.
type Record struct {
	Timestamp    time.Time
	FeedRate     float64 // tph
	CrusherGap   float64 // mm
	PowerDraw    float64 // kW, clipped [200, 800]
	ProductP80   float64 // mm
	LinerWear    float64 // %, clipped [20, 100]
	VibrationRMS float64 // mm/s
	OreHardness  float64 // work index carried from the resampled feed
	FeedMoisture float64 // % carried from the resampled feed
}

// Table is a generated crushing circuit dataset.
type Table []Record

// Len implements dataset.Table.
func (t Table) Len() int { return len(t) }

// Header implements dataset.Table.
func (t Table) Header() []string {
	return []string{
		"timestamp", "feed_rate_tph", "crusher_gap_mm", "power_draw_kw",
		"product_p80_mm", "liner_wear_pct", "vibration_rms_mm_s",
		"ore_hardness_wi", "feed_moisture_pct",
	}
}

// Row implements dataset.Table.
func (t Table) Row(i int) []string {
	r := t[i]

	return []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.FeedRate, 1),
		dataset.Float(r.CrusherGap, 1),
		dataset.Float(r.PowerDraw, 0),
		dataset.Float(r.ProductP80, 1),
		dataset.Float(r.LinerWear, 1),
		dataset.Float(r.VibrationRMS, 2),
		dataset.Float(r.OreHardness, 1),
		dataset.Float(r.FeedMoisture, 1),
	}
}

// Option configures crushing generation via functional arguments.
type Option func(*Options)

// Options holds the operator-controlled draw ranges.
type Options struct {
	// FeedRate is the uniform feed rate draw range (tph).
	FeedRate [2]float64
	// Gap is the uniform crusher gap draw range (mm).
	Gap [2]float64

	err error
}

// DefaultOptions returns the documented operating ranges.
func DefaultOptions() Options {
	return Options{FeedRate: [2]float64{80, 140}, Gap: [2]float64{12, 25}}
}

// WithFeedRateRange sets the feed rate draw range (tph).
func WithFeedRateRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: feed rate range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.FeedRate = [2]float64{lo, hi}
	}
}

// WithGapRange sets the crusher gap draw range (mm).
func WithGapRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: gap range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.Gap = [2]float64{lo, hi}
	}
}
