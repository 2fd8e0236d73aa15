// Package energy: record type and tunable options for the plant power
// generator.
package energy

import (
	"errors"
	"fmt"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("energy: invalid option supplied")

// Record is one hourly plant power sample.
type Record struct {
	Timestamp       time.Time
	TotalPower      float64 // kW, after operational factor and maintenance
	CrushingPower   float64 // kW, resampled crusher draw
	SeparationPower float64 // kW, spiral + magnetic
	AuxiliaryPower  float64 // kW, pumps + conveyors
	BaseLoad        float64 // kW, seasonal
	EnergyCost      float64 // $/kWh tariff
	OpFactor        float64 // 1.0 day shift, 0.7 night
	Maintenance     bool
}

// Table is a generated energy consumption dataset.
type Table []Record

// Len implements dataset.Table.
func (t Table) Len() int { return len(t) }

// Header implements dataset.Table.
func (t Table) Header() []string {
	return []string{
		"timestamp", "total_power_kw", "crushing_power_kw",
		"separation_power_kw", "auxiliary_power_kw", "base_load_kw",
		"energy_cost_kwh", "operational_factor", "maintenance_mode",
	}
}

// Row implements dataset.Table.
func (t Table) Row(i int) []string {
	r := t[i]

	return []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.TotalPower, 0),
		dataset.Float(r.CrushingPower, 0),
		dataset.Float(r.SeparationPower, 0),
		dataset.Float(r.AuxiliaryPower, 0),
		dataset.Float(r.BaseLoad, 0),
		dataset.Float(r.EnergyCost, 4),
		dataset.Float(r.OpFactor, 2),
		dataset.Bool(r.Maintenance),
	}
}

// Option configures energy generation via functional arguments.
type Option func(*Options)

// Options holds the operator-controlled knobs.
type Options struct {
	// MaintenanceRate is the per-hour shutdown probability.
	MaintenanceRate float64
	// NightFactor is the operational factor outside the day shift.
	NightFactor float64

	err error
}

// DefaultOptions returns the documented operating parameters.
func DefaultOptions() Options {
	return Options{MaintenanceRate: 0.05, NightFactor: 0.7}
}

// WithMaintenanceRate sets the per-hour shutdown probability.
func WithMaintenanceRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: maintenance rate %v outside [0, 1)", ErrOptionViolation, p)
			return
		}
		o.MaintenanceRate = p
	}
}

// WithNightFactor sets the operational factor outside the day shift.
func WithNightFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 || f > 1 {
			o.err = fmt.Errorf("%w: night factor %v outside (0, 1]", ErrOptionViolation, f)
			return
		}
		o.NightFactor = f
	}
}
