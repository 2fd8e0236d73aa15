// Package beneficiation: shared options, equipment linkage and error
// definitions for the four concentration circuit generators.
package beneficiation

import (
	"errors"
	"fmt"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/equipment"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beneficiation: invalid option supplied")

	// ErrNoCircuitUnits is returned when equipment linkage is requested
	// but the health table has no snapshots for the circuit's machines.
	ErrNoCircuitUnits = errors.New("beneficiation: no equipment snapshots for circuit")
)

// Source identifies the circuit a dewatering feed parcel came from.
type Source string

// Dewatering feed sources.
const (
	SourceFlotation Source = "flotation"
	SourceDMS       Source = "dms"
)

// Option configures circuit generation via functional arguments.
type Option func(*Options)

// Options holds the operator-controlled draw ranges and the optional
// equipment linkage shared by all four circuits. Each generator reads
// only the fields relevant to its circuit.
type Options struct {
	// CollectorDosage is the flotation collector draw range (g/t).
	CollectorDosage [2]float64
	// FrotherDosage is the flotation frother draw range (g/t).
	FrotherDosage [2]float64
	// MediaDensity is the DMS ferrosilicon medium density range (sg).
	MediaDensity [2]float64
	// StrokeLength is the jigging stroke length range (mm).
	StrokeLength [2]float64
	// FlocculantDosage is the dewatering flocculant range (g/t).
	FlocculantDosage [2]float64

	// Equipment, when non-nil, enables equipment linkage.
	Equipment equipment.Table

	err error
}

// DefaultOptions returns the documented operating ranges with linkage
// disabled.
func DefaultOptions() Options {
	return Options{
		CollectorDosage:  [2]float64{80, 200},
		FrotherDosage:    [2]float64{15, 35},
		MediaDensity:     [2]float64{2.8, 3.2},
		StrokeLength:     [2]float64{15, 25},
		FlocculantDosage: [2]float64{20, 80},
	}
}

// WithEquipmentHealth links circuit performance to unit condition
// snapshots from the given health table.
func WithEquipmentHealth(eq equipment.Table) Option {
	return func(o *Options) {
		if len(eq) == 0 {
			o.err = fmt.Errorf("%w: empty equipment table", ErrOptionViolation)
			return
		}
		o.Equipment = eq
	}
}

// WithCollectorDosageRange sets the flotation collector range (g/t).
func WithCollectorDosageRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: collector dosage range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.CollectorDosage = [2]float64{lo, hi}
	}
}

// WithFrotherDosageRange sets the flotation frother range (g/t).
func WithFrotherDosageRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: frother dosage range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.FrotherDosage = [2]float64{lo, hi}
	}
}

// WithMediaDensityRange sets the DMS medium density range (sg).
func WithMediaDensityRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: media density range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.MediaDensity = [2]float64{lo, hi}
	}
}

// WithStrokeLengthRange sets the jigging stroke length range (mm).
func WithStrokeLengthRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: stroke length range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.StrokeLength = [2]float64{lo, hi}
	}
}

// WithFlocculantDosageRange sets the dewatering flocculant range (g/t).
func WithFlocculantDosageRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo <= 0 || hi <= lo {
			o.err = fmt.Errorf("%w: flocculant dosage range [%v, %v) is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.FlocculantDosage = [2]float64{lo, hi}
	}
}

// healthFactor scales a circuit efficiency by unit condition: a unit at
// full health leaves it untouched, the floor is 0.85.
func healthFactor(health float64) float64 {
	return 0.85 + 0.15*health/100
}

// linkage is the per-circuit pool of equipment snapshots used when
// WithEquipmentHealth is on.
type linkage struct {
	snapshots []equipment.Record
}

// newLinkage filters the health table down to the snapshots the keep
// function accepts. A nil equipment table yields a nil linkage, which
// draws nothing.
func newLinkage(eq equipment.Table, keep func(equipment.Record) bool) (*linkage, error) {
	if eq == nil {
		return nil, nil
	}
	l := &linkage{}
	for _, r := range eq {
		if keep(r) {
			l.snapshots = append(l.snapshots, r)
		}
	}
	if len(l.snapshots) == 0 {
		return nil, ErrNoCircuitUnits
	}

	return l, nil
}

// pick draws one snapshot uniformly. Safe only on a non-nil linkage.
func (l *linkage) pick(rng *simrand.Rand) equipment.Record {
	return l.snapshots[rng.IntN(len(l.snapshots))]
}

// isClass keeps snapshots of units belonging to the given wear class.
func isClass(c equipment.Class) func(equipment.Record) bool {
	return func(r equipment.Record) bool {
		got, ok := equipment.ClassOf(r.EquipmentType)

		return ok && got == c
	}
}

// isType keeps snapshots of one exact equipment type.
func isType(name string) func(equipment.Record) bool {
	return func(r equipment.Record) bool { return r.EquipmentType == name }
}
