// Package equipment: record type, wear classes and the fleet catalog.
package equipment

import (
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
)

// Class groups equipment types that share a degradation profile.
type Class string

// Wear classes of the plant fleet.
const (
	ClassCrusher         Class = "crusher"
	ClassPump            Class = "pump"
	ClassScreen          Class = "screen"
	ClassFlotation       Class = "flotation"
	ClassMagnetic        Class = "magnetic"
	ClassSpiralJig       Class = "spiral_jig"
	ClassConveyor        Class = "conveyor"
	ClassThickenerFilter Class = "thickener_filter"
	ClassCyclone         Class = "cyclone"
	ClassOther           Class = "other"
)

// Unit is one physical machine in the fleet.
type Unit struct {
	ID    string // e.g. "slurry_pump_07"
	Type  string // e.g. "slurry_pump"
	Class Class
}

// Record is one inspection snapshot of one unit.
type Record struct {
	Timestamp          time.Time
	EquipmentID        string
	EquipmentType      string
	OperatingHours     float64
	HealthScore        float64 // clipped [20, 100]
	VibrationRMS       float64 // mm/s, clipped [0.3, 20]
	Temperature        float64 // degC, clipped [25, 135]
	PowerFactor        float64 // clipped [0.55, 0.98]
	WearRate           float64 // %, clipped [0, 100]
	FailureProbability float64 // clipped [0, 0.85]
	RULDays            float64 // remaining useful life, clipped [1, 2500]
	Priority           int     // 1 = critical .. 5 = routine
}

// Table is a generated equipment health dataset.
type Table []Record

// Len implements dataset.Table.
func (t Table) Len() int { return len(t) }

// Header implements dataset.Table.
func (t Table) Header() []string {
	return []string{
		"timestamp", "equipment_id", "equipment_type", "operating_hours",
		"health_score", "vibration_rms", "temperature_c", "power_factor",
		"wear_rate_pct", "failure_probability", "rul_days",
		"maintenance_priority",
	}
}

// Row implements dataset.Table.
func (t Table) Row(i int) []string {
	r := t[i]

	return []string{
		dataset.Time(r.Timestamp),
		r.EquipmentID,
		r.EquipmentType,
		dataset.Float(r.OperatingHours, 0),
		dataset.Float(r.HealthScore, 1),
		dataset.Float(r.VibrationRMS, 2),
		dataset.Float(r.Temperature, 1),
		dataset.Float(r.PowerFactor, 3),
		dataset.Float(r.WearRate, 1),
		dataset.Float(r.FailureProbability, 4),
		dataset.Float(r.RULDays, 0),
		dataset.Int(r.Priority),
	}
}
