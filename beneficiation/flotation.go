package beneficiation

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/equipment"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/separation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Flotation response coefficients and clip bounds.
const (
	floatEffOxide     = 0.65 // oxides float poorly
	floatEffCarbonate = 0.78
	floatEffSilicate  = 0.85

	phOptimum = 9.0
	phPeriod  = 2.0

	collectorFloor = 0.7
	collectorSpan  = 120.0

	flotRecoveryNoise = 0.05
	flotRecoveryMin   = 0.45
	flotRecoveryMax   = 0.92

	flotConcGradeMax = 52.0 // % Mn

	frothNoise = 0.1
	frothMin   = 0.3
	frothMax   = 0.95

	flotStride = 3 * time.Hour
)

// FlotationRecord is one froth flotation circuit sample.
type FlotationRecord struct {
	Timestamp      time.Time
	FeedGrade      float64 // % Mn, resampled final separation concentrate
	CollectorDose  float64 // g/t
	FrotherDose    float64 // g/t
	PH             float64
	PulpDensity    float64 // % solids
	AirFlow        float64 // m3/min
	ResidenceTime  float64 // min
	Recovery       float64 // clipped [0.45, 0.92], then health scaled
	ConcGrade      float64 // %, clipped [feed, 52]
	TailingsGrade  float64 // %
	FrothStability float64 // clipped [0.3, 0.95]
	FrothGrade     float64 // %
	OreType        orefeed.OreType

	// Set only under equipment linkage.
	EquipmentID     string
	EquipmentHealth float64
}

// FlotationTable is a generated flotation circuit dataset.
type FlotationTable []FlotationRecord

// Len implements dataset.Table.
func (t FlotationTable) Len() int { return len(t) }

// linked reports whether the table carries equipment columns. Linkage
// is all-or-nothing per table, so the first record decides.
func (t FlotationTable) linked() bool { return len(t) > 0 && t[0].EquipmentID != "" }

// Header implements dataset.Table.
func (t FlotationTable) Header() []string {
	h := []string{
		"timestamp", "feed_grade_pct", "collector_dosage_gt",
		"frother_dosage_gt", "ph_value", "pulp_density_pct_solids",
		"air_flow_m3_min", "residence_time_min", "flotation_recovery",
		"concentrate_grade_pct", "tailings_grade_pct",
		"froth_stability_index", "froth_grade_pct", "ore_type",
	}
	if t.linked() {
		h = append(h, "equipment_id", "equipment_health")
	}

	return h
}

// Row implements dataset.Table.
func (t FlotationTable) Row(i int) []string {
	r := t[i]
	row := []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.FeedGrade, 2),
		dataset.Float(r.CollectorDose, 1),
		dataset.Float(r.FrotherDose, 1),
		dataset.Float(r.PH, 2),
		dataset.Float(r.PulpDensity, 1),
		dataset.Float(r.AirFlow, 1),
		dataset.Float(r.ResidenceTime, 1),
		dataset.Float(r.Recovery, 3),
		dataset.Float(r.ConcGrade, 2),
		dataset.Float(r.TailingsGrade, 3),
		dataset.Float(r.FrothStability, 2),
		dataset.Float(r.FrothGrade, 2),
		string(r.OreType),
	}
	if t.linked() {
		row = append(row, r.EquipmentID, dataset.Float(r.EquipmentHealth, 1))
	}

	return row
}

// Flotation bootstraps n feed rows from the separation table and
// derives froth flotation performance. Feed grade is the upstream final
// concentrate grade; the base efficiency depends on the resampled ore
// type, modulated by pH and collector dosage.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0,
// dataset.ErrEmptyUpstream for an empty separation table, and
// ErrNoCircuitUnits when linkage finds no flotation cell snapshots.
func Flotation(rng *simrand.Rand, sep separation.Table, n int, opts ...Option) (FlotationTable, error) {
	if n <= 0 {
		return nil, dataset.ErrInvalidSampleSize
	}
	if len(sep) == 0 {
		return nil, dataset.ErrEmptyUpstream
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	link, err := newLinkage(o.Equipment, isClass(equipment.ClassFlotation))
	if err != nil {
		return nil, err
	}

	out := make(FlotationTable, n)
	for i, idx := range rng.Indices(len(sep), n) {
		feed := sep[idx]

		collector := rng.Uniform(o.CollectorDosage[0], o.CollectorDosage[1])
		frother := rng.Uniform(o.FrotherDosage[0], o.FrotherDosage[1])
		ph := rng.Uniform(8.5, 10.5)
		pulp := rng.Uniform(25, 35)
		air := rng.Uniform(8, 15)
		residence := rng.Uniform(8, 16)

		base := floatEffSilicate
		switch feed.OreType {
		case orefeed.Oxide:
			base = floatEffOxide
		case orefeed.Carbonate:
			base = floatEffCarbonate
		}

		// Recovery peaks at pH 9 and saturates with collector dosage.
		phFactor := 1 + 0.1*math.Sin(2*math.Pi*(ph-phOptimum)/phPeriod)
		collectorFactor := simrand.Clip(collectorFloor+0.3*(collector-80)/collectorSpan, collectorFloor, 1)

		recovery := simrand.Clip(base*phFactor*collectorFactor+rng.Normal(0, flotRecoveryNoise),
			flotRecoveryMin, flotRecoveryMax)

		r := FlotationRecord{
			Timestamp:     dataset.Stamp(i, flotStride),
			FeedGrade:     feed.FinalConcGrade,
			CollectorDose: collector,
			FrotherDose:   frother,
			PH:            ph,
			PulpDensity:   pulp,
			AirFlow:       air,
			ResidenceTime: residence,
			OreType:       feed.OreType,
		}
		if link != nil {
			snap := link.pick(rng)
			r.EquipmentID = snap.EquipmentID
			r.EquipmentHealth = snap.HealthScore
			recovery *= healthFactor(snap.HealthScore)
		}
		r.Recovery = recovery
		r.ConcGrade = simrand.Clip(feed.FinalConcGrade*(1.1+0.2*recovery), feed.FinalConcGrade, flotConcGradeMax)
		r.TailingsGrade = feed.FinalConcGrade * (1 - recovery) * 0.3
		r.FrothStability = simrand.Clip(0.6+0.3*(frother-15)/20+rng.Normal(0, frothNoise), frothMin, frothMax)
		r.FrothGrade = r.ConcGrade * (0.9 + 0.1*r.FrothStability)

		out[i] = r
	}

	return out, nil
}
