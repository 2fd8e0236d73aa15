package beneficiation

import (
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/equipment"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Dewatering coefficients and clip bounds.
const (
	thickEffMin = 0.6
	thickEffMax = 0.95

	underflowCeiling = 70.0 // % solids, theoretical thickener limit

	cakeMoistureMin = 6.0 // %
	cakeMoistureMax = 15.0

	// Synthetic feed grade range when both upstream circuits are empty.
	fallbackGradeLo = 42.0
	fallbackGradeHi = 50.0

	dewaterStride = 4 * time.Hour
)

// DewateringRecord is one thickening and filtration sample.
type DewateringRecord struct {
	Timestamp       time.Time
	Source          Source  // circuit the concentrate parcel came from
	FeedGrade       float64 // % Mn
	FeedSolids      float64 // %
	FlocculantDose  float64 // g/t
	RetentionTime   float64 // h
	UnderflowSolids float64 // %
	OverflowClarity float64 // NTU
	ThickeningEff   float64 // clipped [0.6, 0.95], then health scaled
	FilterPressure  float64 // kPa
	CycleTime       float64 // min
	CakeMoisture    float64 // %, clipped [6, 15]
	WaterRecovery   float64 // fraction
	SolidRecovery   float64 // fraction

	// Set only under equipment linkage.
	EquipmentID     string
	EquipmentHealth float64
}

// DewateringTable is a generated dewatering circuit dataset.
type DewateringTable []DewateringRecord

// Len implements dataset.Table.
func (t DewateringTable) Len() int { return len(t) }

func (t DewateringTable) linked() bool { return len(t) > 0 && t[0].EquipmentID != "" }

// Header implements dataset.Table.
func (t DewateringTable) Header() []string {
	h := []string{
		"timestamp", "source_circuit", "feed_grade_pct",
		"feed_solids_pct", "flocculant_dosage_gt", "retention_time_hr",
		"underflow_solids_pct", "overflow_clarity_ntu",
		"thickening_efficiency", "filter_pressure_kpa", "cycle_time_min",
		"cake_moisture_pct", "water_recovery_pct", "solid_recovery_pct",
	}
	if t.linked() {
		h = append(h, "equipment_id", "equipment_health")
	}

	return h
}

// Row implements dataset.Table.
func (t DewateringTable) Row(i int) []string {
	r := t[i]
	row := []string{
		dataset.Time(r.Timestamp),
		string(r.Source),
		dataset.Float(r.FeedGrade, 2),
		dataset.Float(r.FeedSolids, 1),
		dataset.Float(r.FlocculantDose, 1),
		dataset.Float(r.RetentionTime, 1),
		dataset.Float(r.UnderflowSolids, 1),
		dataset.Float(r.OverflowClarity, 0),
		dataset.Float(r.ThickeningEff, 3),
		dataset.Float(r.FilterPressure, 0),
		dataset.Float(r.CycleTime, 0),
		dataset.Float(r.CakeMoisture, 1),
		dataset.Float(r.WaterRecovery*100, 1),
		dataset.Float(r.SolidRecovery*100, 2),
	}
	if t.linked() {
		row = append(row, r.EquipmentID, dataset.Float(r.EquipmentHealth, 1))
	}

	return row
}

// dewaterFeed is one concentrate parcel routed to the thickener.
type dewaterFeed struct {
	source Source
	grade  float64
}

// dewaterPool assembles the feed: up to n/2 parcels resampled from each
// upstream circuit, topped up by resampling the pool itself. With both
// circuits empty the feed is fully synthetic.
func dewaterPool(rng *simrand.Rand, flot FlotationTable, dms DMSTable, n int) []dewaterFeed {
	half := n / 2
	var pool []dewaterFeed

	if len(flot) > 0 {
		k := min(half, len(flot))
		for j := 0; j < k; j++ {
			r := flot[rng.IntN(len(flot))]
			pool = append(pool, dewaterFeed{SourceFlotation, r.ConcGrade})
		}
	}
	if len(dms) > 0 {
		k := min(half, len(dms))
		for j := 0; j < k; j++ {
			r := dms[rng.IntN(len(dms))]
			pool = append(pool, dewaterFeed{SourceDMS, r.SinkGrade})
		}
	}

	if len(pool) == 0 {
		pool = make([]dewaterFeed, n)
		for i := range pool {
			source := SourceFlotation
			if rng.IntN(2) == 1 {
				source = SourceDMS
			}
			pool[i] = dewaterFeed{source, rng.Uniform(fallbackGradeLo, fallbackGradeHi)}
		}

		return pool
	}

	if len(pool) < n {
		full := make([]dewaterFeed, n)
		for i := range full {
			full[i] = pool[rng.IntN(len(pool))]
		}

		return full
	}

	return pool[:n]
}

// Dewatering thickens and filters the combined flotation and DMS
// concentrates. The feed mixes up to n/2 parcels from each circuit;
// with both circuits empty it falls back to a synthetic feed rather
// than failing.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0 and ErrNoCircuitUnits
// when linkage finds no thickener or filter snapshots.
func Dewatering(rng *simrand.Rand, flot FlotationTable, dms DMSTable, n int, opts ...Option) (DewateringTable, error) {
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
	link, err := newLinkage(o.Equipment, isClass(equipment.ClassThickenerFilter))
	if err != nil {
		return nil, err
	}

	out := make(DewateringTable, n)
	for i, feed := range dewaterPool(rng, flot, dms, n) {
		feedSolids := rng.Uniform(15, 25)
		flocculant := rng.Uniform(o.FlocculantDosage[0], o.FlocculantDosage[1])
		retention := rng.Uniform(2, 6)
		underflow := rng.Uniform(55, 70)
		clarity := rng.Uniform(10, 50)

		thickEff := simrand.Clip((underflow-feedSolids)/(underflowCeiling-feedSolids), thickEffMin, thickEffMax)

		r := DewateringRecord{
			Timestamp:       dataset.Stamp(i, dewaterStride),
			Source:          feed.source,
			FeedGrade:       feed.grade,
			FeedSolids:      feedSolids,
			FlocculantDose:  flocculant,
			RetentionTime:   retention,
			UnderflowSolids: underflow,
			OverflowClarity: clarity,
		}
		if link != nil {
			snap := link.pick(rng)
			r.EquipmentID = snap.EquipmentID
			r.EquipmentHealth = snap.HealthScore
			thickEff *= healthFactor(snap.HealthScore)
		}
		r.ThickeningEff = thickEff

		r.FilterPressure = rng.Uniform(200, 400)
		r.CycleTime = rng.Uniform(45, 90)
		// Higher filter pressure squeezes a drier cake.
		r.CakeMoisture = simrand.Clip(rng.Uniform(8, 12)+(400-r.FilterPressure)/200*0.2,
			cakeMoistureMin, cakeMoistureMax)
		r.WaterRecovery = rng.Uniform(0.85, 0.95)
		r.SolidRecovery = rng.Uniform(0.98, 0.999)

		out[i] = r
	}

	return out, nil
}
