package beneficiation

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// DMS response coefficients and clip bounds.
const (
	dmsEffBase  = 0.88
	dmsEffNoise = 0.08
	dmsEffMin   = 0.6
	dmsEffMax   = 0.96

	dmsSinkGradeMax = 50.0 // % Mn

	dmsStride = 4 * time.Hour
)

// DMSRecord is one dense media separation sample.
type DMSRecord struct {
	Timestamp        time.Time
	FeedGrade        float64 // % Mn, resampled raw ore
	FeedSize         float64 // mm, upstream P80
	MediaDensity     float64 // sg
	CyclonePressure  float64 // kPa
	MediaConsumption float64 // kg/t
	MediaRecovery    float64 // fraction, drawn U(0.98, 0.995)
	SinkGrade        float64 // %, clipped [feed, 50]
	FloatGrade       float64 // %
	SinkYield        float64 // fraction, clipped [0.2, 0.8]
	Recovery         float64 // clipped [0.5, 0.9]
	Efficiency       float64 // clipped [0.6, 0.96], then health scaled
	OreDensity       float64 // sg, upstream specific gravity

	// Set only under equipment linkage.
	EquipmentID     string
	EquipmentHealth float64
}

// DMSTable is a generated dense media separation dataset.
type DMSTable []DMSRecord

// Len implements dataset.Table.
func (t DMSTable) Len() int { return len(t) }

func (t DMSTable) linked() bool { return len(t) > 0 && t[0].EquipmentID != "" }

// Header implements dataset.Table.
func (t DMSTable) Header() []string {
	h := []string{
		"timestamp", "feed_grade_pct", "feed_size_mm", "media_density_sg",
		"cyclone_pressure_kpa", "media_consumption_kg_t",
		"media_recovery_pct", "sink_grade_pct", "float_grade_pct",
		"sink_yield_pct", "dms_recovery", "separation_efficiency",
		"ore_density_sg",
	}
	if t.linked() {
		h = append(h, "equipment_id", "equipment_health")
	}

	return h
}

// Row implements dataset.Table.
func (t DMSTable) Row(i int) []string {
	r := t[i]
	row := []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.FeedGrade, 2),
		dataset.Float(r.FeedSize, 1),
		dataset.Float(r.MediaDensity, 2),
		dataset.Float(r.CyclonePressure, 0),
		dataset.Float(r.MediaConsumption, 2),
		dataset.Float(r.MediaRecovery*100, 2),
		dataset.Float(r.SinkGrade, 2),
		dataset.Float(r.FloatGrade, 3),
		dataset.Float(r.SinkYield*100, 1),
		dataset.Float(r.Recovery, 3),
		dataset.Float(r.Efficiency, 3),
		dataset.Float(r.OreDensity, 2),
	}
	if t.linked() {
		row = append(row, r.EquipmentID, dataset.Float(r.EquipmentHealth, 1))
	}

	return row
}

// DMS bootstraps n feed rows from the raw ore table and derives dense
// media separation performance. Efficiency grows with the gap between
// ore and medium density and with particle size.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0,
// dataset.ErrEmptyUpstream for an empty ore table, and
// ErrNoCircuitUnits when linkage finds no DMS cyclone snapshots.
func DMS(rng *simrand.Rand, ore orefeed.Table, n int, opts ...Option) (DMSTable, error) {
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
	link, err := newLinkage(o.Equipment, isType("dms_cyclone"))
	if err != nil {
		return nil, err
	}

	out := make(DMSTable, n)
	for i, idx := range rng.Indices(len(ore), n) {
		feed := ore[idx]

		media := rng.Uniform(o.MediaDensity[0], o.MediaDensity[1])
		pressure := rng.Uniform(80, 120)
		consumption := rng.Uniform(0.5, 2.0)

		// Separation sharpens as the ore pulls away from the medium
		// density, and coarser feed separates cleaner.
		densityFactor := 1 - 0.3*math.Exp(-2*math.Abs(feed.SpecificGravity-media))
		sizeFactor := simrand.Clip(feed.P80/25, 0.8, 1.2)

		efficiency := simrand.Clip(dmsEffBase*densityFactor*sizeFactor+rng.Normal(0, dmsEffNoise),
			dmsEffMin, dmsEffMax)

		r := DMSRecord{
			Timestamp:        dataset.Stamp(i, dmsStride),
			FeedGrade:        feed.MnGrade,
			FeedSize:         feed.P80,
			MediaDensity:     media,
			CyclonePressure:  pressure,
			MediaConsumption: consumption,
			OreDensity:       feed.SpecificGravity,
		}
		if link != nil {
			snap := link.pick(rng)
			r.EquipmentID = snap.EquipmentID
			r.EquipmentHealth = snap.HealthScore
			efficiency *= healthFactor(snap.HealthScore)
		}
		r.Efficiency = efficiency
		r.SinkGrade = simrand.Clip(feed.MnGrade*(1.2+0.3*efficiency), feed.MnGrade, dmsSinkGradeMax)
		r.FloatGrade = feed.MnGrade * (1 - efficiency) * 0.4
		r.SinkYield = simrand.Clip(0.3+0.4*feed.MnGrade/50, 0.2, 0.8)
		r.Recovery = simrand.Clip(r.SinkGrade*r.SinkYield/feed.MnGrade, 0.5, 0.9)
		r.MediaRecovery = rng.Uniform(0.98, 0.995)

		out[i] = r
	}

	return out, nil
}
