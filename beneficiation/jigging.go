package beneficiation

import (
	"math"
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Jigging response coefficients and clip bounds.
const (
	jigEffBase  = 0.72
	jigEffNoise = 0.08
	jigEffMin   = 0.45
	jigEffMax   = 0.88

	jigStrokeOptimum = 4.0 // stroke work index sweet spot

	jigConcGradeMax = 48.0 // % Mn

	jigRecoveryNoise = 0.05
	jigRecoveryMin   = 0.4
	jigRecoveryMax   = 0.85

	jigStride = 150 * time.Minute
)

// JiggingRecord is one jigging circuit sample.
type JiggingRecord struct {
	Timestamp       time.Time
	FeedGrade       float64 // % Mn, resampled raw ore
	StrokeLength    float64 // mm
	StrokeFrequency float64 // strokes/min
	WaterFlow       float64 // m3/h per m2
	BedHeight       float64 // mm
	HutchWater      float64 // m3/h
	ConcGrade       float64 // %, clipped [feed, 48]
	TailingsGrade   float64 // %
	Recovery        float64 // clipped [0.4, 0.85]
	Efficiency      float64 // clipped [0.45, 0.88], then health scaled
	FeedSize        float64 // mm, upstream P80
	OreType         orefeed.OreType

	// Set only under equipment linkage.
	EquipmentID     string
	EquipmentHealth float64
}

// JiggingTable is a generated jigging circuit dataset.
type JiggingTable []JiggingRecord

// Len implements dataset.Table.
func (t JiggingTable) Len() int { return len(t) }

func (t JiggingTable) linked() bool { return len(t) > 0 && t[0].EquipmentID != "" }

// Header implements dataset.Table.
func (t JiggingTable) Header() []string {
	h := []string{
		"timestamp", "feed_grade_pct", "stroke_length_mm",
		"stroke_frequency_spm", "water_flow_m3h_m2", "bed_height_mm",
		"hutch_water_m3h", "concentrate_grade_pct", "tailings_grade_pct",
		"jig_recovery", "separation_efficiency", "feed_size_mm",
		"ore_type",
	}
	if t.linked() {
		h = append(h, "equipment_id", "equipment_health")
	}

	return h
}

// Row implements dataset.Table.
func (t JiggingTable) Row(i int) []string {
	r := t[i]
	row := []string{
		dataset.Time(r.Timestamp),
		dataset.Float(r.FeedGrade, 2),
		dataset.Float(r.StrokeLength, 1),
		dataset.Float(r.StrokeFrequency, 0),
		dataset.Float(r.WaterFlow, 2),
		dataset.Float(r.BedHeight, 0),
		dataset.Float(r.HutchWater, 2),
		dataset.Float(r.ConcGrade, 2),
		dataset.Float(r.TailingsGrade, 3),
		dataset.Float(r.Recovery, 3),
		dataset.Float(r.Efficiency, 3),
		dataset.Float(r.FeedSize, 1),
		string(r.OreType),
	}
	if t.linked() {
		row = append(row, r.EquipmentID, dataset.Float(r.EquipmentHealth, 1))
	}

	return row
}

// Jigging bootstraps n feed rows from the raw ore table and derives
// gravity stratification performance. Efficiency is driven by particle
// size, ore density and how close the stroke work index sits to its
// optimum of 4.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0,
// dataset.ErrEmptyUpstream for an empty ore table, and
// ErrNoCircuitUnits when linkage finds no jig snapshots.
func Jigging(rng *simrand.Rand, ore orefeed.Table, n int, opts ...Option) (JiggingTable, error) {
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
	link, err := newLinkage(o.Equipment, isType("jig"))
	if err != nil {
		return nil, err
	}

	out := make(JiggingTable, n)
	for i, idx := range rng.Indices(len(ore), n) {
		feed := ore[idx]

		stroke := rng.Uniform(o.StrokeLength[0], o.StrokeLength[1])
		frequency := rng.Uniform(150, 250)
		water := rng.Uniform(2, 4)
		bed := rng.Uniform(150, 300)
		hutch := rng.Uniform(1, 2.5)

		sizeFactor := simrand.Clip(feed.P80/20, 0.7, 1.3)
		densityFactor := (feed.SpecificGravity - 2.5) / 1.5

		strokeWork := stroke * frequency / 1000
		strokeFactor := 1 - 0.2*math.Abs(strokeWork-jigStrokeOptimum)/jigStrokeOptimum

		efficiency := simrand.Clip(jigEffBase*sizeFactor*densityFactor*strokeFactor+rng.Normal(0, jigEffNoise),
			jigEffMin, jigEffMax)

		r := JiggingRecord{
			Timestamp:       dataset.Stamp(i, jigStride),
			FeedGrade:       feed.MnGrade,
			StrokeLength:    stroke,
			StrokeFrequency: frequency,
			WaterFlow:       water,
			BedHeight:       bed,
			HutchWater:      hutch,
			FeedSize:        feed.P80,
			OreType:         feed.OreType,
		}
		if link != nil {
			snap := link.pick(rng)
			r.EquipmentID = snap.EquipmentID
			r.EquipmentHealth = snap.HealthScore
			efficiency *= healthFactor(snap.HealthScore)
		}
		r.Efficiency = efficiency
		r.ConcGrade = simrand.Clip(feed.MnGrade*(1.15+0.25*efficiency), feed.MnGrade, jigConcGradeMax)
		r.TailingsGrade = feed.MnGrade * (1 - efficiency) * 0.35
		r.Recovery = simrand.Clip(efficiency*0.82+rng.Normal(0, jigRecoveryNoise), jigRecoveryMin, jigRecoveryMax)

		out[i] = r
	}

	return out, nil
}
