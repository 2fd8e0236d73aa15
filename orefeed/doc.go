// Package orefeed generates the base ore characterization table that every
// downstream circuit bootstraps its feed from, plus the high/low-grade
// blending step.
//
// Columns and distributions:
//
//   - mn_grade_pct        — LogNormal(ln(mean), 0.3), clipped [44.13, 77.71]
//   - fe_content_pct      — U(16, 22) · (1 − mn/60)   (anti-correlated proxy)
//   - siO2_content_pct    — U(2, 8)   · (1 − mn/60)
//   - al2O3_content_pct   — U(5, 8)
//   - p_content_pct       — U(0.05, 0.3)
//   - moisture_pct        — U(5, 10)
//   - p80_mm              — LogNormal(ln 15, 0.4), clipped [5, 50]
//   - work_index_kwh_t    — 12 + 0.3·mn + N(0, 1.5), clipped [8, 22]
//   - specific_gravity    — 3.2 + 0.02·mn + N(0, 0.1)
//   - ore_type            — {oxide 0.6, carbonate 0.3, silicate 0.1}
//
// The Fe and SiO2 scalings go negative above 60% Mn; no clip range is
// defined for them and the values are emitted as computed.
//
// Timestamps advance at a fixed 6-hour stride from dataset.Epoch.
package orefeed
