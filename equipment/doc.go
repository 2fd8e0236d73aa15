// Package equipment generates condition-monitoring records for the
// plant's fixed fleet of processing units.
//
// The fleet is a closed catalog of 28 unit types (crushers, screens,
// spirals, flotation cells, cyclones, pumps, conveyors, feeders and so
// on) with per-type unit counts, 130 units in total. Each type belongs
// to exactly one wear Class, and the Class drives everything
// health-related: design life, vibration/temperature/power-factor
// baselines and their degradation slopes, and the wear rate per point
// of lost health.
//
// A record is one inspection snapshot of one randomly picked unit:
// operating hours drawn uniformly over the class design life, a health
// score decaying linearly over twice that life, and derived condition
// indicators. Failure probability grows with lost health and wear, and
// buckets into a 1 (critical) to 5 (routine) maintenance priority via
// Priority.
//
// Inspection timestamps are drawn at random over the sampling horizon,
// so rows are NOT temporally ordered.
package equipment
