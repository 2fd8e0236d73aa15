// Package dataset defines the tabular contract shared by every plantsim
// generator: the Table interface, synthetic timestamp helpers, the CSV
// writer, and the two sentinel errors a generator may return.
//
// Records are generated once, in memory, and never mutated; a Table is a
// read-only row view over them. Values stay at full precision in memory —
// rounding to the documented per-column precision happens only when a row
// is formatted for CSV output.
package dataset
