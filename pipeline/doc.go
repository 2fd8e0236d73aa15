// Package pipeline orchestrates the full synthetic plant run.
//
// Run executes every generator in fixed dependency order from a single
// seeded random stream: ore feed, blend, crushing, separation,
// equipment health, energy, flotation, DMS, jigging and dewatering.
// The result is a Dataset keyed by table name, ready to be written as
// one CSV file per table plus a YAML run manifest.
//
// Configuration comes from a Config value, either built in code or
// loaded from YAML; zero fields fall back to the documented defaults,
// so a partial config file is valid.
package pipeline
