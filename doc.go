// Package plantsim generates synthetic, internally correlated datasets for
// a hypothetical manganese ore processing plant — from raw ore feed through
// crushing, separation and beneficiation down to equipment health and
// plant-wide energy consumption.
//
// 🚀 What is plantsim?
//
//	A deterministic dataset factory that brings together:
//		• Ore feed: log-normal Mn grades with anti-correlated impurities
//		• Crushing: Bond's-law power draw, liner wear, vibration
//		• Separation: spiral + magnetic stages with ore-type effects
//		• Beneficiation: froth flotation, dense-media separation, jigging, dewatering
//		• Equipment health: 28-type catalog with class-specific wear signals
//		• Energy: aggregated power with day/night, seasonal and maintenance effects
//
// ✨ Why plantsim?
//
//   - Reproducible – one owned RNG seed drives every draw, no global state
//   - Correlated – downstream circuits bootstrap their feed from upstream tables
//   - Bounded – every derived column is clipped to a documented interval
//   - Flat output – one CSV per table, ready for ML model development
//
// Everything is organized by processing stage, one package per circuit:
//
//	simrand/       — owned RNG, distribution draws, bootstrap sampling, clipping
//	dataset/       — Table abstraction, CSV writer, shared sentinel errors
//	orefeed/       — ore feed characterization + high/low-grade blending
//	crushing/      — crushing circuit performance
//	separation/    — gravity (spiral) and magnetic separation
//	beneficiation/ — flotation, DMS, jigging, dewatering circuits
//	equipment/     — equipment catalog and health monitoring
//	energy/        — plant energy consumption aggregation
//	pipeline/      — orchestrator, configuration, CSV output, run manifest
//
// Quick start:
//
//	cfg := pipeline.DefaultConfig()
//	cfg.Seed = 42
//	ds, err := pipeline.Run(cfg, logger)
//	// ds["ore_feed"], ds["flotation_circuit"], ...
//
// Or run the whole thing from the command line:
//
//	go run ./cmd/plantgen -seed 42 -out ./synthetic
package plantsim
