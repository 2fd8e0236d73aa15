// Package simrand provides the single owned source of randomness for every
// generator in plantsim: parametric distribution draws, weighted categorical
// picks, bootstrap index sampling, and range clipping.
//
// A simrand.Rand wraps one PCG stream (math/rand/v2) and hands it to
// gonum's distuv distributions, so a pipeline run seeded with the same
// value replays the exact same draw sequence. Nothing in this package
// touches package-global randomness.
//
// Clip deliberately applies min(max(v, lo), hi): when a formula produces
// an inverted range (lo > hi), the result collapses to hi. Several
// concentrate-grade clips downstream depend on exactly this behavior.
package simrand
