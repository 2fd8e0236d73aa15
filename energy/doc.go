// Package energy generates the hourly plant power consumption dataset.
//
// Total draw stacks a seasonal base load, crushing power resampled from
// the crushing circuit, spiral and magnetic separator power derived
// from one shared resample of the separation circuit, and uniform
// pump and conveyor auxiliaries. Night hours run at a 0.7 operational
// factor and a 5% maintenance mask drops the total to a tenth. The
// tariff column follows a daily sine around 0.08 $/kWh.
package energy
