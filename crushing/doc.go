// Package crushing generates crushing circuit performance records by
// bootstrapping feed characteristics from an ore table and deriving
// throughput, power and wear columns.
//
// Power draw follows Bond's law: specific energy scales with the ore work
// index and the reduction between the crusher gap setting and the feed
// P80. Liner wear decays against a 30-day runtime window accumulated from
// exponential inter-sample gaps, and vibration rises as the liner wears.
//
// Timestamps advance at a fixed 1-hour stride from dataset.Epoch.
package crushing
