// Package beneficiation generates the four downstream concentration
// circuits of the plant:
//
//   - Flotation — froth flotation of the separation concentrate, with
//     reagent dosages, pH response and froth characteristics. 3 h stride.
//   - DMS — dense media separation of raw ore in ferrosilicon medium,
//     sink/float split driven by the ore-to-media density gap. 4 h stride.
//   - Jigging — gravity stratification of raw ore with stroke
//     optimisation around a work index of 4. 2.5 h stride.
//   - Dewatering — thickening and filtration of the combined flotation
//     and DMS concentrates. 4 h stride.
//
// Each circuit resamples its upstream table with replacement, draws its
// operating parameters, and derives efficiency, concentrate, tailings
// and recovery columns with documented clip bounds.
//
// # Equipment linkage
//
// WithEquipmentHealth ties circuit performance to the condition of the
// machines that run it. When enabled, every record picks an inspection
// snapshot of a unit from the circuit's own equipment (flotation cells,
// DMS cyclones, jigs, thickeners and filters respectively), scales the
// circuit efficiency by 0.85 + 0.15*health/100, and emits equipment_id
// and equipment_health columns. Without the option the columns and the
// scaling are absent. Enabling linkage consumes extra random draws, so
// linked and unlinked runs of the same seed diverge.
package beneficiation
