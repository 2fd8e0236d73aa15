package equipment

import (
	"time"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Clip bounds and derivation coefficients.
const (
	healthNoise = 10.0
	healthMin   = 20.0
	healthMax   = 100.0

	vibrationMin = 0.3 // mm/s
	vibrationMax = 20.0

	temperatureMin = 25.0 // degC
	temperatureMax = 135.0

	powerFactorMin = 0.55
	powerFactorMax = 0.98

	failureMax = 0.85

	rulHorizon = 1825.0 // days; five-year planning window
	rulNoise   = 100.0
	rulMin     = 1.0
	rulMax     = 2500.0
)

// Priority buckets a failure probability into a maintenance priority,
// 1 (critical) through 5 (routine).
func Priority(failureProbability float64) int {
	switch {
	case failureProbability > 0.5:
		return 1
	case failureProbability > 0.3:
		return 2
	case failureProbability > 0.15:
		return 3
	case failureProbability > 0.05:
		return 4
	default:
		return 5
	}
}

// Generate produces n inspection snapshots over the fleet. Each row
// picks a unit uniformly, ages it uniformly over its class design
// life, and derives condition indicators from the resulting health
// score. Timestamps land at random whole hours within a 2n-hour
// horizon, so the table is not time ordered.
//
// Returns dataset.ErrInvalidSampleSize for n <= 0.
func Generate(rng *simrand.Rand, n int) (Table, error) {
	if n <= 0 {
		return nil, dataset.ErrInvalidSampleSize
	}

	fleet := Fleet()
	out := make(Table, n)
	for i := range out {
		unit := fleet[rng.IntN(len(fleet))]
		life := designLife(unit.Class)
		deg := classDegradation[unit.Class]

		hours := rng.Uniform(0, life)

		// Health decays linearly over twice the design life.
		health := simrand.Clip(100*(1-hours/(2*life))+rng.Normal(0, healthNoise), healthMin, healthMax)
		lost := 100 - health

		vibration := simrand.Clip(deg.vibBase+lost*deg.vibSlope+rng.Normal(0, deg.vibNoise), vibrationMin, vibrationMax)
		temperature := simrand.Clip(deg.tempBase+lost*deg.tempSlope+rng.Normal(0, deg.tempNoise), temperatureMin, temperatureMax)
		powerFactor := simrand.Clip(deg.pfBase-lost*deg.pfSlope, powerFactorMin, powerFactorMax)
		wear := simrand.Clip(lost*deg.wearSlope, 0, 100)

		failure := simrand.Clip((1-(health/100)*(health/100))*(1+wear/200), 0, failureMax)
		rul := simrand.Clip((health/100)*rulHorizon*(1-wear/200)+rng.Normal(0, rulNoise), rulMin, rulMax)

		out[i] = Record{
			Timestamp:          dataset.Epoch.Add(time.Duration(rng.IntN(2*n)) * time.Hour),
			EquipmentID:        unit.ID,
			EquipmentType:      unit.Type,
			OperatingHours:     hours,
			HealthScore:        health,
			VibrationRMS:       vibration,
			Temperature:        temperature,
			PowerFactor:        powerFactor,
			WearRate:           wear,
			FailureProbability: failure,
			RULDays:            rul,
			Priority:           Priority(failure),
		}
	}

	return out, nil
}
