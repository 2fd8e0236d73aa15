package orefeed_test

import (
	"testing"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestGenerate_InvalidSampleSize verifies fail-fast on non-positive n.
func TestGenerate_InvalidSampleSize(t *testing.T) {
	rng := simrand.New(1)

	_, err := orefeed.Generate(rng, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidSampleSize)

	_, err = orefeed.Generate(rng, -5)
	assert.ErrorIs(t, err, dataset.ErrInvalidSampleSize)
}

// TestGenerate_OptionViolation verifies deferred option validation.
func TestGenerate_OptionViolation(t *testing.T) {
	rng := simrand.New(1)

	_, err := orefeed.Generate(rng, 10, orefeed.WithGradeMean(-1))
	assert.ErrorIs(t, err, orefeed.ErrOptionViolation)

	_, err = orefeed.Generate(rng, 10, orefeed.WithMoistureRange(10, 5))
	assert.ErrorIs(t, err, orefeed.ErrOptionViolation)
}

// TestGenerate_ClipRanges checks that every clipped column stays inside
// its documented closed interval, for all rows.
func TestGenerate_ClipRanges(t *testing.T) {
	rng := simrand.New(42)
	ore, err := orefeed.Generate(rng, 5000)
	require.NoError(t, err)
	require.Len(t, ore, 5000)

	for _, r := range ore {
		assert.GreaterOrEqual(t, r.MnGrade, 44.13)
		assert.LessOrEqual(t, r.MnGrade, 77.71)
		assert.GreaterOrEqual(t, r.P80, 5.0)
		assert.LessOrEqual(t, r.P80, 50.0)
		assert.GreaterOrEqual(t, r.WorkIndex, 8.0)
		assert.LessOrEqual(t, r.WorkIndex, 22.0)
		assert.GreaterOrEqual(t, r.Moisture, 5.0)
		assert.Less(t, r.Moisture, 10.0)
		assert.GreaterOrEqual(t, r.PContent, 0.05)
		assert.Less(t, r.PContent, 0.3)
	}
}

// TestGenerate_WorkIndexSaturation regresses work index on grade. The
// hardness model 12 + 0.3*mn sits above the 22 kWh/t ceiling for every
// permissible grade (12 + 0.3*44.13 > 22), so the clip pins almost
// every row at the ceiling and the post-clip slope vanishes: the 0.3
// coefficient is only recoverable before clipping.
func TestGenerate_WorkIndexSaturation(t *testing.T) {
	rng := simrand.New(7)
	ore, err := orefeed.Generate(rng, 20000)
	require.NoError(t, err)

	grades := make([]float64, len(ore))
	hardness := make([]float64, len(ore))
	pinned := 0
	for i, r := range ore {
		grades[i] = r.MnGrade
		hardness[i] = r.WorkIndex
		if r.WorkIndex == 22.0 {
			pinned++
		}
	}
	assert.Greater(t, float64(pinned)/float64(len(ore)), 0.95,
		"the work index ceiling must absorb nearly every row")

	_, slope := stat.LinearRegression(grades, hardness, nil, false)
	assert.GreaterOrEqual(t, slope, 0.0, "hardness must not fall with grade")
	assert.InDelta(t, 0.0, slope, 0.01, "saturation flattens the slope")
}

// TestGenerate_SeedScenario is the documented example: 100 records with
// seed 42 and the default 62.0 grade mean.
func TestGenerate_SeedScenario(t *testing.T) {
	rng := simrand.New(42)
	ore, err := orefeed.Generate(rng, 100, orefeed.WithGradeMean(62.0))
	require.NoError(t, err)
	require.Len(t, ore, 100)

	var sum float64
	for _, r := range ore {
		sum += r.MnGrade
		assert.Contains(t, []orefeed.OreType{orefeed.Oxide, orefeed.Carbonate, orefeed.Silicate}, r.OreType)
	}
	mean := sum / float64(len(ore))
	assert.InDelta(t, 62.0, mean, 6.2, "sample mean within ~10%% of target after clipping")
}

// TestGenerate_OreTypeFrequencies verifies the long-run 0.6/0.3/0.1 split.
func TestGenerate_OreTypeFrequencies(t *testing.T) {
	rng := simrand.New(3)
	ore, err := orefeed.Generate(rng, 30000)
	require.NoError(t, err)

	counts := map[orefeed.OreType]int{}
	for _, r := range ore {
		counts[r.OreType]++
	}
	n := float64(len(ore))
	assert.InDelta(t, 0.6, float64(counts[orefeed.Oxide])/n, 0.02)
	assert.InDelta(t, 0.3, float64(counts[orefeed.Carbonate])/n, 0.02)
	assert.InDelta(t, 0.1, float64(counts[orefeed.Silicate])/n, 0.02)
}

// TestGenerate_Timestamps verifies the fixed 6-hour stride.
func TestGenerate_Timestamps(t *testing.T) {
	rng := simrand.New(1)
	ore, err := orefeed.Generate(rng, 3)
	require.NoError(t, err)

	assert.Equal(t, dataset.Epoch, ore[0].Timestamp)
	assert.Equal(t, 6.0, ore[1].Timestamp.Sub(ore[0].Timestamp).Hours())
	assert.Equal(t, 6.0, ore[2].Timestamp.Sub(ore[1].Timestamp).Hours())
}

// TestTable_RowShape verifies header/row agreement and ore_type emission.
func TestTable_RowShape(t *testing.T) {
	rng := simrand.New(1)
	ore, err := orefeed.Generate(rng, 2)
	require.NoError(t, err)

	header := ore.Header()
	row := ore.Row(0)
	require.Len(t, row, len(header))
	assert.Equal(t, "timestamp", header[0])
	assert.Equal(t, "ore_type", header[len(header)-1])
	assert.Equal(t, string(ore[0].OreType), row[len(row)-1])
}
