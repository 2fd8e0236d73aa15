package crushing_test

import (
	"testing"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/crushing"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstreamOre(t *testing.T, seed int64, n int) (*simrand.Rand, orefeed.Table) {
	t.Helper()
	rng := simrand.New(seed)
	ore, err := orefeed.Generate(rng, n)
	require.NoError(t, err)

	return rng, ore
}

// TestGenerate_Errors covers the two fail-fast conditions.
func TestGenerate_Errors(t *testing.T) {
	rng, ore := upstreamOre(t, 1, 10)

	_, err := crushing.Generate(rng, ore, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidSampleSize)

	_, err = crushing.Generate(rng, nil, 10)
	assert.ErrorIs(t, err, dataset.ErrEmptyUpstream)

	_, err = crushing.Generate(rng, ore, 10, crushing.WithGapRange(25, 12))
	assert.ErrorIs(t, err, crushing.ErrOptionViolation)
}

// TestGenerate_ClipRanges verifies all documented clip intervals and
// operator parameter ranges.
func TestGenerate_ClipRanges(t *testing.T) {
	rng, ore := upstreamOre(t, 42, 500)
	table, err := crushing.Generate(rng, ore, 5000)
	require.NoError(t, err)
	require.Len(t, table, 5000)

	for _, r := range table {
		assert.GreaterOrEqual(t, r.PowerDraw, 200.0)
		assert.LessOrEqual(t, r.PowerDraw, 800.0)
		assert.GreaterOrEqual(t, r.LinerWear, 20.0)
		assert.LessOrEqual(t, r.LinerWear, 100.0)
		assert.GreaterOrEqual(t, r.FeedRate, 80.0)
		assert.Less(t, r.FeedRate, 140.0)
		assert.GreaterOrEqual(t, r.CrusherGap, 12.0)
		assert.Less(t, r.CrusherGap, 25.0)
	}
}

// TestGenerate_BootstrapSubset verifies the resampling invariant: every
// carried feed attribute value must exist in the upstream table.
func TestGenerate_BootstrapSubset(t *testing.T) {
	rng, ore := upstreamOre(t, 7, 200)

	hardness := map[float64]bool{}
	moisture := map[float64]bool{}
	for _, r := range ore {
		hardness[r.WorkIndex] = true
		moisture[r.Moisture] = true
	}

	table, err := crushing.Generate(rng, ore, 1000)
	require.NoError(t, err)
	for _, r := range table {
		assert.True(t, hardness[r.OreHardness], "ore hardness must be resampled, not invented")
		assert.True(t, moisture[r.FeedMoisture], "feed moisture must be resampled, not invented")
	}
}

// TestGenerate_OutputSizeIndependent verifies M can exceed the upstream
// size: the bootstrap draws with replacement.
func TestGenerate_OutputSizeIndependent(t *testing.T) {
	rng, ore := upstreamOre(t, 3, 5)
	table, err := crushing.Generate(rng, ore, 100)
	require.NoError(t, err)
	assert.Len(t, table, 100)
}

// TestGenerate_WearVibrationLink checks the documented inverse link:
// records with a fresher liner vibrate less on average.
func TestGenerate_WearVibrationLink(t *testing.T) {
	rng, ore := upstreamOre(t, 11, 500)
	table, err := crushing.Generate(rng, ore, 8000)
	require.NoError(t, err)

	var wornSum, freshSum float64
	var worn, fresh int
	for _, r := range table {
		if r.LinerWear < 50 {
			wornSum += r.VibrationRMS
			worn++
		} else if r.LinerWear > 90 {
			freshSum += r.VibrationRMS
			fresh++
		}
	}
	require.Positive(t, worn)
	require.Positive(t, fresh)
	assert.Greater(t, wornSum/float64(worn), freshSum/float64(fresh))
}
