package beneficiation_test

import (
	"strings"
	"testing"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/beneficiation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/separation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamConcentrates builds flotation and DMS tables for dewatering.
func upstreamConcentrates(t *testing.T, seed int64, n int) (*simrand.Rand, beneficiation.FlotationTable, beneficiation.DMSTable) {
	t.Helper()
	rng, ore := upstreamOre(t, seed, n)
	sep, err := separation.Generate(rng, ore, n)
	require.NoError(t, err)
	flot, err := beneficiation.Flotation(rng, sep, n)
	require.NoError(t, err)
	dms, err := beneficiation.DMS(rng, ore, n)
	require.NoError(t, err)

	return rng, flot, dms
}

func TestDewatering_InvalidSampleSize(t *testing.T) {
	rng, flot, dms := upstreamConcentrates(t, 1, 20)
	_, err := beneficiation.Dewatering(rng, flot, dms, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidSampleSize)
}

// TestDewatering_FeedComposition verifies every parcel traces back to a
// real upstream concentrate with the matching source tag.
func TestDewatering_FeedComposition(t *testing.T) {
	rng, flot, dms := upstreamConcentrates(t, 7, 300)

	flotGrades := map[float64]bool{}
	for _, r := range flot {
		flotGrades[r.ConcGrade] = true
	}
	dmsGrades := map[float64]bool{}
	for _, r := range dms {
		dmsGrades[r.SinkGrade] = true
	}

	table, err := beneficiation.Dewatering(rng, flot, dms, 1000)
	require.NoError(t, err)
	require.Len(t, table, 1000)

	for _, r := range table {
		switch r.Source {
		case beneficiation.SourceFlotation:
			assert.True(t, flotGrades[r.FeedGrade], "flotation parcel grade must exist upstream")
		case beneficiation.SourceDMS:
			assert.True(t, dmsGrades[r.FeedGrade], "dms parcel grade must exist upstream")
		default:
			t.Fatalf("unknown source %q", r.Source)
		}
	}
}

// TestDewatering_SingleCircuit verifies one empty upstream routes the
// whole feed through the other.
func TestDewatering_SingleCircuit(t *testing.T) {
	rng, flot, _ := upstreamConcentrates(t, 9, 100)

	table, err := beneficiation.Dewatering(rng, flot, nil, 400)
	require.NoError(t, err)
	require.Len(t, table, 400)
	for _, r := range table {
		assert.Equal(t, beneficiation.SourceFlotation, r.Source)
	}
}

// TestDewatering_SyntheticFallback verifies both circuits empty yields
// a synthetic feed instead of an error.
func TestDewatering_SyntheticFallback(t *testing.T) {
	table, err := beneficiation.Dewatering(simrand.New(5), nil, nil, 500)
	require.NoError(t, err)
	require.Len(t, table, 500)

	sources := map[beneficiation.Source]int{}
	for _, r := range table {
		sources[r.Source]++
		assert.GreaterOrEqual(t, r.FeedGrade, 42.0)
		assert.Less(t, r.FeedGrade, 50.0)
	}
	assert.Positive(t, sources[beneficiation.SourceFlotation])
	assert.Positive(t, sources[beneficiation.SourceDMS])
}

// TestDewatering_ClipRanges verifies the documented clip intervals.
func TestDewatering_ClipRanges(t *testing.T) {
	rng, flot, dms := upstreamConcentrates(t, 42, 300)
	table, err := beneficiation.Dewatering(rng, flot, dms, 5000)
	require.NoError(t, err)

	for _, r := range table {
		assert.GreaterOrEqual(t, r.ThickeningEff, 0.6)
		assert.LessOrEqual(t, r.ThickeningEff, 0.95)
		assert.GreaterOrEqual(t, r.CakeMoisture, 6.0)
		assert.LessOrEqual(t, r.CakeMoisture, 15.0)
		assert.GreaterOrEqual(t, r.UnderflowSolids, 55.0)
		assert.Less(t, r.UnderflowSolids, 70.0)
		assert.GreaterOrEqual(t, r.WaterRecovery, 0.85)
		assert.Less(t, r.WaterRecovery, 0.95)
		assert.GreaterOrEqual(t, r.SolidRecovery, 0.98)
		assert.Less(t, r.SolidRecovery, 0.999)
	}
}

// TestDewatering_EquipmentLinkage verifies the circuit links only to
// thickeners and filters.
func TestDewatering_EquipmentLinkage(t *testing.T) {
	rng, flot, dms := upstreamConcentrates(t, 11, 100)
	eq := healthTable(t, 11, 2000)

	table, err := beneficiation.Dewatering(rng, flot, dms, 300, beneficiation.WithEquipmentHealth(eq))
	require.NoError(t, err)

	for _, r := range table {
		ok := strings.HasPrefix(r.EquipmentID, "thickener_") ||
			strings.HasPrefix(r.EquipmentID, "vacuum_filter_") ||
			strings.HasPrefix(r.EquipmentID, "filter_press_")
		assert.True(t, ok, "unit %s is not dewatering equipment", r.EquipmentID)
	}
}
