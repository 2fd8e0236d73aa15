package beneficiation_test

import (
	"strings"
	"testing"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/beneficiation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/equipment"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/separation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamPlant builds the ore and separation tables every circuit test
// feeds on.
func upstreamPlant(t *testing.T, seed int64, n int) (*simrand.Rand, orefeed.Table, separation.Table) {
	t.Helper()
	rng := simrand.New(seed)
	ore, err := orefeed.Generate(rng, n)
	require.NoError(t, err)
	sep, err := separation.Generate(rng, ore, n)
	require.NoError(t, err)

	return rng, ore, sep
}

// healthTable generates equipment snapshots for linkage tests.
func healthTable(t *testing.T, seed int64, n int) equipment.Table {
	t.Helper()
	eq, err := equipment.Generate(simrand.New(seed), n)
	require.NoError(t, err)

	return eq
}

func TestFlotation_Errors(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 1, 50)

	_, err := beneficiation.Flotation(rng, sep, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidSampleSize)

	_, err = beneficiation.Flotation(rng, nil, 10)
	assert.ErrorIs(t, err, dataset.ErrEmptyUpstream)

	_, err = beneficiation.Flotation(rng, sep, 10, beneficiation.WithCollectorDosageRange(200, 80))
	assert.ErrorIs(t, err, beneficiation.ErrOptionViolation)

	_, err = beneficiation.Flotation(rng, sep, 10, beneficiation.WithEquipmentHealth(nil))
	assert.ErrorIs(t, err, beneficiation.ErrOptionViolation)
}

// TestFlotation_NoCircuitUnits verifies linkage refuses a health table
// with no flotation cell snapshots.
func TestFlotation_NoCircuitUnits(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 2, 50)

	jigOnly := equipment.Table{{EquipmentID: "jig_01", EquipmentType: "jig", HealthScore: 90}}
	_, err := beneficiation.Flotation(rng, sep, 10, beneficiation.WithEquipmentHealth(jigOnly))
	assert.ErrorIs(t, err, beneficiation.ErrNoCircuitUnits)
}

// TestFlotation_ClipRanges verifies the documented clip intervals and
// reagent draw ranges.
func TestFlotation_ClipRanges(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 42, 500)
	table, err := beneficiation.Flotation(rng, sep, 5000)
	require.NoError(t, err)
	require.Len(t, table, 5000)

	for _, r := range table {
		assert.GreaterOrEqual(t, r.Recovery, 0.45)
		assert.LessOrEqual(t, r.Recovery, 0.92)
		assert.GreaterOrEqual(t, r.ConcGrade, r.FeedGrade, "flotation must not degrade the feed")
		assert.LessOrEqual(t, r.ConcGrade, 52.0)
		assert.GreaterOrEqual(t, r.FrothStability, 0.3)
		assert.LessOrEqual(t, r.FrothStability, 0.95)
		assert.GreaterOrEqual(t, r.CollectorDose, 80.0)
		assert.Less(t, r.CollectorDose, 200.0)
		assert.GreaterOrEqual(t, r.PH, 8.5)
		assert.Less(t, r.PH, 10.5)
		assert.GreaterOrEqual(t, r.TailingsGrade, 0.0)
	}
}

// TestFlotation_BootstrapSubset verifies feed grades and ore types are
// resampled from the separation table.
func TestFlotation_BootstrapSubset(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 7, 200)

	grades := map[float64]bool{}
	for _, r := range sep {
		grades[r.FinalConcGrade] = true
	}

	table, err := beneficiation.Flotation(rng, sep, 1000)
	require.NoError(t, err)
	for _, r := range table {
		assert.True(t, grades[r.FeedGrade], "feed grade must be resampled, not invented")
	}
}

// TestFlotation_EquipmentLinkage verifies linked tables carry the two
// extra columns and only flotation cell units.
func TestFlotation_EquipmentLinkage(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 11, 200)
	eq := healthTable(t, 11, 2000)

	table, err := beneficiation.Flotation(rng, sep, 500, beneficiation.WithEquipmentHealth(eq))
	require.NoError(t, err)

	header := table.Header()
	require.Equal(t, "equipment_id", header[len(header)-2])
	require.Equal(t, "equipment_health", header[len(header)-1])

	for i, r := range table {
		assert.True(t, strings.HasPrefix(r.EquipmentID, "flotation_cell_"), "unit %s is not a flotation cell", r.EquipmentID)
		assert.GreaterOrEqual(t, r.EquipmentHealth, 20.0)
		assert.LessOrEqual(t, r.EquipmentHealth, 100.0)
		// Health can only drag recovery below its unlinked floor.
		assert.GreaterOrEqual(t, r.Recovery, 0.45*0.85)
		assert.Len(t, table.Row(i), len(header))
	}
}

// TestFlotation_UnlinkedOmitsColumns verifies the default table has no
// equipment columns.
func TestFlotation_UnlinkedOmitsColumns(t *testing.T) {
	rng, _, sep := upstreamPlant(t, 13, 100)
	table, err := beneficiation.Flotation(rng, sep, 100)
	require.NoError(t, err)

	assert.NotContains(t, table.Header(), "equipment_id")
	assert.Len(t, table.Row(0), len(table.Header()))
}
