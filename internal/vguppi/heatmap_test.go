package vguppi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmapShape(t *testing.T) {
	grid, err := Heatmap(Defaults(), "dr_RD", "m_D", MeasureU, 10)
	require.NoError(t, err)

	assert.Len(t, grid.XVals, 10)
	assert.Len(t, grid.YVals, 10)
	require.Len(t, grid.Z, 10)
	for _, row := range grid.Z {
		assert.Len(t, row, 10)
	}

	// Endpoints span the metadata ranges exactly.
	assert.Equal(t, 0.0, grid.XVals[0])
	assert.Equal(t, 1.0, grid.XVals[9])
}

func TestHeatmapCenterMatchesDirect(t *testing.T) {
	base := Defaults()
	// Odd resolution so the grid contains the midpoint of both ranges.
	grid, err := Heatmap(base, "dr_RD", "m_D", MeasureU, 41)
	require.NoError(t, err)

	// Locate the grid point closest to the defaults (dr_RD=0.4, m_D=0.5).
	ix, iy := nearestIndex(grid.XVals, 0.4), nearestIndex(grid.YVals, 0.5)
	in, err := base.WithParam("dr_RD", grid.XVals[ix])
	require.NoError(t, err)
	in, err = in.WithParam("m_D", grid.YVals[iy])
	require.NoError(t, err)
	res, err := Evaluate(in)
	require.NoError(t, err)

	assert.InDelta(t, res.VGUPPIU, grid.Z[iy][ix], tol)
}

func TestHeatmapErrors(t *testing.T) {
	base := Defaults()

	_, err := Heatmap(base, "bogus", "m_D", MeasureU, 10)
	var upErr *UnknownParameterError
	require.True(t, errors.As(err, &upErr))

	_, err = Heatmap(base, "dr_RD", "m_D", "vGUPPI_X", 10)
	var umErr *UnknownMeasureError
	require.True(t, errors.As(err, &umErr))

	_, err = Heatmap(base, "dr_RD", "m_D", MeasureU, 1)
	require.Error(t, err)

	// Sweeping m_U hits its range minimum of zero, which is a zero divisor;
	// the whole grid fails rather than returning partial results.
	_, err = Heatmap(base, "m_U", "m_D", MeasureU, 10)
	var dzErr *DivisionByZeroError
	require.True(t, errors.As(err, &dzErr))
	assert.Equal(t, "m_U", dzErr.Divisor)
}

func nearestIndex(vals []float64, target float64) int {
	best := 0
	for i, v := range vals {
		di, db := v-target, vals[best]-target
		if di < 0 {
			di = -di
		}
		if db < 0 {
			db = -db
		}
		if di < db {
			best = i
		}
	}
	return best
}
