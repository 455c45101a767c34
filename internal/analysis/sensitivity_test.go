package analysis

import (
	"errors"
	"testing"

	"vguppi-screen/internal/vguppi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSensitivity(t *testing.T) {
	s, err := ComputeSensitivity(vguppi.Defaults(), "dr_RD", vguppi.MeasureU, 21)
	require.NoError(t, err)

	assert.Equal(t, "dr_RD", s.Param)
	assert.Equal(t, vguppi.GroupDiversion, s.Group)
	assert.Equal(t, 0.4, s.BaseValue)
	assert.Equal(t, 21, s.Steps)
	assert.Equal(t, 21, s.Valid)

	// vGUPPI_U is linear in dr_RD: at dr_RD=0 it is 0, at dr_RD=1 it is
	// (1*0.5*20/10)/4.5 = 1/4.5.
	assert.InDelta(t, 0.0, s.MinValue, 1e-9)
	assert.InDelta(t, 1.0/4.5, s.MaxValue, 1e-9)
	assert.InDelta(t, 1.0/4.5, s.Range, 1e-9)
}

func TestComputeSensitivitySkipsZeroDivisors(t *testing.T) {
	// m_U's range starts at 0, which is a zero divisor; that grid point is
	// skipped rather than failing the sweep.
	s, err := ComputeSensitivity(vguppi.Defaults(), "m_U", vguppi.MeasureD1, 21)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Valid)
	assert.Greater(t, s.Range, 0.0)
}

func TestComputeSensitivityErrors(t *testing.T) {
	_, err := ComputeSensitivity(vguppi.Defaults(), "bogus", vguppi.MeasureU, 10)
	var upErr *vguppi.UnknownParameterError
	require.True(t, errors.As(err, &upErr))

	_, err = ComputeSensitivity(vguppi.Defaults(), "m_U", "vGUPPI_X", 10)
	var umErr *vguppi.UnknownMeasureError
	require.True(t, errors.As(err, &umErr))
}

func TestRankBySensitivity(t *testing.T) {
	ranked, err := RankBySensitivity(vguppi.Defaults(), vguppi.MeasureU, 21)
	require.NoError(t, err)
	require.Len(t, ranked, len(vguppi.ParamNames))

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Range, ranked[i].Range)
	}

	// dr_DU does not appear in the vGUPPI_U formula, so sweeping it does
	// nothing.
	for _, s := range ranked {
		if s.Param == "dr_DU" {
			assert.InDelta(t, 0.0, s.Range, 1e-12)
		}
	}
}
