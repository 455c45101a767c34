package vguppi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchMetadata(t *testing.T) {
	m := Defaults().Map()
	require.Len(t, ParamMetas, len(ParamNames))
	for _, meta := range ParamMetas {
		assert.Equal(t, meta.Default, m[meta.Name], meta.Name)
	}
}

func TestWithParam(t *testing.T) {
	base := Defaults()
	got, err := base.WithParam("m_U", 0.8)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.MU)
	// The receiver is unchanged.
	assert.Equal(t, 0.5, base.MU)

	_, err = base.WithParam("nope", 1)
	var upErr *UnknownParameterError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "nope", upErr.Name)
}

func TestWithOverrides(t *testing.T) {
	got, err := Defaults().WithOverrides(map[string]float64{
		"p_D": 30,
		"e":   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.PD)
	assert.Equal(t, 2.0, got.E)
	assert.Equal(t, 20.0, got.PR)

	_, err = Defaults().WithOverrides(map[string]float64{"margin": 0.3})
	var upErr *UnknownParameterError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "margin", upErr.Name)
}

func TestMetaForOrder(t *testing.T) {
	for i, name := range ParamNames {
		meta, err := MetaFor(name)
		require.NoError(t, err)
		assert.Equal(t, ParamMetas[i], meta)
	}
}
