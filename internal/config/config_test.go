package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vguppi-screen/internal/vguppi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

const fullInputsYAML = `inputs:
  p_D: 20
  p_R: 20
  w_D: 10
  w_R: 10
  w_U: 10
  m_D: 0.5
  m_R: 0.5
  m_U: 0.5
  m_UD: 0.5
  dr_RD: 0.4
  dr_DU: 0.25
  dr_UD: 0.4
  ptr_U: 0.5
  ptr_R: 0.5
  e: 1
`

func TestLoadInline(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.yaml", fullInputsYAML)
	cfg, err := Load(p)
	require.NoError(t, err)

	in, err := cfg.ToInputs()
	require.NoError(t, err)
	assert.Equal(t, vguppi.Defaults(), in)
}

func TestLoadScenarioFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", fullInputsYAML)
	p := writeFile(t, dir, "config.yaml", `scenario_file: base.yaml
inputs:
  m_U: 0.8
  e: 2
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	in, err := cfg.ToInputs()
	require.NoError(t, err)
	assert.Equal(t, 0.8, in.MU)
	assert.Equal(t, 2.0, in.E)
	// Untouched values come from the scenario file.
	assert.Equal(t, 20.0, in.PD)
}

func TestLoadMissingInput(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.yaml", `inputs:
  p_D: 20
`)
	_, err := Load(p)
	require.Error(t, err)

	var mpErr *vguppi.MissingParameterError
	require.True(t, errors.As(err, &mpErr))
	assert.Equal(t, "p_R", mpErr.Name)
}

func TestLoadZeroDivisorConfig(t *testing.T) {
	// An explicit zero in the override wins the merge and must be caught by
	// validation, not silently produce Inf later.
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", fullInputsYAML)
	p := writeFile(t, dir, "config.yaml", `scenario_file: base.yaml
inputs:
  m_U: 0
`)

	_, err := Load(p)
	require.Error(t, err)
	var dzErr *vguppi.DivisionByZeroError
	require.True(t, errors.As(err, &dzErr))
	assert.Equal(t, "m_U", dzErr.Divisor)
}
