package scenario

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"vguppi-screen/internal/vguppi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRun(t *testing.T) {
	engine := New()
	res, err := engine.Run(vguppi.Defaults(), []Scenario{
		{Name: "high_upstream_margin", Overrides: map[string]float64{"m_U": 0.8}},
		{Overrides: map[string]float64{"e": 2}}, // unnamed, gets a fallback name
	})
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	assert.Equal(t, "base", res.Rows[0].Name)
	assert.InDelta(t, 0.4/4.5, res.Rows[0].Results.VGUPPIU, 1e-9)

	assert.Equal(t, "high_upstream_margin", res.Rows[1].Name)
	assert.Equal(t, 0.8, res.Rows[1].Inputs.MU)
	// e_sd = 1/0.8 - 0.25 = 1.0
	assert.InDelta(t, 1.0, res.Rows[1].Results.ESD, 1e-9)

	assert.Equal(t, "scenario_2", res.Rows[2].Name)
	assert.Equal(t, 2.0, res.Rows[2].Inputs.E)
}

func TestEngineRunFailsWhole(t *testing.T) {
	engine := New()
	res, err := engine.Run(vguppi.Defaults(), []Scenario{
		{Name: "ok", Overrides: map[string]float64{"m_U": 0.8}},
		{Name: "broken", Overrides: map[string]float64{"p_R": 0}},
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.Contains(t, err.Error(), "p_R")
}

func TestEngineRunUnknownOverride(t *testing.T) {
	engine := New()
	_, err := engine.Run(vguppi.Defaults(), []Scenario{
		{Name: "typo", Overrides: map[string]float64{"mU": 0.8}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter")
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "scenarios.json")
	content := `{"scenarios": [
		{"name": "a", "overrides": {"m_U": 0.8}},
		{"name": "b", "overrides": {"e": 2, "p_D": 30}}
	]}`
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	set, err := LoadJSON(p)
	require.NoError(t, err)
	require.Len(t, set.Scenarios, 2)
	assert.Equal(t, "a", set.Scenarios[0].Name)
	assert.Equal(t, 30.0, set.Scenarios[1].Overrides["p_D"])
}

func TestWriteResultsCSV(t *testing.T) {
	engine := New()
	res, err := engine.Run(vguppi.Defaults(), []Scenario{
		{Name: "s1", Overrides: map[string]float64{"m_U": 0.8}},
	})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteResultsCSV(out, res.Rows))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// Header + base + one scenario.
	require.Len(t, records, 3)
	// index, scenario, 15 inputs, 3 intermediates, 5 measures.
	assert.Len(t, records[0], 2+15+3+5)
	assert.Equal(t, "scenario", records[0][1])
	assert.Equal(t, "base", records[1][1])
	assert.Equal(t, "s1", records[2][1])
}
