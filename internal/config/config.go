package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vguppi-screen/internal/vguppi"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the base input set from a separate YAML scenario file.
	// Inline keys under `inputs` override values from the scenario file.
	ScenarioFile string             `yaml:"scenario_file"`
	Inputs       map[string]float64 `yaml:"inputs"`
}

// Load reads, merges and validates a config. Validation requires all 15
// parameters to resolve and the merged input set to evaluate cleanly.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		base, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Inputs = MergeInputs(base, c.Inputs)
	}
	return &c, nil
}

// Validate checks that the merged input set is complete and evaluates.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	in, err := c.ToInputs()
	if err != nil {
		return err
	}
	if _, err := vguppi.Evaluate(in); err != nil {
		return fmt.Errorf("inputs invalid: %w", err)
	}
	return nil
}

// ToInputs builds the evaluator input record from the merged map.
func (c *Config) ToInputs() (vguppi.Inputs, error) {
	return vguppi.FromMap(c.Inputs)
}

type scenarioFileWrapper struct {
	Inputs map[string]float64 `yaml:"inputs"`
}

func loadScenarioFile(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Inputs, nil
}

// MergeInputs overlays override values onto base by key. Key presence
// decides: an explicit 0 in override wins over the base value.
func MergeInputs(base, override map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
