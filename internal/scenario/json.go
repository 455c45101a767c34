package scenario

import (
	"encoding/json"
	"fmt"
	"os"
)

// Set matches the JSON shape of a scenario file.
//
// Example:
//
//	{
//	  "scenarios": [
//	    {"name": "high_margin", "overrides": {"m_U": 0.8}}
//	  ]
//	}
type Set struct {
	Scenarios []Scenario `json:"scenarios"`
}

func LoadJSON(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &set, nil
}
