package models

// EvaluateRequest represents the request body for a single evaluation.
// If UseDefaults is set, Inputs is treated as a partial override set on top
// of the canonical defaults; otherwise all 15 parameters are required.
type EvaluateRequest struct {
	Inputs      map[string]float64 `json:"inputs"`
	UseDefaults bool               `json:"use_defaults,omitempty"`
}

// CompareRequest represents a request to evaluate named variations against a
// shared base input set.
type CompareRequest struct {
	Base        map[string]float64 `json:"base"`
	UseDefaults bool               `json:"use_defaults,omitempty"`
	Variations  []Variation        `json:"variations" binding:"required"`
}

// Variation defines one named override set to compare.
type Variation struct {
	Name      string             `json:"name" binding:"required"`
	Overrides map[string]float64 `json:"overrides,omitempty"`
}

// HeatmapRequest represents a request for a 2-D measure grid.
type HeatmapRequest struct {
	Inputs      map[string]float64 `json:"inputs"`
	UseDefaults bool               `json:"use_defaults,omitempty"`

	XParam     string `json:"x_param" binding:"required"`
	YParam     string `json:"y_param" binding:"required"`
	Measure    string `json:"measure" binding:"required"`
	Resolution int    `json:"resolution,omitempty"` // default: 50
}

// SensitivityRequest represents query parameters for ranking parameters by
// how much they move a measure.
type SensitivityRequest struct {
	Measure string `form:"measure,omitempty"` // default: vGUPPI_U
	Steps   int    `form:"steps,omitempty"`   // default: 21
}
