package models

// EvaluateResponse represents the output of one evaluation.
type EvaluateResponse struct {
	Inputs        map[string]float64 `json:"inputs"`
	Intermediates IntermediateValues `json:"intermediates"`
	Measures      MeasureValues      `json:"measures"`
}

// IntermediateValues contains the derived elasticities.
type IntermediateValues struct {
	EP  float64 `json:"e_p"`
	ESD float64 `json:"e_sd"`
	ESR float64 `json:"e_sr"`
}

// MeasureValues contains the five vGUPPI measures.
type MeasureValues struct {
	VGUPPIU  float64 `json:"vguppi_u"`
	VGUPPIR  float64 `json:"vguppi_r"`
	VGUPPID1 float64 `json:"vguppi_d1"`
	VGUPPID2 float64 `json:"vguppi_d2"`
	VGUPPID3 float64 `json:"vguppi_d3"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Base       EvaluateResponse   `json:"base"`
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name   string           `json:"name"`
	Result EvaluateResponse `json:"result"`
}

// HeatmapResponse represents a computed measure grid. Z[i][j] corresponds to
// (XVals[j], YVals[i]).
type HeatmapResponse struct {
	XParam  string      `json:"x_param"`
	YParam  string      `json:"y_param"`
	Measure string      `json:"measure"`
	XVals   []float64   `json:"x_vals"`
	YVals   []float64   `json:"y_vals"`
	Z       [][]float64 `json:"z"`
}

// ParameterInfo describes one input parameter for UI clients.
type ParameterInfo struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
	Group   string  `json:"group"`
}

// MeasureInfo describes one vGUPPI measure.
type MeasureInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SensitivityResponse represents the response from ranking parameters.
type SensitivityResponse struct {
	Measure  string               `json:"measure"`
	Rankings []SensitivityRanking `json:"rankings"`
}

// SensitivityRanking represents one ranked parameter.
type SensitivityRanking struct {
	Rank      int     `json:"rank"`
	Param     string  `json:"param"`
	Group     string  `json:"group"`
	BaseValue float64 `json:"base_value"`
	Steps     int     `json:"steps"`
	Valid     int     `json:"valid"`
	MinValue  float64 `json:"min_value"`
	MaxValue  float64 `json:"max_value"`
	Range     float64 `json:"range"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
