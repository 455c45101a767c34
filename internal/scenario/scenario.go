package scenario

import (
	"fmt"

	"vguppi-screen/internal/vguppi"
)

// Scenario is a named partial override set applied on top of base inputs.
type Scenario struct {
	Name      string             `json:"name" yaml:"name"`
	Overrides map[string]float64 `json:"overrides" yaml:"overrides"`
}

// Apply overlays the scenario's overrides onto the base inputs.
func (s Scenario) Apply(base vguppi.Inputs) (vguppi.Inputs, error) {
	return base.WithOverrides(s.Overrides)
}

// Row is one row of per-scenario output: the resolved inputs and everything
// the evaluator produced. This is the primary artifact for "what happened"
// in a sweep.
type Row struct {
	Index   int
	Name    string
	Inputs  vguppi.Inputs
	Results vguppi.Results
}

// Result bundles a full sweep run.
type Result struct {
	Rows []Row
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run evaluates the base inputs first (as row "base"), then each scenario in
// order. The whole run fails on the first evaluation error, identifying the
// scenario; no partial results are returned.
func (e *Engine) Run(base vguppi.Inputs, scenarios []Scenario) (*Result, error) {
	rows := make([]Row, 0, len(scenarios)+1)

	res, err := vguppi.Evaluate(base)
	if err != nil {
		return nil, fmt.Errorf("base inputs: %w", err)
	}
	rows = append(rows, Row{Index: 0, Name: "base", Inputs: base, Results: *res})

	for i, sc := range scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("scenario_%d", i+1)
		}
		in, err := sc.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		res, err := vguppi.Evaluate(in)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		rows = append(rows, Row{Index: i + 1, Name: name, Inputs: in, Results: *res})
	}

	return &Result{Rows: rows}, nil
}
