package vguppi

// Inputs defines the full parameter set for one vGUPPI evaluation.
//
// Notation:
// - U: upstream supplier making an input used by D and R.
// - D: downstream producer (merges with U).
// - R: downstream rival.
//
// Margins, diversion ratios and pass-through rates are dimensionless,
// conventionally in [0,1] but not enforced: the formulae are defined for any
// real inputs, except where a divisor is zero.
type Inputs struct {
	PD float64 // p_D: D's product price
	PR float64 // p_R: R's product price
	WD float64 // w_D: U's price selling to D
	WR float64 // w_R: U's price selling to R
	WU float64 // w_U: U's average price to rivals

	MD  float64 // m_D: D's profit margin
	MR  float64 // m_R: R's profit margin
	MU  float64 // m_U: U's average margin on sales to rivals
	MUD float64 // m_UD: U's margin on sales to D

	DrRD float64 // dr_RD: fraction of sales diverted to D from an R price increase
	DrDU float64 // dr_DU: fraction of sales gained by U from a D price increase
	DrUD float64 // dr_UD: fraction of sales diverted to D from a U price increase

	PtrU float64 // ptr_U: pass-through of a U cost increase to R's input price
	PtrR float64 // ptr_R: pass-through of an R cost increase to R's product price

	E float64 // e: elasticity of downstream demand w.r.t. downstream price
}

// ParamNames lists all parameter names in declaration order. This order is
// stable; it drives missing-parameter reporting, CSV columns and API listings.
var ParamNames = []string{
	"p_D", "p_R", "w_D", "w_R", "w_U",
	"m_D", "m_R", "m_U", "m_UD",
	"dr_RD", "dr_DU", "dr_UD",
	"ptr_U", "ptr_R",
	"e",
}

// Defaults returns the canonical default parameter set.
func Defaults() Inputs {
	return Inputs{
		PD: 20, PR: 20,
		WD: 10, WR: 10, WU: 10,
		MD: 0.5, MR: 0.5, MU: 0.5, MUD: 0.5,
		DrRD: 0.4, DrDU: 0.25, DrUD: 0.4,
		PtrU: 0.5, PtrR: 0.5,
		E: 1,
	}
}

// FromMap builds Inputs from a name-keyed record. Every one of the 15
// parameter names must be present; the first absent name (in ParamNames
// order) fails with a MissingParameterError.
func FromMap(m map[string]float64) (Inputs, error) {
	var in Inputs
	for _, name := range ParamNames {
		v, ok := m[name]
		if !ok {
			return Inputs{}, &MissingParameterError{Name: name}
		}
		// Names in ParamNames are always settable.
		in, _ = in.WithParam(name, v)
	}
	return in, nil
}

// Map returns the inputs as a name-keyed record.
func (in Inputs) Map() map[string]float64 {
	return map[string]float64{
		"p_D": in.PD, "p_R": in.PR,
		"w_D": in.WD, "w_R": in.WR, "w_U": in.WU,
		"m_D": in.MD, "m_R": in.MR, "m_U": in.MU, "m_UD": in.MUD,
		"dr_RD": in.DrRD, "dr_DU": in.DrDU, "dr_UD": in.DrUD,
		"ptr_U": in.PtrU, "ptr_R": in.PtrR,
		"e": in.E,
	}
}

// Param returns the value of the named parameter.
func (in Inputs) Param(name string) (float64, error) {
	v, ok := in.Map()[name]
	if !ok {
		return 0, &UnknownParameterError{Name: name}
	}
	return v, nil
}

// WithParam returns a copy of the inputs with the named parameter replaced.
// The receiver is not modified.
func (in Inputs) WithParam(name string, value float64) (Inputs, error) {
	out := in
	switch name {
	case "p_D":
		out.PD = value
	case "p_R":
		out.PR = value
	case "w_D":
		out.WD = value
	case "w_R":
		out.WR = value
	case "w_U":
		out.WU = value
	case "m_D":
		out.MD = value
	case "m_R":
		out.MR = value
	case "m_U":
		out.MU = value
	case "m_UD":
		out.MUD = value
	case "dr_RD":
		out.DrRD = value
	case "dr_DU":
		out.DrDU = value
	case "dr_UD":
		out.DrUD = value
	case "ptr_U":
		out.PtrU = value
	case "ptr_R":
		out.PtrR = value
	case "e":
		out.E = value
	default:
		return in, &UnknownParameterError{Name: name}
	}
	return out, nil
}

// WithOverrides applies a partial name-keyed override set on top of the
// receiver. Unknown names fail; absent names keep the receiver's value.
func (in Inputs) WithOverrides(overrides map[string]float64) (Inputs, error) {
	out := in
	var err error
	for _, name := range ParamNames {
		if v, ok := overrides[name]; ok {
			out, err = out.WithParam(name, v)
			if err != nil {
				return in, err
			}
		}
	}
	// Catch override keys that are not parameters at all.
	if len(overrides) > 0 {
		known := make(map[string]struct{}, len(ParamNames))
		for _, name := range ParamNames {
			known[name] = struct{}{}
		}
		for k := range overrides {
			if _, ok := known[k]; !ok {
				return in, &UnknownParameterError{Name: k}
			}
		}
	}
	return out, nil
}
