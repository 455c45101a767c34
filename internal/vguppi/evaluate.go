package vguppi

// Intermediates holds the elasticity values the vGUPPI formulae build on.
type Intermediates struct {
	// EP is the elasticity of R's price w.r.t. U's price.
	EP float64
	// ESD and ESR are the elasticities of U's purchase share w.r.t. U's
	// price, on the D side and the R side. They share a formula today but
	// are computed independently so the two can diverge later.
	ESD float64
	ESR float64
}

// Results holds everything one evaluation produces: the intermediates plus
// the five vGUPPI measures.
type Results struct {
	Intermediates

	// VGUPPIU: upstream pricing pressure on the rival's input price.
	VGUPPIU float64
	// VGUPPIR: rival product-level pricing pressure.
	VGUPPIR float64
	// VGUPPID1: downstream pressure, no EDM, no input substitution.
	VGUPPID1 float64
	// VGUPPID2: downstream pressure with EDM, no input substitution.
	VGUPPID2 float64
	// VGUPPID3: downstream pressure with EDM and input substitution.
	VGUPPID3 float64
}

// ComputeIntermediates computes e_p, e_sd and e_sr.
func ComputeIntermediates(in Inputs) (Intermediates, error) {
	if in.PR == 0 {
		return Intermediates{}, &DivisionByZeroError{Divisor: "p_R"}
	}
	ep := in.PtrR * in.WR / in.PR

	if in.MU == 0 {
		return Intermediates{}, &DivisionByZeroError{Divisor: "m_U"}
	}
	esd := (1.0 / in.MU) - (in.E * ep)
	esr := (1.0 / in.MU) - (in.E * ep)

	return Intermediates{EP: ep, ESD: esd, ESR: esr}, nil
}

// Evaluate runs the full formula chain in its fixed order. It is a pure
// function: identical inputs always produce identical results, and no shared
// state is touched, so concurrent callers need no coordination.
//
// Divisors are checked at the point of first use; the whole evaluation fails
// on the first zero divisor, with no partial results.
func Evaluate(in Inputs) (*Results, error) {
	inter, err := ComputeIntermediates(in)
	if err != nil {
		return nil, err
	}

	if in.WR == 0 {
		return nil, &DivisionByZeroError{Divisor: "w_R"}
	}
	if inter.EP == 0 {
		return nil, &DivisionByZeroError{Divisor: "e_p"}
	}
	// Upstream pressure on R's input price.
	vu := (in.DrRD * in.MD * in.PD / in.WR) / (1.0 + (in.MR * inter.ESR / inter.EP))

	// R's product-level pressure, driven by the upstream pressure passed
	// through to R's input cost. p_R was already checked above.
	vr := vu * in.PtrU * in.WR / in.PR * (1.0 - (vu * in.PtrU * inter.ESR))

	if in.PD == 0 {
		return nil, &DivisionByZeroError{Divisor: "p_D"}
	}
	// Downstream pressure: D1 ignores EDM, D2 nets out the eliminated
	// double margin, D3 additionally accounts for input substitution.
	d1 := in.DrDU * in.MU * in.WU / in.PD
	d2 := d1 - (in.MUD * in.WD / in.PD)
	d3 := d2 - (inter.ESD * in.MUD * in.MUD * in.WD / in.PD)

	return &Results{
		Intermediates: inter,
		VGUPPIU:       vu,
		VGUPPIR:       vr,
		VGUPPID1:      d1,
		VGUPPID2:      d2,
		VGUPPID3:      d3,
	}, nil
}

// Measure returns one of the five vGUPPI values by name.
func (r *Results) Measure(name string) (float64, error) {
	switch name {
	case MeasureU:
		return r.VGUPPIU, nil
	case MeasureR:
		return r.VGUPPIR, nil
	case MeasureD1:
		return r.VGUPPID1, nil
	case MeasureD2:
		return r.VGUPPID2, nil
	case MeasureD3:
		return r.VGUPPID3, nil
	default:
		return 0, &UnknownMeasureError{Name: name}
	}
}
