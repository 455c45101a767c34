package analysis

import (
	"math"

	"vguppi-screen/internal/vguppi"
)

// ParamSensitivity summarizes how much one measure moves when a single
// parameter is swept across its metadata range, all other parameters held at
// the base values. It is the per-parameter analogue of "which slider matters".
type ParamSensitivity struct {
	Param string
	Group string

	Measure string

	// BaseValue is the parameter's value in the base inputs.
	BaseValue float64

	// Steps is the number of grid points attempted; Valid is how many of
	// them evaluated. Grid points that hit a zero divisor (e.g. m_U at its
	// range minimum of 0) are skipped, not fatal.
	Steps int
	Valid int

	MinValue float64
	MaxValue float64

	// Range = MaxValue - MinValue over the valid points. Zero when no point
	// evaluated.
	Range float64
}

// ComputeSensitivity sweeps one parameter over its metadata [min,max] range
// at the given number of steps and records the measure's spread.
func ComputeSensitivity(base vguppi.Inputs, param, measure string, steps int) (ParamSensitivity, error) {
	meta, err := vguppi.MetaFor(param)
	if err != nil {
		return ParamSensitivity{}, err
	}
	if _, ok := vguppi.MeasureDescriptions[measure]; !ok {
		return ParamSensitivity{}, &vguppi.UnknownMeasureError{Name: measure}
	}
	if steps < 2 {
		steps = 2
	}

	baseVal, err := base.Param(param)
	if err != nil {
		return ParamSensitivity{}, err
	}

	s := ParamSensitivity{
		Param:     param,
		Group:     meta.Group,
		Measure:   measure,
		BaseValue: baseVal,
		Steps:     steps,
		MinValue:  math.Inf(1),
		MaxValue:  math.Inf(-1),
	}

	span := meta.Max - meta.Min
	for i := 0; i < steps; i++ {
		v := meta.Min + span*float64(i)/float64(steps-1)
		in, err := base.WithParam(param, v)
		if err != nil {
			return ParamSensitivity{}, err
		}
		res, err := vguppi.Evaluate(in)
		if err != nil {
			continue
		}
		// Measure name was checked above.
		mv, _ := res.Measure(measure)
		if math.IsInf(mv, 0) || math.IsNaN(mv) {
			continue
		}
		s.Valid++
		if mv < s.MinValue {
			s.MinValue = mv
		}
		if mv > s.MaxValue {
			s.MaxValue = mv
		}
	}

	if s.Valid == 0 {
		s.MinValue, s.MaxValue, s.Range = 0, 0, 0
		return s, nil
	}
	s.Range = s.MaxValue - s.MinValue
	return s, nil
}
