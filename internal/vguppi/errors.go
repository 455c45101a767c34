package vguppi

import "fmt"

// MissingParameterError reports an input record that lacks a required
// parameter name.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Name)
}

// DivisionByZeroError reports a zero divisor encountered in the formula
// chain. Divisor is the parameter or intermediate name (e.g. "p_R", "e_p").
type DivisionByZeroError struct {
	Divisor string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s is zero", e.Divisor)
}

// UnknownParameterError reports a name that is not one of the 15 parameters.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter: %s", e.Name)
}

// UnknownMeasureError reports a name that is not one of the five vGUPPI
// measures.
type UnknownMeasureError struct {
	Name string
}

func (e *UnknownMeasureError) Error() string {
	return fmt.Sprintf("unknown measure: %s", e.Name)
}
