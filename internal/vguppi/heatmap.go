package vguppi

import "fmt"

// HeatmapGrid is a 2-D sweep of one measure over two parameters, all other
// parameters held at the base values. Z[i][j] is the measure at
// (XVals[j], YVals[i]).
type HeatmapGrid struct {
	XParam  string
	YParam  string
	Measure string

	XVals []float64
	YVals []float64
	Z     [][]float64
}

// Heatmap evaluates measure over a resolution×resolution grid spanning the
// metadata ranges of xParam and yParam. Any evaluation failure inside the
// grid fails the whole heatmap, identifying the failing cell.
func Heatmap(base Inputs, xParam, yParam, measure string, resolution int) (*HeatmapGrid, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("resolution must be >= 2, got %d", resolution)
	}
	xMeta, err := MetaFor(xParam)
	if err != nil {
		return nil, err
	}
	yMeta, err := MetaFor(yParam)
	if err != nil {
		return nil, err
	}
	if _, ok := MeasureDescriptions[measure]; !ok {
		return nil, &UnknownMeasureError{Name: measure}
	}

	xVals := linspace(xMeta.Min, xMeta.Max, resolution)
	yVals := linspace(yMeta.Min, yMeta.Max, resolution)

	z := make([][]float64, resolution)
	for i, yv := range yVals {
		row := make([]float64, resolution)
		for j, xv := range xVals {
			in, err := base.WithParam(xParam, xv)
			if err != nil {
				return nil, err
			}
			in, err = in.WithParam(yParam, yv)
			if err != nil {
				return nil, err
			}
			res, err := Evaluate(in)
			if err != nil {
				return nil, fmt.Errorf("heatmap cell (%s=%g, %s=%g): %w", xParam, xv, yParam, yv, err)
			}
			// Measure name was checked above.
			row[j], _ = res.Measure(measure)
		}
		z[i] = row
	}

	return &HeatmapGrid{
		XParam:  xParam,
		YParam:  yParam,
		Measure: measure,
		XVals:   xVals,
		YVals:   yVals,
		Z:       z,
	}, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// Pin the endpoint to avoid accumulated rounding.
	out[n-1] = hi
	return out
}
