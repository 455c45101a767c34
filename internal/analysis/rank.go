package analysis

import (
	"sort"

	"vguppi-screen/internal/vguppi"
)

// RankBySensitivity computes sensitivities for every parameter and sorts
// descending by Range: the parameters that move the measure most come first.
func RankBySensitivity(base vguppi.Inputs, measure string, steps int) ([]ParamSensitivity, error) {
	out := make([]ParamSensitivity, 0, len(vguppi.ParamNames))
	for _, name := range vguppi.ParamNames {
		s, err := ComputeSensitivity(base, name, measure, steps)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Range > out[j].Range
	})
	return out, nil
}
