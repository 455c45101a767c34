package scenario

import (
	"encoding/csv"
	"os"
	"strconv"

	"vguppi-screen/internal/vguppi"
)

// WriteResultsCSV writes one row per evaluated scenario: index, name, the 15
// resolved inputs (in parameter order), the three intermediates, then the
// five measures.
func WriteResultsCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"index", "scenario"}
	header = append(header, vguppi.ParamNames...)
	header = append(header, "e_p", "e_sd", "e_sr")
	header = append(header, vguppi.MeasureNames...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{strconv.Itoa(r.Index), r.Name}
		inputs := r.Inputs.Map()
		for _, name := range vguppi.ParamNames {
			row = append(row, fmtFloat(inputs[name]))
		}
		row = append(row,
			fmtFloat(r.Results.EP),
			fmtFloat(r.Results.ESD),
			fmtFloat(r.Results.ESR),
		)
		for _, name := range vguppi.MeasureNames {
			// Names come from MeasureNames, so the lookup cannot fail.
			v, _ := r.Results.Measure(name)
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
