package main

import (
	"flag"
	"fmt"

	"vguppi-screen/internal/analysis"
	"vguppi-screen/internal/config"
	"vguppi-screen/internal/vguppi"
)

// Demo:
// - Evaluate the canonical default parameter set
// - Sweep one parameter to show how the measures respond
// - Rank all parameters by sensitivity to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	sweepParam := flag.String("sweep", "m_U", "Parameter to sweep in the demo table")
	sweepSteps := flag.Int("n", 6, "Number of sweep rows to print")
	flag.Parse()

	in := vguppi.Defaults()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in, err = cfg.ToInputs()
		if err != nil {
			panic(err)
		}
	}

	res, err := vguppi.Evaluate(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Intermediates: e_p=%.4f  e_sd=%.4f  e_sr=%.4f\n\n", res.EP, res.ESD, res.ESR)
	for _, name := range vguppi.MeasureNames {
		v, _ := res.Measure(name)
		fmt.Printf("%-10s %10.6f  %s\n", name, v, vguppi.MeasureDescriptions[name])
	}

	meta, err := vguppi.MetaFor(*sweepParam)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nSweep of %s over [%.2f, %.2f]:\n", meta.Name, meta.Min, meta.Max)
	fmt.Printf("%-10s", meta.Name)
	for _, name := range vguppi.MeasureNames {
		fmt.Printf(" %12s", name)
	}
	fmt.Println()

	span := meta.Max - meta.Min
	for i := 0; i < *sweepSteps; i++ {
		v := meta.Min + span*float64(i)/float64(*sweepSteps-1)
		swept, err := in.WithParam(meta.Name, v)
		if err != nil {
			panic(err)
		}
		r, err := vguppi.Evaluate(swept)
		if err != nil {
			// Range edges can hit zero divisors (e.g. m_U=0); show and move on.
			fmt.Printf("%-10.4f %s\n", v, err)
			continue
		}
		fmt.Printf("%-10.4f", v)
		for _, name := range vguppi.MeasureNames {
			mv, _ := r.Measure(name)
			fmt.Printf(" %12.6f", mv)
		}
		fmt.Println()
	}

	ranked, err := analysis.RankBySensitivity(in, vguppi.MeasureU, 21)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nMost influential parameters for %s:\n", vguppi.MeasureU)
	for i, s := range ranked[:5] {
		fmt.Printf("%d. %-8s range=%.6f (%s)\n", i+1, s.Param, s.Range, s.Group)
	}

	fmt.Println("\nDone.")
}
