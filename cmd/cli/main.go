package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vguppi-screen/internal/analysis"
	"vguppi-screen/internal/config"
	"vguppi-screen/internal/scenario"
	"vguppi-screen/internal/vguppi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate [--config examples/config.yaml] [--set m_U=0.8 ...] [--json]")
	fmt.Println("  cli sweep --scenarios scenarios.json [--config examples/config.yaml] --out results/sweep.csv")
	fmt.Println("  cli rank [--measure vGUPPI_U] [--steps 21]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate prints e_p/e_sd/e_sr and the five vGUPPI measures")
	fmt.Println("  - without --config, inputs start from the canonical defaults")
	fmt.Println("  - rank sweeps each parameter over its range and sorts by output spread")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional; defaults used otherwise)")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	var sets multiFlag
	fs.Var(&sets, "set", "Override one parameter as name=value (repeatable)")
	_ = fs.Parse(args)

	in, err := loadInputs(*cfgPath, sets)
	if err != nil {
		fail(err)
	}

	res, err := vguppi.Evaluate(in)
	if err != nil {
		fail(err)
	}

	if *asJSON {
		out := map[string]float64{
			"e_p":  res.EP,
			"e_sd": res.ESD,
			"e_sr": res.ESR,
		}
		for _, name := range vguppi.MeasureNames {
			v, _ := res.Measure(name)
			out[name] = v
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fail(err)
		}
		return
	}

	fmt.Printf("%-10s %12.6f\n", "e_p", res.EP)
	fmt.Printf("%-10s %12.6f\n", "e_sd", res.ESD)
	fmt.Printf("%-10s %12.6f\n\n", "e_sr", res.ESR)
	for _, name := range vguppi.MeasureNames {
		v, _ := res.Measure(name)
		fmt.Printf("%-10s %12.6f  %s\n", name, v, vguppi.MeasureDescriptions[name])
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	scenariosPath := fs.String("scenarios", "", "Path to scenarios JSON")
	cfgPath := fs.String("config", "", "Path to YAML config for base inputs (optional)")
	outPath := fs.String("out", "results/sweep.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *scenariosPath == "" {
		fmt.Println("--scenarios is required")
		os.Exit(2)
	}

	base, err := loadInputs(*cfgPath, nil)
	if err != nil {
		fail(err)
	}

	set, err := scenario.LoadJSON(*scenariosPath)
	if err != nil {
		fail(err)
	}

	engine := scenario.New()
	res, err := engine.Run(base, set.Scenarios)
	if err != nil {
		fail(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fail(err)
	}
	if err := scenario.WriteResultsCSV(*outPath, res.Rows); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outPath)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	measure := fs.String("measure", vguppi.MeasureU, "Measure to rank sensitivity against")
	steps := fs.Int("steps", 21, "Grid points per parameter sweep")
	cfgPath := fs.String("config", "", "Path to YAML config for base inputs (optional)")
	_ = fs.Parse(args)

	base, err := loadInputs(*cfgPath, nil)
	if err != nil {
		fail(err)
	}

	ranked, err := analysis.RankBySensitivity(base, *measure, *steps)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%-4s %-8s %-18s %-10s %-6s %-12s %-12s %-12s\n",
		"rank", "param", "group", "base", "valid", "min", "max", "range")
	for i, s := range ranked {
		fmt.Printf("%-4d %-8s %-18s %-10.4f %-6d %-12.6f %-12.6f %-12.6f\n",
			i+1,
			s.Param,
			s.Group,
			s.BaseValue,
			s.Valid,
			s.MinValue,
			s.MaxValue,
			s.Range,
		)
	}
}

// loadInputs resolves base inputs from a config file (or defaults) plus any
// --set overrides.
func loadInputs(cfgPath string, sets multiFlag) (vguppi.Inputs, error) {
	in := vguppi.Defaults()
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return vguppi.Inputs{}, err
		}
		in, err = cfg.ToInputs()
		if err != nil {
			return vguppi.Inputs{}, err
		}
	}

	for _, kv := range sets {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return vguppi.Inputs{}, fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return vguppi.Inputs{}, fmt.Errorf("invalid --set %q: %w", kv, err)
		}
		in, err = in.WithParam(strings.TrimSpace(name), v)
		if err != nil {
			return vguppi.Inputs{}, err
		}
	}
	return in, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// multiFlag collects repeated flag values.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
