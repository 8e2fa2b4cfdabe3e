package main

import (
	"flag"
	"fmt"
)

// Config is the flat configuration record, populated from flags and
// environment variables. There is no config file format and no CLI
// framework wired in (see DESIGN.md), so stdlib flag is used deliberately.
type Config struct {
	Input     string // XLSX path; empty ⇒ generate mode
	Output    string // PDF output path
	Generate  bool   // use the built-in word bank
	GridSize  int    // default 15 in generate mode; 0 ⇒ auto-derived in XLSX mode
	Title     string
	Seed      int64
	Retries   int
	Symmetry  bool
	Parallel  bool // run retry attempts concurrently (RetryController.RunParallel)
	ProjectID string
	Region    string
}

// ParseConfig builds a Config from CLI flags.
func ParseConfig(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("xwordgen", flag.ContinueOnError)

	cfg := Config{}
	fs.StringVar(&cfg.Input, "input", "", "XLSX path (absent = generate mode)")
	fs.StringVar(&cfg.Output, "output", "", "PDF output path")
	fs.BoolVar(&cfg.Generate, "generate", false, "use the built-in word bank")
	fs.IntVar(&cfg.GridSize, "grid-size", 0, "grid size (default 15 in generate mode)")
	fs.StringVar(&cfg.Title, "title", "CROSSWORD", "puzzle title")
	var seed int64
	fs.Int64Var(&seed, "seed", 0, "RNG seed (default random)")
	fs.IntVar(&cfg.Retries, "retries", 0, "retry budget (default 20, 30 in symmetry mode)")
	fs.BoolVar(&cfg.Symmetry, "symmetry", false, "enforce 180° symmetry in XLSX mode")
	fs.BoolVar(&cfg.Parallel, "parallel", false, "run retry attempts concurrently")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Seed = seed

	if cfg.Input == "" && !cfg.Generate {
		return Config{}, &InputError{Msg: "one of --input or --generate is required"}
	}
	if cfg.GridSize == 0 && cfg.Generate {
		cfg.GridSize = 15
	}
	if cfg.Output == "" {
		if cfg.Input != "" {
			cfg.Output = cfg.Input + ".pdf"
		} else {
			cfg.Output = "crossword.pdf"
		}
	}
	if cfg.Retries == 0 {
		cfg.Retries = 20
		if cfg.Symmetry {
			cfg.Retries = 30
		}
	}

	cfg.ProjectID = getenv("GCP_PROJECT_ID")
	cfg.Region = getenv("GCP_REGION")

	return cfg, nil
}

func (c Config) describe() string {
	mode := "xlsx"
	if c.Input == "" {
		mode = "generate"
	}
	return fmt.Sprintf("mode=%s grid-size=%d seed=%d retries=%d symmetry=%v", mode, c.GridSize, c.Seed, c.Retries, c.Symmetry)
}
