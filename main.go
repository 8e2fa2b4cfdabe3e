package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"
)

//go:embed data/wordbank.txt
var embeddedWordBank []byte

//go:embed data/dictionary.txt
var embeddedDictionary []byte

func main() {
	cfg, err := ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Printf("xwordgen: %s", cfg.describe())

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, diagnosticFor(err))
		os.Exit(1)
	}
}

// diagnosticFor renders a short, user-readable message naming the error's
// class before printing it to stderr. Each error type's own Error() already
// names its class, so this only adds a prefix for an error outside the
// taxonomy.
func diagnosticFor(err error) string {
	switch err.(type) {
	case *InputError, *TemplateError, *FillError, *PlacementError, *LexiconError:
		return err.Error()
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

func run(cfg Config) error {
	ctx := context.Background()

	var semantic SemanticDictionary
	if cfg.ProjectID != "" {
		gemini, err := NewGeminiSemanticDictionary(ctx, cfg.ProjectID, cfg.Region)
		if err != nil {
			log.Printf("semantic dictionary disabled: %v", err)
		} else {
			defer gemini.Close()
			semantic = gemini
			log.Printf("semantic dictionary enabled (project: %s)", cfg.ProjectID)
		}
	} else {
		log.Println("GCP_PROJECT_ID not set, semantic dictionary disabled")
	}

	if cfg.Input != "" {
		return runXLSXMode(cfg)
	}
	return runGenerateMode(ctx, cfg, semantic)
}

// runGenerateMode drives the built-in-word-bank pipeline end to end:
// lexicon, template generator, retry controller, numberer, render.
func runGenerateMode(ctx context.Context, cfg Config, semantic SemanticDictionary) error {
	bank, err := ParseWordBank(bytes.NewReader(embeddedWordBank))
	if err != nil {
		return &LexiconError{Msg: "parsing built-in word bank", Cause: err}
	}
	dictionary, err := ParseWordList(bytes.NewReader(embeddedDictionary))
	if err != nil {
		return &LexiconError{Msg: "parsing built-in dictionary", Cause: err}
	}

	lexicon, err := BuildLexicon(bank, dictionary, semantic)
	if err != nil {
		return err
	}

	templates := NewRandomTemplateGenerator(TemplateOptions{Size: cfg.GridSize})
	rc := NewRetryController(templates, lexicon, RetryOptions{
		Seed:    cfg.Seed,
		Retries: cfg.Retries,
	})

	var result *RetryResult
	if cfg.Parallel {
		result, err = rc.RunParallel(ctx)
	} else {
		result, err = rc.Run(ctx)
	}
	if err != nil {
		return err
	}

	numbered := Number(result.Grid, func(direction Direction, row, col int) string {
		answer := slotAnswer(result.Grid, result.Slots, direction, row, col)
		if clue, ok := bank[answer]; ok {
			return clue
		}
		return autoClue(answer, bank, semantic)
	})

	out, err := os.Create(cfg.Output)
	if err != nil {
		return &InputError{Msg: "creating output file", Cause: err}
	}
	defer out.Close()

	renderer := PlainTextRenderer{}
	return renderer.Render(out, result.Grid, numbered.Across, numbered.Down, cfg.Title)
}

// runXLSXMode drives the alternate path: a user-supplied word list placed
// greedily with retry, then numbered and rendered. Real XLSX byte parsing
// is out of scope; this reads a tab-separated "word<TAB>clue" stand-in only
// to exercise the InMemoryXLSXSource contract end to end.
func runXLSXMode(cfg Config) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return &InputError{Msg: "opening XLSX input", Cause: err}
	}
	defer f.Close()

	source, err := loadXLSXSource(f)
	if err != nil {
		return err
	}
	clues, err := source.ReadClues()
	if err != nil {
		return err
	}

	gridSize := cfg.GridSize
	if gridSize == 0 {
		gridSize = ComputeGridSize(len(clues))
	}

	placed, err := PlaceWords(clues, PlacerOptions{
		GridSize: gridSize,
		Seed:     cfg.Seed,
		Retries:  cfg.Retries,
		Symmetry: cfg.Symmetry,
	})
	if err != nil {
		return err
	}

	grid := gridFromPlacement(placed, gridSize)
	answerToClue := make(map[string]string, len(clues))
	for _, c := range clues {
		answerToClue[c.Answer] = c.ClueText
	}
	sg := ExtractSlotsLenient(grid)

	numbered := Number(grid, func(direction Direction, row, col int) string {
		answer := slotAnswer(grid, sg, direction, row, col)
		return answerToClue[answer]
	})

	out, err := os.Create(cfg.Output)
	if err != nil {
		return &InputError{Msg: "creating output file", Cause: err}
	}
	defer out.Close()

	renderer := PlainTextRenderer{}
	return renderer.Render(out, grid, numbered.Across, numbered.Down, cfg.Title)
}

// slotAnswer reads the letters of the slot starting at (row,col) in the
// given direction directly off the filled grid.
func slotAnswer(g *Grid, sg *SlotGraph, direction Direction, row, col int) string {
	for _, s := range sg.Slots {
		if s.Direction == direction && s.Row == row && s.Col == col {
			return string(s.Pattern(g))
		}
	}
	return ""
}

// gridFromPlacement lays placed entries onto a fresh grid: white where a
// letter sits, black everywhere else, matching the XLSX placer's free-form
// (non-symmetric-by-default) topology.
func gridFromPlacement(placed []PlacedEntry, size int) *Grid {
	g := NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.Cells[r][c] = Cell{Type: Black}
		}
	}
	for _, p := range placed {
		dr, dc := stepFor(p.Direction)
		for i := 0; i < len(p.Answer); i++ {
			r, c := p.Row+dr*i, p.Col+dc*i
			g.Cells[r][c] = Cell{Type: White, Letter: letterPtr(p.Answer[i])}
		}
	}
	return g
}

// loadXLSXSource parses the stand-in word/clue source described above.
func loadXLSXSource(f *os.File) (XLSXSource, error) {
	rows, err := ParseWordBank(f)
	if err != nil {
		return nil, &InputError{Msg: "reading XLSX stand-in", Cause: err}
	}
	src := &InMemoryXLSXSource{Header: []string{"word", "clue"}}
	for word, clue := range rows {
		src.Rows = append(src.Rows, []string{word, clue})
	}
	return src, nil
}
