package main

import (
	"context"
	"math/rand"
	"time"
)

// RetryOptions configures the outer fill-attempt loop.
type RetryOptions struct {
	Seed        int64
	Retries     int           // default 20, raised by the caller to 30-40 when symmetry is mandatory
	OverallTime time.Duration // 0 = no overall deadline
	Fill        FillOptions
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.Retries == 0 {
		o.Retries = 20
	}
	return o
}

// RetryResult summarizes a terminal outcome for diagnostics: attempts made
// and, on success, the winning grid and slot graph.
type RetryResult struct {
	Grid     *Grid
	Slots    *SlotGraph
	Attempts int
}

// RetryController orchestrates: request a template, extract slots, invoke
// the fill engine; on failure regenerate the template and reseed, up to
// Retries attempts.
type RetryController struct {
	Templates TemplateSource
	Lexicon   *Lexicon
	Opts      RetryOptions
}

func NewRetryController(templates TemplateSource, lexicon *Lexicon, opts RetryOptions) *RetryController {
	return &RetryController{Templates: templates, Lexicon: lexicon, Opts: opts.withDefaults()}
}

// Run executes the sequential (single-threaded, deterministic) retry loop.
func (rc *RetryController) Run(ctx context.Context) (*RetryResult, error) {
	rootRng := rand.New(rand.NewSource(rc.Opts.Seed))

	var deadline time.Time
	if rc.Opts.OverallTime > 0 {
		deadline = time.Now().Add(rc.Opts.OverallTime)
	}

	attempts := 0
	var lastFillErr error
	for attempts < rc.Opts.Retries {
		if err := ctx.Err(); err != nil {
			return &RetryResult{Attempts: attempts}, err
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return &RetryResult{Attempts: attempts}, &FillError{Msg: "overall time budget exceeded", Attempts: attempts}
		}
		attempts++

		attemptSeed := rootRng.Int63()
		attemptRng := rand.New(rand.NewSource(attemptSeed))

		grid, err := rc.Templates.Generate(attemptRng)
		if err != nil {
			continue // try a fresh template
		}

		sg := ExtractSlots(grid)

		fillOpts := rc.Opts.Fill
		fillOpts.Rng = rand.New(rand.NewSource(attemptSeed ^ 0x5bd1e995))
		engine := NewFillEngine(rc.Lexicon, fillOpts)

		if err := engine.Fill(grid, sg); err != nil {
			lastFillErr = err
			continue // reseed and regenerate
		}

		return &RetryResult{Grid: grid, Slots: sg, Attempts: attempts}, nil
	}

	if lastFillErr != nil {
		return &RetryResult{Attempts: attempts}, &FillError{Msg: "retry budget exhausted without a successful fill", Attempts: attempts, Cause: lastFillErr}
	}
	return &RetryResult{Attempts: attempts}, &TemplateError{Msg: "retry budget exhausted without a successful fill"}
}

// RunParallel runs independent attempts concurrently and returns the first
// success, then cancels the shared context. An attempt checks the context
// only before it starts; a fill already in progress runs until it finishes
// or hits its own budget. Each attempt gets its own RNG and working grid;
// there is no shared mutable state across attempts.
func (rc *RetryController) RunParallel(ctx context.Context) (*RetryResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rootRng := rand.New(rand.NewSource(rc.Opts.Seed))
	type outcome struct {
		result *RetryResult
		err    error
	}
	results := make(chan outcome, rc.Opts.Retries)

	for i := 0; i < rc.Opts.Retries; i++ {
		attemptSeed := rootRng.Int63()
		go func(seed int64, idx int) {
			select {
			case <-ctx.Done():
				results <- outcome{err: ctx.Err()}
				return
			default:
			}

			attemptRng := rand.New(rand.NewSource(seed))
			grid, err := rc.Templates.Generate(attemptRng)
			if err != nil {
				results <- outcome{err: err}
				return
			}
			sg := ExtractSlots(grid)

			fillOpts := rc.Opts.Fill
			fillOpts.Rng = rand.New(rand.NewSource(seed ^ 0x5bd1e995))
			engine := NewFillEngine(rc.Lexicon, fillOpts)

			if err := engine.Fill(grid, sg); err != nil {
				results <- outcome{err: err}
				return
			}
			results <- outcome{result: &RetryResult{Grid: grid, Slots: sg, Attempts: idx + 1}}
		}(attemptSeed, i)
	}

	var lastErr, lastFillErr error
	for i := 0; i < rc.Opts.Retries; i++ {
		out := <-results
		if out.result != nil {
			cancel()
			return out.result, nil
		}
		lastErr = out.err
		if _, ok := out.err.(*FillError); ok {
			lastFillErr = out.err
		}
	}

	if lastFillErr != nil {
		return &RetryResult{Attempts: rc.Opts.Retries}, &FillError{Msg: "all parallel attempts failed", Attempts: rc.Opts.Retries, Cause: lastFillErr}
	}
	return &RetryResult{Attempts: rc.Opts.Retries}, &TemplateError{Msg: "all parallel attempts failed", Cause: lastErr}
}
