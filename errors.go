package main

import "fmt"

// InputError signals malformed input at a validation boundary: an
// unreadable file, an answer with no A-Z letters, a duplicate word entry,
// or an answer too long for the target grid.
type InputError struct {
	Msg   string
	Cause error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("input error: %s", e.Msg)
}

func (e *InputError) Unwrap() error { return e.Cause }

// TemplateError signals that the template generator exhausted its
// construction-attempt budget before producing a valid skeleton.
type TemplateError struct {
	Msg   string
	Cause error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Msg)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// FillError signals that the DFS fill search exhausted without completing,
// raised by the retry controller only after every retry has failed.
type FillError struct {
	Msg     string
	Attempts int
	Cause   error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("fill error: %s (after %d attempts)", e.Msg, e.Attempts)
}

func (e *FillError) Unwrap() error { return e.Cause }

// PlacementError signals that the XLSX-mode placer's best attempt placed
// fewer than the configured minimum number of words.
type PlacementError struct {
	Placed, Minimum int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement error: placed %d words, minimum %d required", e.Placed, e.Minimum)
}

// LexiconError signals that lexicon construction yielded too few clueable
// entries, or that a required source was missing.
type LexiconError struct {
	Msg   string
	Cause error
}

func (e *LexiconError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s", e.Msg)
}

func (e *LexiconError) Unwrap() error { return e.Cause }
