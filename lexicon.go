package main

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// LexiconEntry is an immutable record: an uppercase A-Z word, a score
// (higher preferred), and its provenance.
type LexiconEntry struct {
	Word     string
	Score    float64
	Bank     bool // true if sourced from the curated word bank
}

// Lexicon is an immutable, pre-indexed collection of LexiconEntry values,
// bucketed by length, filtered with a linear scan against a per-position
// pattern for each query.
type Lexicon struct {
	buckets map[int][]LexiconEntry // length -> entries, descending score
}

// BuildLexicon normalizes, deduplicates, scores, and indexes raw word
// sources. bank maps WORD -> clue text (score 1.0); dictionary is a raw
// word list (score 0.3). Entries that fail the clueability filter (no bank
// entry, no inflection-derivable bank entry, and no semantic-dictionary
// hit) are dropped so every downstream fill has a clue for every word.
func BuildLexicon(bank map[string]string, dictionary []string, semantic SemanticDictionary) (*Lexicon, error) {
	merged := make(map[string]LexiconEntry, len(bank)+len(dictionary))

	for raw := range bank {
		w := normalizeWord(raw)
		if w == "" {
			continue
		}
		merged[w] = LexiconEntry{Word: w, Score: 1.0, Bank: true}
	}

	for _, raw := range dictionary {
		w := normalizeWord(raw)
		if w == "" {
			continue
		}
		if e, ok := merged[w]; ok && e.Score >= 0.3 {
			continue // duplicate, keep the higher-scored occurrence
		}
		if !isClueable(w, bank, semantic) {
			continue
		}
		merged[w] = LexiconEntry{Word: w, Score: 0.3, Bank: false}
	}

	lx := &Lexicon{buckets: make(map[int][]LexiconEntry)}
	for _, e := range merged {
		lx.buckets[len(e.Word)] = append(lx.buckets[len(e.Word)], e)
	}
	for length := range lx.buckets {
		bucket := lx.buckets[length]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Score > bucket[j].Score
		})
		lx.buckets[length] = bucket
	}

	if len(merged) < 1 {
		return nil, &LexiconError{Msg: "no clueable entries after filtering"}
	}
	return lx, nil
}

// normalizeWord uppercases and strips all non-A-Z characters, rejecting
// results shorter than 2 letters.
func normalizeWord(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	w := b.String()
	if len(w) < 2 {
		return ""
	}
	return w
}

// ParseWordList reads a newline-separated word list.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, sc.Err()
}

// ParseWordBank reads a "WORD\tclue text" mapping, one pair per line.
func ParseWordBank(r io.Reader) (map[string]string, error) {
	bank := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		w := normalizeWord(parts[0])
		if w == "" {
			continue
		}
		bank[w] = strings.TrimSpace(parts[1])
	}
	return bank, sc.Err()
}

// Query returns entries of the given length matching pattern, in
// descending score order. pattern[i] == 0 means "any letter at this
// position"; pattern[i] == 'A'..'Z' means a fixed letter. An empty (all
// zero) pattern returns the whole length bucket.
func (lx *Lexicon) Query(length int, pattern []byte) []LexiconEntry {
	if length != len(pattern) {
		return nil
	}
	bucket := lx.buckets[length]
	if bucket == nil {
		return nil
	}
	out := make([]LexiconEntry, 0, len(bucket))
	for _, e := range bucket {
		if matchesPattern(e.Word, pattern) {
			out = append(out, e)
		}
	}
	return out
}

// CountMatches is a cheaper variant of Query for callers that only need the
// candidate count (the fill engine's most-constrained-slot heuristic and
// forward-checking). used excludes words already committed elsewhere in the
// assignment, since those aren't real candidates for this slot either.
func (lx *Lexicon) CountMatches(length int, pattern []byte, used map[string]bool) int {
	if length != len(pattern) {
		return 0
	}
	bucket := lx.buckets[length]
	n := 0
	for _, e := range bucket {
		if used[e.Word] {
			continue
		}
		if matchesPattern(e.Word, pattern) {
			n++
		}
	}
	return n
}

func matchesPattern(word string, pattern []byte) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 0 && word[i] != pattern[i] {
			return false
		}
	}
	return true
}
