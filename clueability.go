package main

import "strings"

// SemanticDictionary is the optional third clueability source and the
// auto-clue fallback: an external lookup that can resolve a short
// definition for a word our bank and inflection rules don't cover.
// The only concrete implementation in this repo is the Gemini-backed one
// in semantic.go; it is nil whenever GCP_PROJECT_ID is unset, in which case
// every call below degenerates to "no semantic hit" and the clueability
// filter relies on bank + inflection only.
type SemanticDictionary interface {
	// Define returns a short clue-worthy definition for word, or ("", false)
	// if none is available.
	Define(word string) (string, bool)
}

// isClueable reports whether word can be given a real clue: direct bank
// lookup, inflection-stripped bank lookup, or a semantic dictionary hit.
// Mirrors template_filler.py's _has_clue.
func isClueable(word string, bank map[string]string, semantic SemanticDictionary) bool {
	if _, ok := bank[word]; ok {
		return true
	}
	if _, ok := inflectionBase(word, bank); ok {
		return true
	}
	if semantic != nil {
		if _, ok := semantic.Define(word); ok {
			return true
		}
	}
	return false
}

// inflectionBase strips one of S/ED/ING/ER/LY and returns the bank entry
// for the resulting stem, if any.
func inflectionBase(word string, bank map[string]string) (string, bool) {
	if strings.HasSuffix(word, "S") && len(word) >= 4 {
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c, ok
		}
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c, ok
		}
	}
	if strings.HasSuffix(word, "ED") && len(word) >= 5 {
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c, ok
		}
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c, ok
		}
	}
	if strings.HasSuffix(word, "ING") && len(word) >= 6 {
		base := word[:len(word)-3]
		if c, ok := bank[base]; ok {
			return c, ok
		}
		if c, ok := bank[base+"E"]; ok {
			return c, ok
		}
	}
	if strings.HasSuffix(word, "ER") && len(word) >= 5 {
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c, ok
		}
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c, ok
		}
	}
	if strings.HasSuffix(word, "LY") && len(word) >= 5 {
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c, ok
		}
	}
	return "", false
}

// autoClue derives a clue for a word not directly in the bank: inflection
// derivation first, then the semantic dictionary, then a bare fallback.
// Mirrors template_filler.py's _auto_clue.
func autoClue(word string, bank map[string]string, semantic SemanticDictionary) string {
	if strings.HasSuffix(word, "S") && len(word) >= 4 {
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c + ", pl."
		}
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c + ", pl."
		}
	}
	if strings.HasSuffix(word, "ED") && len(word) >= 5 {
		if c, ok := bank[word[:len(word)-2]]; ok {
			return c + ", past tense"
		}
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c + ", past tense"
		}
	}
	if strings.HasSuffix(word, "ING") && len(word) >= 6 {
		base := word[:len(word)-3]
		if c, ok := bank[base]; ok {
			return c + ", ongoing"
		}
		if c, ok := bank[base+"E"]; ok {
			return c + ", ongoing"
		}
	}
	if strings.HasSuffix(word, "ER") && len(word) >= 5 {
		base := word[:len(word)-2]
		if c, ok := bank[base]; ok {
			return "More " + strings.ToLower(c)
		}
		if c, ok := bank[word[:len(word)-1]]; ok {
			return c + " person"
		}
	}
	if strings.HasSuffix(word, "LY") && len(word) >= 5 {
		if c, ok := bank[word[:len(word)-2]]; ok {
			return "In a " + strings.ToLower(c) + " way"
		}
	}
	if semantic != nil {
		if def, ok := semantic.Define(word); ok {
			return def
		}
	}
	return "Clue for " + word
}
