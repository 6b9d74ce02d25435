// Package completeness decides whether LLM response text looks truncated.
//
// The check is a heuristic safety net, not a grammar validator: a response
// that parses as well-formed JSON is always complete, while anything that
// ends mid-encoding (dangling brace, trailing comma, unterminated string)
// or is suspiciously short is flagged as incomplete so the caller can retry.
// False positives on very short valid answers are an accepted tradeoff.
package completeness

import (
	"encoding/json"
	"strings"
)

// DefaultMinLength is the minimum trimmed length below which non-JSON
// text is considered too short to be a real answer.
const DefaultMinLength = 50

// Classifier reports whether response text appears to be cut off.
// Implementations must never panic; any input yields a boolean.
type Classifier interface {
	IsIncomplete(text string) bool
}

// Heuristic is the default Classifier. The zero value uses DefaultMinLength.
type Heuristic struct {
	// MinLength overrides the short-response threshold when > 0.
	MinLength int
}

// trailing runes that signal a cut in the middle of a structured encoding
const truncationSuffixes = "{[:,\""

// IsIncomplete classifies text, applying rules in order (first match wins):
//
//  1. Empty text is incomplete.
//  2. Well-formed JSON is complete, regardless of any later rule.
//  3. Text ending (after trimming) in an opening brace/bracket, colon,
//     comma, or quote is incomplete, as is a trailing closing brace that
//     has no matching opener in the text.
//  4. Text shorter than the minimum length is incomplete.
func (h Heuristic) IsIncomplete(text string) bool {
	if text == "" {
		return true
	}

	if json.Valid([]byte(text)) {
		return false
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}

	last := trimmed[len(trimmed)-1]
	if strings.IndexByte(truncationSuffixes, last) >= 0 {
		return true
	}
	if last == '}' && !bracesBalanced(trimmed) {
		return true
	}

	minLen := h.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	return len(trimmed) < minLen
}

// bracesBalanced walks s counting curly braces outside string literals.
// Escaped quotes inside strings are honored so embedded JSON fragments
// do not skew the count.
func bracesBalanced(s string) bool {
	depth := 0
	inString := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			if ch == '\\' {
				i++ // skip the escaped character
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0
}
