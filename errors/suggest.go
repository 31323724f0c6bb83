package errors

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/deepnoodle-ai/ahiru/internal/token"
)

// Suggestion is a known word close to a misspelt one.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar returns the candidates within typing distance of word,
// closest first. Case is ignored when measuring, so "delay" suggests "DELAY",
// but a candidate equal to word is never returned.
func SuggestSimilar(word string, candidates []string) []Suggestion {
	if word == "" {
		return nil
	}
	// One edit for every three characters typed
	limit := max(1, utf8.RuneCountInString(word)/3)
	upper := strings.ToUpper(word)

	var out []Suggestion
	for _, c := range candidates {
		if c == "" || c == word {
			continue
		}
		if d := editDistance(upper, strings.ToUpper(c)); d <= limit {
			out = append(out, Suggestion{Value: c, Distance: d})
		}
	}
	slices.SortFunc(out, func(a, b Suggestion) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

// SuggestCommand returns a "Did you mean" hint naming the script commands
// close to word, or "" when none are.
func SuggestCommand(word string) string {
	return FormatSuggestions(SuggestSimilar(word, token.Commands()))
}

// FormatSuggestions renders suggestions as a hint, or "" when there are none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "Did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s.Value + "'"
	}
	return "Did you mean one of: " + strings.Join(quoted, ", ") + "?"
}

// editDistance is the Levenshtein distance between a and b in runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min(row[j]+1, row[j-1]+1, diag+cost)
			diag, row[j] = row[j], next
		}
	}
	return row[len(rb)]
}
