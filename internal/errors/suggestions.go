package errors

import (
	"sort"
	"strings"
)

// maxSuggestionDistance bounds the edit distance for "did you mean" hints.
const maxSuggestionDistance = 2

// SimilarNames returns the candidates that look like a mistyped name,
// closest first. A candidate matches when its edit distance to name is at
// most two or when one name contains the other.
func SimilarNames(name string, candidates []string) []string {
	if name == "" {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}

	lower := strings.ToLower(name)
	var matches []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		d := levenshtein(lower, lc)
		if d <= maxSuggestionDistance || strings.Contains(lc, lower) || strings.Contains(lower, lc) {
			matches = append(matches, scored{name: c, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}

	return names
}

// UnknownCommandSuggestions builds the hints attached to an unknown command
// error.
func UnknownCommandSuggestions(name string, available []string) []string {
	var suggestions []string
	for _, similar := range SimilarNames(name, available) {
		suggestions = append(suggestions, "did you mean '"+similar+"'?")
	}

	return append(suggestions, "run 'list' to see all available commands")
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
