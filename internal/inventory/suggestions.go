package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// NotFoundError reports a missing item together with close names that are stocked
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q", domain.ErrMsgItemNotFound, e.Name)
	}
	return fmt.Sprintf("%s: %q (did you mean %s?)", domain.ErrMsgItemNotFound, e.Name, strings.Join(quoteAll(e.Suggestions), ", "))
}

// Unwrap lets errors.Is match domain.ErrItemNotFound
func (e *NotFoundError) Unwrap() error {
	return domain.ErrItemNotFound
}

type scoredName struct {
	name  string
	score int
}

// suggestNames ranks stocked names by edit distance to query, case-insensitively.
// Substring matches rank ahead of everything but exact case-folded matches.
func suggestNames(query string, names []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	results := make([]scoredName, 0, len(names))
	for _, name := range names {
		candidate := strings.ToLower(name)
		var score int
		switch {
		case candidate == q:
			score = 0
		case strings.Contains(candidate, q) || strings.Contains(q, candidate):
			score = 1
		default:
			dist := levenshtein.ComputeDistance(q, candidate)
			if dist > distanceLimit(len(candidate)) {
				continue
			}
			score = 1 + dist
		}
		results = append(results, scoredName{name: name, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].name < results[j].name
		}
		return results[i].score < results[j].score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.name
	}
	return out
}

func distanceLimit(length int) int {
	return max(MinSuggestionDistance, length/SuggestionLengthDivisor)
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}
