package source

import (
	"strings"

	"statcard/internal/domain"
	"statcard/internal/normalize"
)

// Resolve maps a user-supplied name to a player index entry. Exact
// normalized matches win over substring matches. When several players
// share a name (fathers and sons, common names) the most recently
// active one is chosen: highest ToYear, then highest FromYear.
func Resolve(index []IndexEntry, name string) (IndexEntry, error) {
	want := normalize.Name(name)
	if want == "" {
		return IndexEntry{}, domain.ErrPlayerNotFound
	}

	var exact, fuzzy []IndexEntry
	for _, e := range index {
		got := normalize.Name(e.Name)
		switch {
		case got == want:
			exact = append(exact, e)
		case strings.Contains(got, want):
			fuzzy = append(fuzzy, e)
		}
	}
	candidates := exact
	if len(candidates) == 0 {
		candidates = fuzzy
	}
	if len(candidates) == 0 {
		return IndexEntry{}, domain.ErrPlayerNotFound
	}

	best := candidates[0]
	for _, e := range candidates[1:] {
		if e.ToYear > best.ToYear || (e.ToYear == best.ToYear && e.FromYear > best.FromYear) {
			best = e
		}
	}
	return best, nil
}
