package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name folds a player name for lookup: diacritics stripped, lowercased,
// inner whitespace collapsed to single spaces. "Luka Dončić" and
// " luka  doncic " normalize to the same key. The transformer chain is
// built per call, chained transformers carry state and are not safe to
// share between requests.
func Name(s string) string {
	foldDiacritics := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
