// Package lookup resolves a query string into the tagged search result
// consumed by the entries package.
package lookup

import (
	"context"
	"unicode/utf8"

	"github.com/Kala-J/rikaichamp/dictionary"
	"github.com/Kala-J/rikaichamp/inflect"
	"github.com/Kala-J/rikaichamp/kanji"
	"github.com/Kala-J/rikaichamp/model"
)

// Search dispatches a query to the matching pipeline: a single kanji
// character resolves through kanjidic, name mode through the name
// dictionary, everything else through the word dictionary with
// inflection candidates. The word result always comes back (possibly
// empty) so the caller has a uniform shape to render.
func Search(ctx context.Context, query string, nameMode bool) (model.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return model.SearchResult{}, err
	}

	if r, size := utf8.DecodeRuneInString(query); size == len(query) && kanji.IsKanji(r) {
		if entry, ok := kanji.Lookup(r); ok {
			return model.SearchResult{Kind: model.KindKanji, Kanji: &entry}, nil
		}
	}

	if nameMode {
		result, _ := dictionary.SearchNames(query)
		return model.SearchResult{Kind: model.KindNames, Names: &result}, nil
	}

	return model.SearchResult{Kind: model.KindWords, Words: searchWords(query)}, nil
}

// searchWords collects word matches over the query's inflection
// candidates, surface form first, capped at the word-record limit.
func searchWords(query string) *model.WordResult {
	var result model.WordResult
	seen := make(map[string]bool)
	for _, c := range inflect.Candidates(query) {
		if seen[c.Term] {
			continue
		}
		seen[c.Term] = true

		remaining := dictionary.MaxWordRecords - len(result.Matches)
		if remaining <= 0 {
			result.More = true
			break
		}
		matches, more := dictionary.SearchWords(c.Term, c.Reason, remaining)
		result.Matches = append(result.Matches, matches...)
		if more {
			result.More = true
		}
	}
	return &result
}
