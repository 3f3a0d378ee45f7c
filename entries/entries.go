// Package entries turns raw dictionary search results into grouped,
// render-ready display entries. Everything here is pure: raw records in,
// ordered entry lists out, no I/O and no shared state. Records that do
// not fit the line grammar are dropped silently so one malformed
// dictionary line never aborts rendering of the rest.
package entries

import "github.com/Kala-J/rikaichamp/model"

// Group dispatches a tagged search result to the matching grouping
// pipeline and computes the derived display state (entry count, selected
// index, pass-through more flag). With ShowDefinitions disabled the
// gloss text is blanked after grouping; merging always compares the
// parsed gloss.
func Group(res model.SearchResult, opts model.Options) model.Display {
	d := model.Display{Kind: res.Kind}

	switch res.Kind {
	case model.KindWords:
		if res.Words != nil {
			d.Words = GroupWords(res.Words.Matches)
			d.More = res.Words.More
		}
		d.EntryCount = len(d.Words)
		if !opts.ShowDefinitions {
			for i := range d.Words {
				d.Words[i].Gloss = ""
			}
		}
	case model.KindNames:
		if res.Names != nil {
			d.Names = GroupNames(res.Names.Records)
			d.More = res.Names.More
		}
		d.EntryCount = len(d.Names)
		if !opts.ShowDefinitions {
			for i := range d.Names {
				d.Names[i].Gloss = ""
			}
		}
	case model.KindKanji:
		if res.Kanji != nil {
			d.Kanji = res.Kanji
			d.EntryCount = 1
		}
	}

	d.SelectedIndex = SelectedIndex(opts.CopyMode, opts.CopyIndex, d.EntryCount)
	return d
}
