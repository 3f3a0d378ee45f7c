package entries

import "github.com/Kala-J/rikaichamp/model"

// GroupWords turns raw word-dictionary matches into grouped display
// entries. Consecutive records with the same headword and gloss are one
// logical entry that differs only in reading: the extra reading is
// appended to the previous entry and the later record's reason is
// discarded. The merge never looks further back than the immediately
// preceding accepted entry, so the input order is preserved exactly.
func GroupWords(matches []model.WordMatch) []model.WordEntry {
	var out []model.WordEntry
	for _, m := range matches {
		rec, ok := ParseRecord(m.Record)
		if !ok {
			continue
		}
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Headword == rec.Headword && last.Gloss == rec.Gloss && rec.Reading != "" {
				last.Readings = append(last.Readings, rec.Reading)
				continue
			}
		}
		entry := model.WordEntry{
			Headword: rec.Headword,
			Gloss:    rec.Gloss,
			Reason:   m.Reason,
		}
		if rec.Reading != "" {
			entry.Readings = []string{rec.Reading}
		}
		out = append(out, entry)
	}
	return out
}
