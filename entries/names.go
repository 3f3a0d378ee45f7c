package entries

import "github.com/Kala-J/rikaichamp/model"

// GroupNames turns raw name-dictionary records into grouped display
// entries. Unlike words, name records merge on gloss alone: adjacent
// records sharing a gloss are written-form variants of one name, even
// when their headwords differ (kanji form next to kana form).
func GroupNames(records []string) []model.NameEntry {
	var out []model.NameEntry
	for _, raw := range records {
		rec, ok := ParseRecord(raw)
		if !ok {
			continue
		}
		// Some name records for mixed kana scripts pack a second whole
		// record inside the gloss field, e.g.
		//   あか組４ [あかぐみふぉー] /あか組４ [あかぐみフォー] /Akagumi Four (h)/
		// When the gloss itself parses as a record, the embedded triple
		// wins. One level only.
		if inner, ok := ParseRecord(rec.Gloss); ok {
			rec = inner
		}
		variant := model.NameVariant{Reading: rec.Reading}
		if rec.Reading == "" {
			// No bracketed reading: the headword field is the reading.
			variant.Reading = rec.Headword
		} else {
			variant.Headword = rec.Headword
		}
		if len(out) > 0 && out[len(out)-1].Gloss == rec.Gloss {
			last := &out[len(out)-1]
			last.Variants = append(last.Variants, variant)
			continue
		}
		out = append(out, model.NameEntry{
			Variants: []model.NameVariant{variant},
			Gloss:    rec.Gloss,
		})
	}
	return out
}
