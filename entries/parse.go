package entries

import "regexp"

// Record is a raw dictionary record split into its three fields.
// Reading is "" when the record had no bracketed reading; an empty
// bracket pair is treated the same as no bracket at all.
type Record struct {
	Headword string
	Reading  string
	Gloss    string
}

// recordRe matches one raw dictionary record:
//
//	HEADWORD [READING] /GLOSS1/GLOSS2/…/
//	HEADWORD /GLOSS1/GLOSS2/…/
//
// The headword capture is non-greedy (up to the first whitespace run),
// the bracketed reading is optional as a unit, and the gloss capture is
// greedy up to and including the last '/'. Anything after that last '/'
// is ignored. The match anchors at the start only.
var recordRe = regexp.MustCompile(`^(.+?)\s+(?:\[(.*?)\])?\s*/(.+/)`)

// ParseRecord splits a raw record into headword, reading and gloss.
// Records that do not fit the grammar are not an error; they return
// ok=false and the caller skips them.
func ParseRecord(raw string) (Record, bool) {
	m := recordRe.FindStringSubmatch(raw)
	if m == nil {
		return Record{}, false
	}
	return Record{Headword: m[1], Reading: m[2], Gloss: m[3]}, true
}
