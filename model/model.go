package model

// ResultKind discriminates the three search-result shapes.
type ResultKind string

const (
	KindWords ResultKind = "words"
	KindNames ResultKind = "names"
	KindKanji ResultKind = "kanji"
)

// WordMatch pairs one raw dictionary record with the inflection reason
// (e.g. "past", "polite") that led to the match. Reason is empty for
// direct, uninflected matches.
type WordMatch struct {
	Record string `json:"record"`
	Reason string `json:"reason,omitempty"`
}

// WordResult holds raw word-dictionary records in dictionary order.
type WordResult struct {
	Matches []WordMatch `json:"matches"`
	More    bool        `json:"more,omitempty"`
}

// NameResult holds raw name-dictionary records in dictionary order.
type NameResult struct {
	Records []string `json:"records"`
	More    bool     `json:"more,omitempty"`
}

// KanjiEntry is a single-character entry from kanjidic2.
type KanjiEntry struct {
	Literal     string   `json:"literal"`
	OnReadings  []string `json:"on_readings,omitempty"`
	KunReadings []string `json:"kun_readings,omitempty"`
	Meanings    []string `json:"meanings,omitempty"`
	StrokeCount int      `json:"stroke_count,omitempty"`
	Grade       int      `json:"grade,omitempty"`
}

// SearchResult is the tagged union handed to the entries package.
// Exactly one of Words, Names and Kanji is set, according to Kind.
type SearchResult struct {
	Kind  ResultKind  `json:"kind"`
	Words *WordResult `json:"words,omitempty"`
	Names *NameResult `json:"names,omitempty"`
	Kanji *KanjiEntry `json:"kanji,omitempty"`
}

// WordEntry is one grouped word display entry. Readings are kept in
// first-seen order; a merge only ever appends.
type WordEntry struct {
	Headword string   `json:"headword"`
	Readings []string `json:"readings,omitempty"`
	Gloss    string   `json:"gloss,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// NameVariant is one written-form/reading pair of a name entry. Headword
// is empty when the raw record carried no bracketed reading; the reading
// then repeats the record's headword field.
type NameVariant struct {
	Headword string `json:"headword,omitempty"`
	Reading  string `json:"reading"`
}

// NameEntry is one grouped name display entry.
type NameEntry struct {
	Variants []NameVariant `json:"variants"`
	Gloss    string        `json:"gloss,omitempty"`
}

// Options is the display configuration recognized by the entries package.
// CopyIndex is nil when no copy cursor has been set yet.
type Options struct {
	ShowDefinitions bool `json:"show_definitions"`
	CopyMode        bool `json:"copy_mode"`
	CopyIndex       *int `json:"copy_index,omitempty"`
}

// Display is the grouped, render-ready structure. EntryCount is the
// number of top-level entries (callers use it for layout decisions such
// as switching names to multiple columns); SelectedIndex is -1 when no
// entry is selected for copying.
type Display struct {
	Kind          ResultKind  `json:"kind"`
	Words         []WordEntry `json:"words,omitempty"`
	Names         []NameEntry `json:"names,omitempty"`
	Kanji         *KanjiEntry `json:"kanji,omitempty"`
	More          bool        `json:"more,omitempty"`
	EntryCount    int         `json:"entry_count"`
	SelectedIndex int         `json:"selected_index"`
}
