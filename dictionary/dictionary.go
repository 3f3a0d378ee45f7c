// Package dictionary serves raw EDICT-format records from word and name
// dictionary files. Each file line is one record in the
// "HEADWORD [READING] /gloss/gloss/" shape; lines that do not fit the
// grammar are skipped during indexing, matching the render-side policy
// of never failing a batch over one bad line.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/Kala-J/rikaichamp/entries"
	"github.com/Kala-J/rikaichamp/model"
)

// Result caps per pipeline. Truncation is reported through the More
// flag, which rendering turns into a "..." marker.
const (
	MaxWordRecords = 7
	MaxNameRecords = 20
)

// Dict is one loaded dictionary: records in file order plus an index
// from normalized headwords and readings to record positions.
type Dict struct {
	records []string
	index   map[string][]int
}

var (
	wordDict     *Dict
	wordDictOnce sync.Once
	nameDict     *Dict
	nameDictOnce sync.Once
)

// InitDictionaries loads the word and name dictionary files and builds
// their lookup indexes. Safe to call more than once; later calls are
// no-ops.
func InitDictionaries(wordPath, namePath string) error {
	var wordErr, nameErr error
	wordDictOnce.Do(func() {
		wordDict, wordErr = Load(wordPath)
	})
	nameDictOnce.Do(func() {
		nameDict, nameErr = Load(namePath)
	})
	if wordErr != nil {
		return fmt.Errorf("load word dictionary: %w", wordErr)
	}
	if nameErr != nil {
		return fmt.Errorf("load name dictionary: %w", nameErr)
	}
	return nil
}

// Load reads one dictionary file, one raw record per line.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d := &Dict{index: make(map[string][]int)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		rec, ok := entries.ParseRecord(line)
		if !ok {
			continue
		}
		pos := len(d.records)
		d.records = append(d.records, line)

		hw := Normalize(rec.Headword)
		d.index[hw] = append(d.index[hw], pos)
		if rec.Reading != "" {
			if rd := Normalize(rec.Reading); rd != hw {
				d.index[rd] = append(d.index[rd], pos)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return d, nil
}

// Count returns the number of indexed records.
func (d *Dict) Count() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Search returns the raw records whose headword or reading matches the
// term, in file order, capped at max. The second return reports whether
// results were truncated.
func (d *Dict) Search(term string, max int) ([]string, bool) {
	if d == nil {
		return nil, false
	}
	positions := d.index[Normalize(term)]
	more := false
	if max > 0 && len(positions) > max {
		positions = positions[:max]
		more = true
	}
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		out = append(out, d.records[pos])
	}
	return out, more
}

// SearchWords looks the term up in the word dictionary, tagging every
// record with the supplied inflection reason.
func SearchWords(term, reason string, max int) ([]model.WordMatch, bool) {
	records, more := wordDict.Search(term, max)
	out := make([]model.WordMatch, 0, len(records))
	for _, r := range records {
		out = append(out, model.WordMatch{Record: r, Reason: reason})
	}
	return out, more
}

// SearchNames looks the term up in the name dictionary.
func SearchNames(term string) (model.NameResult, bool) {
	records, more := nameDict.Search(term, MaxNameRecords)
	return model.NameResult{Records: records, More: more}, len(records) > 0
}

// Normalize prepares a string for index lookup: lower-case, katakana
// folded to hiragana, punctuation and whitespace removed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var out []rune
	for _, r := range s {
		switch {
		case r >= 0x30A1 && r <= 0x30F6:
			// Katakana to hiragana.
			out = append(out, r-0x60)
		case unicode.IsPunct(r) || unicode.IsSpace(r):
			continue
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
