// Package kanji serves single-character entries from a kanjidic2 file.
package kanji

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/Kala-J/rikaichamp/model"
)

var (
	kanjiMap     map[rune]model.KanjiEntry
	kanjiMapOnce sync.Once
)

// kanjidic2Character mirrors the parts of a kanjidic2 <character>
// element used for display.
type kanjidic2Character struct {
	Literal string `xml:"literal"`
	Misc    struct {
		Grade       int   `xml:"grade"`
		StrokeCount []int `xml:"stroke_count"`
	} `xml:"misc"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
			Meaning []struct {
				Value string `xml:",chardata"`
				Lang  string `xml:"m_lang,attr"`
			} `xml:"meaning"`
		} `xml:"rmgroup"`
	} `xml:"reading_meaning"`
}

// InitKanjidic2 parses kanjidic2.xml and builds the kanji entry map.
// Later calls are no-ops.
func InitKanjidic2(path string) error {
	var err error
	kanjiMapOnce.Do(func() {
		kanjiMap = make(map[rune]model.KanjiEntry)
		f, fileErr := os.Open(path)
		if fileErr != nil {
			err = fmt.Errorf("open kanjidic2: %w", fileErr)
			return
		}
		defer f.Close()

		// Decode <character> elements directly, skipping any wrapper.
		d := xml.NewDecoder(f)
		for {
			tok, tokenErr := d.Token()
			if tokenErr == io.EOF {
				break
			}
			if tokenErr != nil {
				err = fmt.Errorf("parse kanjidic2: %w", tokenErr)
				return
			}
			se, ok := tok.(xml.StartElement)
			if !ok || se.Name.Local != "character" {
				continue
			}
			var c kanjidic2Character
			if decodeErr := d.DecodeElement(&c, &se); decodeErr != nil {
				continue
			}
			if utf8.RuneCountInString(c.Literal) != 1 {
				continue
			}
			entry := model.KanjiEntry{
				Literal: c.Literal,
				Grade:   c.Misc.Grade,
			}
			if len(c.Misc.StrokeCount) > 0 {
				entry.StrokeCount = c.Misc.StrokeCount[0]
			}
			for _, group := range c.ReadingMeaning.RMGroup {
				for _, r := range group.Reading {
					switch r.Type {
					case "ja_on":
						entry.OnReadings = append(entry.OnReadings, r.Value)
					case "ja_kun":
						entry.KunReadings = append(entry.KunReadings, r.Value)
					}
				}
				for _, m := range group.Meaning {
					// Unattributed meanings are English.
					if m.Lang == "" || m.Lang == "en" {
						entry.Meanings = append(entry.Meanings, m.Value)
					}
				}
			}
			r, _ := utf8.DecodeRuneInString(c.Literal)
			kanjiMap[r] = entry
		}
	})
	return err
}

// Lookup returns the entry for a kanji rune.
func Lookup(r rune) (model.KanjiEntry, bool) {
	entry, ok := kanjiMap[r]
	return entry, ok
}

// Count returns the number of kanji entries loaded.
func Count() int {
	return len(kanjiMap)
}

// IsKanji reports whether the rune falls in the CJK unified ideograph
// range.
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
