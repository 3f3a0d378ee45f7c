package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"
)

// Convert builds an EDICT-line dictionary file from a JMdict-format XML
// file (JMdict_e or ENAMDICT in JMdict form). One line is written per
// written-form × reading pair, so alternate readings of an entry land on
// adjacent lines with identical headword and gloss. That adjacency is
// what the rendering side folds back into a single display entry.
func Convert(xmlPath, outPath string) error {
	in, err := os.Open(xmlPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	dict, _, err := jmdict.LoadJmdict(in)
	if err != nil {
		return fmt.Errorf("load jmdict: %w", err)
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	w := bufio.NewWriter(out)

	for _, entry := range dict.Entries {
		gloss := glossField(entry)
		if gloss == "" {
			continue
		}
		if len(entry.Kanji) == 0 {
			// Kana-only entry: the reading is the headword.
			for _, r := range entry.Readings {
				fmt.Fprintf(w, "%s %s\n", r.Reading, gloss)
			}
			continue
		}
		for _, k := range entry.Kanji {
			for _, r := range entry.Readings {
				fmt.Fprintf(w, "%s [%s] %s\n", k.Expression, r.Reading, gloss)
			}
		}
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return out.Close()
}

// glossField renders an entry's senses as a single "/g1/g2/" field.
// Sense glosses containing '/' would corrupt the record shape and are
// replaced with '|', the separator EDICT itself uses inside glosses.
func glossField(entry jmdict.JmdictEntry) string {
	var b strings.Builder
	for i, sense := range entry.Sense {
		pos := posTag(sense.PartsOfSpeech)
		for j, g := range sense.Glossary {
			text := strings.ReplaceAll(g.Content, "/", "|")
			if text == "" {
				continue
			}
			b.WriteString("/")
			if j == 0 && pos != "" && i == 0 {
				b.WriteString("(" + pos + ") ")
			}
			b.WriteString(text)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString("/")
	return b.String()
}

// posTag compresses part-of-speech names into a short comma-joined tag.
func posTag(pos []string) string {
	if len(pos) == 0 {
		return ""
	}
	short := make([]string, 0, len(pos))
	for _, p := range pos {
		// Entity-expanded names carry a parenthesised explanation;
		// keep only the leading term.
		if idx := strings.IndexRune(p, '('); idx > 0 {
			p = strings.TrimSpace(p[:idx])
		}
		if p != "" {
			short = append(short, p)
		}
	}
	return strings.Join(short, ",")
}
