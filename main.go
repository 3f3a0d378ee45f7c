package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Kala-J/rikaichamp/config"
	"github.com/Kala-J/rikaichamp/dictionary"
	"github.com/Kala-J/rikaichamp/entries"
	"github.com/Kala-J/rikaichamp/ingest"
	"github.com/Kala-J/rikaichamp/kanji"
	"github.com/Kala-J/rikaichamp/logger"
	"github.com/Kala-J/rikaichamp/lookup"
	"github.com/Kala-J/rikaichamp/model"
)

// Past this many name entries the list is printed in two columns.
const nameColumnThreshold = 4

// lookupResult pairs an ingested query with its search result.
type lookupResult struct {
	Query  ingest.Query       `json:"query"`
	Result model.SearchResult `json:"result"`
}

var resultChan = make(chan lookupResult, 100)

func main() {
	configPath := flag.String("config", "rikaichamp.yaml", "path to the config file")
	buildFrom := flag.String("build-from", "", "JMdict/ENAMDICT XML file to convert")
	buildTo := flag.String("build-to", "", "EDICT-line output file for -build-from")
	flag.Parse()

	if *buildFrom != "" {
		if *buildTo == "" {
			log.Fatal("-build-from requires -build-to")
		}
		if err := dictionary.Convert(*buildFrom, *buildTo); err != nil {
			log.Fatalf("convert %s: %v", *buildFrom, err)
		}
		fmt.Printf("wrote %s\n", *buildTo)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := dictionary.InitDictionaries(cfg.WordDict, cfg.NameDict); err != nil {
		log.Fatalf("load dictionaries: %v", err)
	}
	if err := kanji.InitKanjidic2(cfg.KanjiDict); err != nil {
		log.Printf("kanjidic unavailable, kanji lookups disabled: %v", err)
	}
	if err := logger.InitLogs(cfg.LogsDir); err != nil {
		log.Fatalf("init logs: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startLookupWorker(ctx)

	runSession(ctx, cfg, os.Stdin)
}

// startLookupWorker consumes queries from ingest.QueryChan, resolves
// them and publishes results to resultChan.
func startLookupWorker(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case q := <-ingest.QueryChan:
				res, err := lookup.Search(ctx, q.Text, q.Mode == ingest.ModeNames)
				if err != nil {
					log.Printf("lookup %q: %v", q.Text, err)
					continue
				}
				select {
				case <-ctx.Done():
					return
				case resultChan <- lookupResult{Query: q, Result: res}:
				}
			}
		}
	}()
}

// session state: search mode and the copy cursor over the last display.
type session struct {
	cfg       *config.Config
	mode      string
	copyIndex *int
	last      *model.SearchResult
}

func runSession(ctx context.Context, cfg *config.Config, in *os.File) {
	s := &session{cfg: cfg, mode: ingest.ModeWords}

	fmt.Println("rikaichamp — enter a word to look it up")
	fmt.Println("commands: :names :words  |  copy mode: > < c  |  :quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return
		case line == ":names":
			s.mode = ingest.ModeNames
			continue
		case line == ":words":
			s.mode = ingest.ModeWords
			continue
		case line == ">" || line == "<" || line == "c":
			s.copyCommand(line)
			continue
		}
		s.runQuery(ctx, line)
	}
}

// runQuery sends one query through the pipeline and renders the result.
func (s *session) runQuery(ctx context.Context, text string) {
	q, err := ingest.IngestQuery(text, s.mode)
	if err != nil {
		log.Printf("ingest: %v", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case r := <-resultChan:
			if r.Query.ID != q.ID {
				continue
			}
			s.last = &r.Result
			s.copyIndex = nil
			display := entries.Group(r.Result, s.options())
			fmt.Print(renderDisplay(display))
			if err := logger.LogJSON(s.cfg.LogsDir, q.ID+"_display", display); err != nil {
				log.Printf("write display log: %v", err)
			}
			return
		}
	}
}

func (s *session) options() model.Options {
	return model.Options{
		ShowDefinitions: s.cfg.ShowDefinitions,
		CopyMode:        s.cfg.CopyMode,
		CopyIndex:       s.copyIndex,
	}
}

// copyCommand moves the copy cursor over the last result or copies the
// selected entry to the clipboard.
func (s *session) copyCommand(cmd string) {
	if !s.cfg.CopyMode {
		fmt.Println("copy mode is disabled (set copy_mode: true)")
		return
	}
	if s.last == nil {
		fmt.Println("nothing to select yet")
		return
	}

	switch cmd {
	case ">":
		s.moveCursor(1)
	case "<":
		s.moveCursor(-1)
	}

	display := entries.Group(*s.last, s.options())
	if cmd == "c" {
		if display.SelectedIndex < 0 {
			fmt.Println("no entry selected")
			return
		}
		text := entryText(display, display.SelectedIndex)
		if err := clipboard.WriteAll(text); err != nil {
			log.Printf("clipboard: %v", err)
			return
		}
		fmt.Printf("copied: %s\n", text)
		return
	}
	fmt.Print(renderDisplay(display))
}

func (s *session) moveCursor(delta int) {
	if s.copyIndex == nil {
		start := 0
		if delta < 0 {
			start = -1
		}
		s.copyIndex = &start
		return
	}
	next := *s.copyIndex + delta
	s.copyIndex = &next
}

// renderDisplay builds the text tree for a grouped display.
func renderDisplay(d model.Display) string {
	var b strings.Builder
	switch d.Kind {
	case model.KindWords:
		if len(d.Words) == 0 {
			b.WriteString("no matches\n")
			break
		}
		for i, e := range d.Words {
			b.WriteString(marker(i == d.SelectedIndex))
			b.WriteString(wordLine(e))
			b.WriteString("\n")
		}
	case model.KindNames:
		if len(d.Names) == 0 {
			b.WriteString("no matches\n")
			break
		}
		if d.EntryCount > nameColumnThreshold {
			writeNameColumns(&b, d)
		} else {
			for i, e := range d.Names {
				b.WriteString(marker(i == d.SelectedIndex))
				b.WriteString(nameLine(e))
				b.WriteString("\n")
			}
		}
	case model.KindKanji:
		if d.Kanji == nil {
			b.WriteString("no matches\n")
			break
		}
		b.WriteString(marker(d.SelectedIndex == 0))
		b.WriteString(kanjiBlock(*d.Kanji))
	}
	if d.More {
		b.WriteString("...\n")
	}
	return b.String()
}

func marker(selected bool) string {
	if selected {
		return "* "
	}
	return "  "
}

func wordLine(e model.WordEntry) string {
	var b strings.Builder
	b.WriteString(e.Headword)
	if len(e.Readings) > 0 {
		b.WriteString(" [" + strings.Join(e.Readings, "、") + "]")
	}
	if e.Reason != "" {
		b.WriteString(" (" + e.Reason + ")")
	}
	if e.Gloss != "" {
		b.WriteString("  " + glossText(e.Gloss))
	}
	return b.String()
}

func nameLine(e model.NameEntry) string {
	var b strings.Builder
	for i, v := range e.Variants {
		if i > 0 {
			b.WriteString("、")
		}
		if v.Headword != "" {
			b.WriteString(v.Headword + " [" + v.Reading + "]")
		} else {
			b.WriteString(v.Reading)
		}
	}
	if e.Gloss != "" {
		b.WriteString("  " + glossText(e.Gloss))
	}
	return b.String()
}

// writeNameColumns prints name entries two per row.
func writeNameColumns(b *strings.Builder, d model.Display) {
	for i := 0; i < len(d.Names); i += 2 {
		b.WriteString(marker(i == d.SelectedIndex))
		b.WriteString(nameLine(d.Names[i]))
		if i+1 < len(d.Names) {
			b.WriteString("\t")
			b.WriteString(marker(i+1 == d.SelectedIndex))
			b.WriteString(nameLine(d.Names[i+1]))
		}
		b.WriteString("\n")
	}
}

func kanjiBlock(e model.KanjiEntry) string {
	var b strings.Builder
	b.WriteString(e.Literal + "\n")
	if len(e.OnReadings) > 0 {
		b.WriteString("  on:  " + strings.Join(e.OnReadings, "、") + "\n")
	}
	if len(e.KunReadings) > 0 {
		b.WriteString("  kun: " + strings.Join(e.KunReadings, "、") + "\n")
	}
	if len(e.Meanings) > 0 {
		b.WriteString("  " + strings.Join(e.Meanings, ", ") + "\n")
	}
	if e.StrokeCount > 0 {
		fmt.Fprintf(&b, "  strokes: %d", e.StrokeCount)
		if e.Grade > 0 {
			fmt.Fprintf(&b, "  grade: %d", e.Grade)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// glossText renders a stored gloss field for display: the trailing
// slash goes, the internal separators become semicolons.
func glossText(gloss string) string {
	return strings.ReplaceAll(strings.TrimSuffix(gloss, "/"), "/", "; ")
}

// entryText is the clipboard text for the selected entry.
func entryText(d model.Display, idx int) string {
	switch d.Kind {
	case model.KindWords:
		if idx < len(d.Words) {
			return wordLine(d.Words[idx])
		}
	case model.KindNames:
		if idx < len(d.Names) {
			return nameLine(d.Names[idx])
		}
	case model.KindKanji:
		if d.Kanji != nil {
			return d.Kanji.Literal
		}
	}
	return ""
}
