package lookup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kala-J/rikaichamp/dictionary"
	"github.com/Kala-J/rikaichamp/kanji"
	"github.com/Kala-J/rikaichamp/model"
)

const sampleKanjidic = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<character>
<literal>青</literal>
<misc><grade>1</grade><stroke_count>8</stroke_count></misc>
<reading_meaning>
<rmgroup>
<reading r_type="ja_on">セイ</reading>
<reading r_type="ja_kun">あお</reading>
<meaning>blue</meaning>
</rmgroup>
</reading_meaning>
</character>
</kanjidic2>
`

func initFixtures(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	wordPath := filepath.Join(dir, "words")
	words := "青い [あおい] /(adj-i) blue/\n" +
		"青空 [あおぞら] /(n) blue sky/\n"
	if err := os.WriteFile(wordPath, []byte(words), 0644); err != nil {
		t.Fatalf("write word dictionary: %v", err)
	}

	namePath := filepath.Join(dir, "names")
	names := "中田 [なかた] /Nakata (s)/\n" +
		"仲田 [なかた] /Nakata (s)/\n"
	if err := os.WriteFile(namePath, []byte(names), 0644); err != nil {
		t.Fatalf("write name dictionary: %v", err)
	}

	if err := dictionary.InitDictionaries(wordPath, namePath); err != nil {
		t.Fatalf("InitDictionaries: %v", err)
	}

	kanjiPath := filepath.Join(dir, "kanjidic2.xml")
	if err := os.WriteFile(kanjiPath, []byte(sampleKanjidic), 0644); err != nil {
		t.Fatalf("write kanjidic: %v", err)
	}
	if err := kanji.InitKanjidic2(kanjiPath); err != nil {
		t.Fatalf("InitKanjidic2: %v", err)
	}
}

func TestSearchDispatchesKanji(t *testing.T) {
	initFixtures(t)
	res, err := Search(context.Background(), "青", false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Kind != model.KindKanji || res.Kanji == nil {
		t.Fatalf("result = %+v, want kanji case", res)
	}
	if res.Kanji.Literal != "青" {
		t.Errorf("literal = %q", res.Kanji.Literal)
	}
}

func TestSearchWords(t *testing.T) {
	initFixtures(t)
	res, err := Search(context.Background(), "青い", false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Kind != model.KindWords || res.Words == nil {
		t.Fatalf("result = %+v, want words case", res)
	}
	if len(res.Words.Matches) != 1 {
		t.Fatalf("matches = %+v, want 1", res.Words.Matches)
	}
	if res.Words.Matches[0].Record != "青い [あおい] /(adj-i) blue/" {
		t.Errorf("record = %q", res.Words.Matches[0].Record)
	}
}

func TestSearchNames(t *testing.T) {
	initFixtures(t)
	res, err := Search(context.Background(), "なかた", true)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Kind != model.KindNames || res.Names == nil {
		t.Fatalf("result = %+v, want names case", res)
	}
	if len(res.Names.Records) != 2 {
		t.Errorf("records = %+v, want both variants", res.Names.Records)
	}
}

func TestSearchMissIsEmptyWordResult(t *testing.T) {
	initFixtures(t)
	res, err := Search(context.Background(), "存在しない語", false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Kind != model.KindWords || res.Words == nil {
		t.Fatalf("result = %+v, want empty words case", res)
	}
	if len(res.Words.Matches) != 0 || res.Words.More {
		t.Errorf("words = %+v, want no matches", res.Words)
	}
}

func TestSearchCancelledContext(t *testing.T) {
	initFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Search(ctx, "青い", false); err == nil {
		t.Errorf("Search with cancelled context returned nil error")
	}
}
