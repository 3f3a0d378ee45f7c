package main

import (
	"strings"
	"testing"

	"github.com/Kala-J/rikaichamp/model"
)

func TestGlossText(t *testing.T) {
	if got := glossText("(n) whale calf/"); got != "(n) whale calf" {
		t.Errorf("glossText = %q", got)
	}
	if got := glossText("(adv) easily/readily/quickly/"); got != "(adv) easily; readily; quickly" {
		t.Errorf("glossText = %q", got)
	}
}

func TestWordLine(t *testing.T) {
	line := wordLine(model.WordEntry{
		Headword: "食べる",
		Readings: []string{"たべる"},
		Gloss:    "(v1) to eat/",
		Reason:   "past",
	})
	for _, want := range []string{"食べる", "たべる", "(past)", "to eat"} {
		if !strings.Contains(line, want) {
			t.Errorf("wordLine = %q, missing %q", line, want)
		}
	}
}

func TestNameLineVariants(t *testing.T) {
	line := nameLine(model.NameEntry{
		Variants: []model.NameVariant{
			{Headword: "中田", Reading: "なかた"},
			{Reading: "なかだ"},
		},
		Gloss: "Nakata (s)/",
	})
	if !strings.Contains(line, "中田 [なかた]") {
		t.Errorf("nameLine = %q, missing bracketed variant", line)
	}
	if !strings.Contains(line, "なかだ") {
		t.Errorf("nameLine = %q, missing reading-only variant", line)
	}
}

func TestRenderDisplayMarksSelection(t *testing.T) {
	out := renderDisplay(model.Display{
		Kind: model.KindWords,
		Words: []model.WordEntry{
			{Headword: "青"},
			{Headword: "赤"},
		},
		EntryCount:    2,
		SelectedIndex: 1,
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("render = %q", out)
	}
	if strings.HasPrefix(lines[0], "* ") || !strings.HasPrefix(lines[1], "* ") {
		t.Errorf("selection marker misplaced:\n%s", out)
	}
}

func TestRenderDisplayMoreMarker(t *testing.T) {
	out := renderDisplay(model.Display{
		Kind:          model.KindWords,
		Words:         []model.WordEntry{{Headword: "青"}},
		EntryCount:    1,
		More:          true,
		SelectedIndex: -1,
	})
	if !strings.HasSuffix(out, "...\n") {
		t.Errorf("render without truncation marker: %q", out)
	}
}

func TestRenderDisplayNameColumns(t *testing.T) {
	names := make([]model.NameEntry, 6)
	for i := range names {
		names[i] = model.NameEntry{Variants: []model.NameVariant{{Reading: "なかた"}}}
	}
	out := renderDisplay(model.Display{
		Kind:          model.KindNames,
		Names:         names,
		EntryCount:    6,
		SelectedIndex: -1,
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("6 entries past the threshold should render 3 rows, got %d:\n%s", len(lines), out)
	}
}

func TestEntryText(t *testing.T) {
	d := model.Display{
		Kind:  model.KindNames,
		Names: []model.NameEntry{{Variants: []model.NameVariant{{Reading: "なかた"}}}},
	}
	if got := entryText(d, 0); got != "なかた" {
		t.Errorf("entryText = %q", got)
	}
	if got := entryText(d, 5); got != "" {
		t.Errorf("out-of-range entryText = %q, want empty", got)
	}
}
