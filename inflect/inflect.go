// Package inflect maps an inflected query onto dictionary lookup
// candidates. The word dictionary stores plain forms only, so 食べました
// has to be looked up as 食べる with the reason "polite past" carried
// alongside for display.
package inflect

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Candidate is one lookup term with the inflection reason that produced
// it. Reason is empty for the surface form.
type Candidate struct {
	Term   string
	Reason string
}

// kagome tokenizer instance (initialized in init)
var kg *tokenizer.Tokenizer

func init() {
	// ignore errors here; Candidates falls back to the raw query when
	// the tokenizer is unavailable
	if t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos()); err == nil {
		kg = t
	}
}

// Candidates returns the lookup terms for a query, surface form first.
// When the query tokenizes to a verb followed by auxiliaries, the verb's
// base form is added with the conjugation reason derived from the
// auxiliary lemmas.
func Candidates(query string) []Candidate {
	out := []Candidate{{Term: query}}
	if kg == nil || query == "" {
		return out
	}

	toks := kg.Tokenize(query)
	if len(toks) == 0 {
		return out
	}

	head := toks[0]
	if !strings.HasPrefix(strings.Join(head.POS(), ","), "動詞") {
		return out
	}

	var auxLemmas []string
	for _, tk := range toks[1:] {
		pos := strings.Join(tk.POS(), ",")
		if !strings.HasPrefix(pos, "助動詞") &&
			!strings.HasPrefix(pos, "動詞,非自立") &&
			!strings.HasPrefix(pos, "動詞,接尾") {
			break
		}
		lemma, _ := tk.BaseForm()
		if lemma == "" {
			lemma = tk.Surface
		}
		auxLemmas = append(auxLemmas, lemma)
	}
	if len(auxLemmas) == 0 {
		return out
	}

	base, _ := head.BaseForm()
	if base == "" || base == query {
		return out
	}
	return append(out, Candidate{Term: base, Reason: ReasonLabel(auxLemmas)})
}

// ReasonLabel maps an auxiliary lemma sequence to a display label.
// Unrecognized sequences yield "inflected" rather than nothing, so the
// caller can still tell the match went through a base form.
func ReasonLabel(auxs []string) string {
	var parts []string
	for _, aux := range auxs {
		switch aux {
		case "ます":
			parts = append(parts, "polite")
		case "た":
			parts = append(parts, "past")
		case "ない", "ん", "ぬ":
			parts = append(parts, "negative")
		case "れる", "られる":
			parts = append(parts, "passive")
		case "せる", "させる":
			parts = append(parts, "causative")
		case "たい":
			parts = append(parts, "-tai")
		case "う", "よう":
			parts = append(parts, "volitional")
		}
	}
	if len(parts) == 0 {
		return "inflected"
	}
	return strings.Join(parts, " ")
}
