package html

import (
	"strings"

	"github.com/fwojciec/prospero"
)

// Extract returns the trimmed inner markup of the first element carrying an
// attribute equal to value, usually its class. The element ends at the
// matching closing tag of the same name.
// Returns false when no element carries the value or it is never closed.
func Extract(s, value string) (string, bool) {
	toks := Lex(s)
	for i, t := range toks {
		if t.Type != StartTagToken || !t.HasAttrValue(value) {
			continue
		}
		j, ok := matchEnd(toks, i)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(s[t.End():toks[j].Offset]), true
	}
	return "", false
}

// Subtitle returns the content of the first <b><p>...</p></b> block of s.
func Subtitle(s string) (string, bool) {
	toks := Lex(s)
	for i := 0; i+1 < len(toks); i++ {
		if !toks[i].IsStart("b") || !toks[i+1].IsStart("p") {
			continue
		}
		start := toks[i+1].End()
		for j := i + 2; j+1 < len(toks); j++ {
			if toks[j].IsEnd("p") && toks[j+1].IsEnd("b") {
				return strings.TrimSpace(s[start:toks[j].Offset]), true
			}
		}
		return "", false
	}
	return "", false
}

// SplitHeader splits an article fragment at its </header> tag.
// Returns EMALFORMED unless the fragment holds exactly one such tag.
func SplitHeader(s string) (header, body string, err error) {
	var ends []Token
	for _, t := range Lex(s) {
		if t.IsEnd("header") {
			ends = append(ends, t)
		}
	}
	if len(ends) != 1 {
		return "", "", prospero.Errorf(prospero.EMALFORMED, "expected one </header> tag, found %d", len(ends))
	}
	return s[:ends[0].Offset], s[ends[0].End():], nil
}

// SplitArticles returns the fragments following each <article> tag of an
// export document. Text before the first article is discarded.
func SplitArticles(s string) []string {
	var starts []Token
	for _, t := range Lex(s) {
		if t.IsStart("article") {
			starts = append(starts, t)
		}
	}

	fragments := make([]string, 0, len(starts))
	for i, t := range starts {
		end := len(s)
		if i+1 < len(starts) {
			end = starts[i+1].Offset
		}
		fragments = append(fragments, s[t.End():end])
	}
	return fragments
}
