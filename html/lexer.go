// Package html scans Europresse export markup with the golang.org/x/net/html
// tokenizer. Everything here works on raw source text: extracted values keep
// their inner markup byte for byte.
package html

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenType identifies the kind of a lexed Token.
type TokenType int

// Token types.
const (
	TextToken TokenType = iota
	StartTagToken
	EndTagToken
	SelfClosingTagToken
	OtherToken // comments and doctypes
)

// Token is one lexical unit of markup.
type Token struct {
	Type TokenType

	// Name is the lower-cased element name. Empty for text and other tokens.
	Name  string
	Attrs []html.Attribute

	// Raw is the exact source text of the token.
	Raw string

	// Offset is the byte offset of Raw in the lexed string.
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Raw)
}

// Attr returns the unescaped value of the attribute key.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttrValue reports whether any attribute of the token equals value.
func (t Token) HasAttrValue(value string) bool {
	for _, a := range t.Attrs {
		if a.Val == value {
			return true
		}
	}
	return false
}

// IsStart reports whether t opens an element called name.
func (t Token) IsStart(name string) bool {
	return t.Type == StartTagToken && t.Name == name
}

// IsEnd reports whether t closes an element called name.
func (t Token) IsEnd(name string) bool {
	return t.Type == EndTagToken && t.Name == name
}

// Lex splits s into tokens. Concatenating the Raw fields of the result
// always yields s.
func Lex(s string) []Token {
	z := html.NewTokenizer(strings.NewReader(s))
	var toks []Token
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := Token{Raw: string(z.Raw()), Offset: offset}
		offset += len(tok.Raw)

		switch tt {
		case html.TextToken:
			tok.Type = TextToken
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			t := z.Token()
			tok.Name = t.Data
			tok.Attrs = t.Attr
			switch tt {
			case html.StartTagToken:
				tok.Type = StartTagToken
			case html.EndTagToken:
				tok.Type = EndTagToken
			default:
				tok.Type = SelfClosingTagToken
			}
		default:
			tok.Type = OtherToken
		}
		toks = append(toks, tok)
	}

	// The tokenizer drops a tag left unfinished at end of input.
	if offset < len(s) {
		toks = append(toks, Token{Type: TextToken, Raw: s[offset:], Offset: offset})
	}
	return toks
}

// matchEnd returns the index of the end tag closing the element opened at
// toks[i], counting nested elements of the same name.
func matchEnd(toks []Token, i int) (int, bool) {
	name := toks[i].Name
	depth := 1
	for j := i + 1; j < len(toks); j++ {
		switch {
		case toks[j].IsStart(name):
			depth++
		case toks[j].IsEnd(name):
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// UnescapeString decodes HTML character references in s.
func UnescapeString(s string) string {
	return html.UnescapeString(s)
}
