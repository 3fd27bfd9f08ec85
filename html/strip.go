package html

import "strings"

// Strip replaces every element carrying a class attribute with its inner
// markup and drops <mark> tags, keeping their text. Other markup is left
// untouched. Strip(Strip(s)) == Strip(s).
func Strip(s string) string {
	// Dropping a tag can join a stray "<" to the text after it and form a
	// new tag, so passes repeat until nothing changes. Each pass that
	// changes s makes it shorter.
	for {
		out := stripOnce(s)
		if out == s {
			return out
		}
		s = out
	}
}

// stripOnce runs a single stripping pass over s.
func stripOnce(s string) string {
	type open struct {
		name string
		drop bool
	}

	var (
		b     strings.Builder
		stack []open
	)
	b.Grow(len(s))

	for _, t := range Lex(s) {
		switch t.Type {
		case StartTagToken:
			if t.Name == "mark" {
				continue
			}
			_, classed := t.Attr("class")
			stack = append(stack, open{name: t.Name, drop: classed})
			if classed {
				continue
			}
		case SelfClosingTagToken:
			if _, classed := t.Attr("class"); classed || t.Name == "mark" {
				continue
			}
		case EndTagToken:
			if t.Name == "mark" {
				continue
			}
			if i := lastOpen(len(stack), func(i int) bool { return stack[i].name == t.Name }); i >= 0 {
				drop := stack[i].drop
				stack = stack[:i]
				if drop {
					continue
				}
			}
		}
		b.WriteString(t.Raw)
	}
	return b.String()
}

// lastOpen returns the highest index below n satisfying match, or -1.
func lastOpen(n int, match func(int) bool) int {
	for i := n - 1; i >= 0; i-- {
		if match(i) {
			return i
		}
	}
	return -1
}
