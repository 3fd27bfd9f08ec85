// Package bluemonday cleans output payloads before they are encoded.
package bluemonday

import (
	"regexp"
	"strings"

	"github.com/fwojciec/prospero"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements prospero.Cleaner at compile time.
var _ prospero.Cleaner = (*Cleaner)(nil)

// breakRe matches the tags that end a line of text.
var breakRe = regexp.MustCompile(`(?i)</p\s*>|<br\s*/?>|</div\s*>|</h[1-6]\s*>|</li\s*>`)

// typography folds typographic characters into their ASCII forms.
var typography = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	"–", "-",
	"—", "-",
	"œ", "oe",
	"Œ", "OE",
	"\u00a0", " ",
	"\u202f", " ",
	"\u2009", " ",
)

// Cleaner turns markup left in a payload into plain text lines.
// It never adds or removes lines other than those produced by line-ending
// tags, so positional records such as context files keep their fields.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Clean implements prospero.Cleaner.
func (c *Cleaner) Clean(b []byte) ([]byte, error) {
	s := breakRe.ReplaceAllString(string(b), "\n")
	s = html.UnescapeString(c.policy.Sanitize(s))
	s = typography.Replace(s)

	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return []byte(strings.Join(lines, "\r\n")), nil
}
