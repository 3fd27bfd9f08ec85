// Package charmap encodes output files in single-byte legacy codepages.
package charmap

import (
	"strconv"
	"strings"

	"github.com/fwojciec/prospero"
	"golang.org/x/text/encoding/charmap"
)

// Ensure Encoder implements prospero.Encoder at compile time.
var _ prospero.Encoder = (*Encoder)(nil)

// Codepage names accepted by NewEncoder.
const (
	Latin1      = "latin1"
	Windows1252 = "windows-1252"
)

// Encoder writes text in a single-byte codepage. Runes the codepage cannot
// represent are written as decimal character references such as "&#8217;".
type Encoder struct {
	cm *charmap.Charmap
}

// NewEncoder returns an Encoder for the named codepage.
// Returns EINVALID for unsupported names.
func NewEncoder(name string) (*Encoder, error) {
	switch strings.ToLower(name) {
	case "", Latin1, "latin-1", "iso-8859-1":
		return &Encoder{cm: charmap.ISO8859_1}, nil
	case Windows1252, "cp1252":
		return &Encoder{cm: charmap.Windows1252}, nil
	}
	return nil, prospero.Errorf(prospero.EINVALID, "unsupported encoding %q", name)
}

// Encode implements prospero.Encoder.
func (e *Encoder) Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := e.cm.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = append(out, "&#"...)
		out = strconv.AppendInt(out, int64(r), 10)
		out = append(out, ';')
	}
	return out
}
