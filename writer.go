package prospero

import (
	"context"
	"path/filepath"
)

// FilePair describes a written .txt/.ctx pair.
type FilePair struct {
	// Stem is the file name shared by both files, without extension.
	Stem string

	// Dir is the destination directory.
	Dir string

	Publication Publication
	TextBytes   int
	CtxBytes    int
}

// TextPath returns the path of the body file.
func (p *FilePair) TextPath() string {
	return filepath.Join(p.Dir, p.Stem+".txt")
}

// CtxPath returns the path of the context file.
func (p *FilePair) CtxPath() string {
	return filepath.Join(p.Dir, p.Stem+".ctx")
}

// Cleaner normalizes an output payload before it is encoded.
// Input and output are UTF-8.
type Cleaner interface {
	Clean(b []byte) ([]byte, error)
}

// Encoder converts UTF-8 text to the single-byte codepage of output files.
// Characters outside the codepage must be written as numeric character
// references so that encoding never fails.
type Encoder interface {
	Encode(s string) []byte
}

// ArticleWriter writes articles as Prospero file pairs.
type ArticleWriter interface {
	// WriteArticle writes the pair of one article and never overwrites an
	// existing file.
	WriteArticle(ctx context.Context, a *Article) (*FilePair, error)
}
