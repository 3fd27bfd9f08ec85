// Package fs writes articles to disk as Prospero file pairs.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fwojciec/prospero"
)

// DefaultTool is the program name written to context files.
const DefaultTool = "prospero"

// Ensure Writer implements prospero.ArticleWriter at compile time.
var _ prospero.ArticleWriter = (*Writer)(nil)

// Writer writes articles as .txt/.ctx pairs to a directory.
// Stems are allocated under a mutex, so a single Writer may be shared;
// separate Writers must not target the same directory concurrently.
type Writer struct {
	dir          string
	publications prospero.PublicationIndex
	encoder      prospero.Encoder

	// Cleaner, when set, is applied to both payloads before encoding.
	Cleaner prospero.Cleaner

	// Tool is the program name written to context files.
	Tool string

	// Now returns the processing time written to context files.
	Now func() time.Time

	mu sync.Mutex
}

// NewWriter creates a new Writer targeting dir.
func NewWriter(dir string, publications prospero.PublicationIndex, encoder prospero.Encoder) *Writer {
	return &Writer{
		dir:          dir,
		publications: publications,
		encoder:      encoder,
		Tool:         DefaultTool,
		Now:          time.Now,
	}
}

// Dir returns the destination directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteArticle implements prospero.ArticleWriter.
func (w *Writer) WriteArticle(ctx context.Context, a *prospero.Article) (*prospero.FilePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pub, _ := w.publications.Lookup(a.Source)

	text, err := w.payload(prospero.FormatText(a))
	if err != nil {
		return nil, err
	}
	ctxt, err := w.payload(prospero.FormatContext(a, pub, w.Tool, w.Now()))
	if err != nil {
		return nil, err
	}

	date := UndatedStem
	if a.Date != nil {
		date = a.Date.Stem()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	stem, err := AllocateStem(w.dir, pub.Prefix, date)
	if err != nil {
		return nil, err
	}

	pair := &prospero.FilePair{
		Stem:        stem,
		Dir:         w.dir,
		Publication: pub,
		TextBytes:   len(text),
		CtxBytes:    len(ctxt),
	}
	if err := writeNew(pair.TextPath(), text); err != nil {
		return nil, err
	}
	if err := writeNew(pair.CtxPath(), ctxt); err != nil {
		_ = os.Remove(pair.TextPath())
		return nil, err
	}
	return pair, nil
}

// payload cleans and encodes one output file.
func (w *Writer) payload(s string) ([]byte, error) {
	if w.Cleaner != nil {
		b, err := w.Cleaner.Clean([]byte(s))
		if err != nil {
			return nil, err
		}
		s = string(b)
	}
	return w.encoder.Encode(s), nil
}

// writeNew writes data to a file that must not exist yet. The file is
// removed again when the write fails.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return prospero.Errorf(prospero.ECONFLICT, "%s already exists", filepath.Base(path))
	} else if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
