package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/bluemonday"
	"github.com/fwojciec/prospero/charmap"
	"github.com/fwojciec/prospero/fs"
	"github.com/fwojciec/prospero/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var processedAt = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func newWriter(t *testing.T, dir string) *fs.Writer {
	t.Helper()

	enc, err := charmap.NewEncoder(charmap.Latin1)
	require.NoError(t, err)

	pubs := prospero.NewPublicationTable(map[string]prospero.Publication{
		"Le Monde": {Prefix: "LM", Source: "Le Monde", Type: "quotidien national"},
	})
	w := fs.NewWriter(dir, pubs, enc)
	w.Now = func() time.Time { return processedAt }
	return w
}

func strPtr(s string) *string { return &s }

func leMonde() *prospero.Article {
	return &prospero.Article{
		Source:   "Le Monde",
		Date:     &prospero.Date{Day: 2, Month: 3, Year: 2020},
		Title:    "La réforme",
		Subtitle: strPtr("Le chapeau"),
		Text:     "Le texte.",
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes the text and context files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		pair, err := newWriter(t, dir).WriteArticle(context.Background(), leMonde())

		require.NoError(t, err)
		assert.Equal(t, "LM20200302A", pair.Stem)
		assert.Equal(t, filepath.Join(dir, "LM20200302A.txt"), pair.TextPath())
		assert.Equal(t, filepath.Join(dir, "LM20200302A.ctx"), pair.CtxPath())

		text := readFile(t, pair.TextPath())
		assert.Equal(t, "La r\xe9forme\r\n.\r\nLe chapeau\r\n.\r\nLe texte.", text)
		assert.Equal(t, len(text), pair.TextBytes)

		ctxt := readFile(t, pair.CtxPath())
		want := strings.Join([]string{
			"fileCtx0005",
			"La r\xe9forme",
			"Le Monde",
			"",
			"",
			"02/03/2020",
			"Le Monde",
			"quotidien national",
			"",
			"",
			"",
			"Processed by prospero on 2024-05-17 09:30:00",
			"",
			"n",
			"n",
			"",
		}, "\r\n")
		assert.Equal(t, want, ctxt)
		assert.Equal(t, len(ctxt), pair.CtxBytes)
	})

	t.Run("writes characters outside latin-1 as references", func(t *testing.T) {
		t.Parallel()

		a := leMonde()
		a.Text = "l’été"

		pair, err := newWriter(t, t.TempDir()).WriteArticle(context.Background(), a)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(readFile(t, pair.TextPath()), "l&#8217;\xe9t\xe9"))
	})

	t.Run("allocates the next suffix on the same day", func(t *testing.T) {
		t.Parallel()

		w := newWriter(t, t.TempDir())

		first, err := w.WriteArticle(context.Background(), leMonde())
		require.NoError(t, err)
		second, err := w.WriteArticle(context.Background(), leMonde())
		require.NoError(t, err)

		assert.Equal(t, "LM20200302A", first.Stem)
		assert.Equal(t, "LM20200302B", second.Stem)
	})

	t.Run("moves to two-letter suffixes after Z", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, s := range fs.Suffixes(26) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "LM20200302"+s+".txt"), nil, 0644))
		}

		pair, err := newWriter(t, dir).WriteArticle(context.Background(), leMonde())

		require.NoError(t, err)
		assert.Equal(t, "LM20200302AA", pair.Stem)
	})

	t.Run("treats an orphan context file as taken", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "LM20200302A.ctx"), []byte("keep"), 0644))

		pair, err := newWriter(t, dir).WriteArticle(context.Background(), leMonde())

		require.NoError(t, err)
		assert.Equal(t, "LM20200302B", pair.Stem)
		assert.Equal(t, "keep", readFile(t, filepath.Join(dir, "LM20200302A.ctx")))
	})

	t.Run("uses a zero date for undated articles", func(t *testing.T) {
		t.Parallel()

		a := leMonde()
		a.Date = nil

		pair, err := newWriter(t, t.TempDir()).WriteArticle(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, "LM00000000A", pair.Stem)
		fields := strings.Split(readFile(t, pair.CtxPath()), "\r\n")
		require.Len(t, fields, 16)
		assert.Equal(t, "", fields[5])
	})

	t.Run("falls back for unknown publications", func(t *testing.T) {
		t.Parallel()

		a := leMonde()
		a.Source = "La Voix du Nord"

		pair, err := newWriter(t, t.TempDir()).WriteArticle(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, "EUROPRESSE20200302A", pair.Stem)
		assert.Equal(t, prospero.UnknownPrefix, pair.Publication.Prefix)
		fields := strings.Split(readFile(t, pair.CtxPath()), "\r\n")
		assert.Equal(t, "La Voix du Nord", fields[2])
		assert.Equal(t, prospero.UnknownType, fields[7])
	})

	t.Run("omits the subtitle block when absent", func(t *testing.T) {
		t.Parallel()

		a := leMonde()
		a.Subtitle = nil

		pair, err := newWriter(t, t.TempDir()).WriteArticle(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, "La r\xe9forme\r\n.\r\nLe texte.", readFile(t, pair.TextPath()))
	})

	t.Run("cleans both payloads before encoding", func(t *testing.T) {
		t.Parallel()

		var calls int
		w := newWriter(t, t.TempDir())
		w.Cleaner = &mock.Cleaner{
			CleanFn: func(b []byte) ([]byte, error) {
				calls++
				return []byte(strings.ToUpper(string(b))), nil
			},
		}

		pair, err := w.WriteArticle(context.Background(), leMonde())

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, strings.HasPrefix(readFile(t, pair.TextPath()), "LA R\xc9FORME"))
		assert.True(t, strings.HasPrefix(readFile(t, pair.CtxPath()), "FILECTX0005"))
	})

	t.Run("returns cleaner errors without writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := newWriter(t, dir)
		w.Cleaner = &mock.Cleaner{
			CleanFn: func([]byte) ([]byte, error) {
				return nil, prospero.Errorf(prospero.EINTERNAL, "boom")
			},
		}

		_, err := w.WriteArticle(context.Background(), leMonde())

		require.Error(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("keeps a multi-line title on one context line when cleaning", func(t *testing.T) {
		t.Parallel()

		a := leMonde()
		a.Title = "La réforme\ndes retraites<br/>suite"
		w := newWriter(t, t.TempDir())
		w.Cleaner = bluemonday.NewCleaner()

		pair, err := w.WriteArticle(context.Background(), a)

		require.NoError(t, err)
		fields := strings.Split(readFile(t, pair.CtxPath()), "\r\n")
		require.Len(t, fields, 16)
		assert.Equal(t, "La r\xe9forme des retraites suite", fields[1])
		assert.Equal(t, "Le Monde", fields[2])
		assert.Equal(t, "02/03/2020", fields[5])
	})

	t.Run("removes the text file when the context file cannot be written", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		// A dangling link leaves the stem free but makes the exclusive create fail.
		require.NoError(t, os.Symlink(filepath.Join(dir, "missing", "target"), filepath.Join(dir, "LM20200302A.ctx")))

		_, err := newWriter(t, dir).WriteArticle(context.Background(), leMonde())

		require.Error(t, err)
		assert.Equal(t, prospero.ECONFLICT, prospero.ErrorCode(err))
		_, statErr := os.Stat(filepath.Join(dir, "LM20200302A.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newWriter(t, t.TempDir()).WriteArticle(ctx, leMonde())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSuffixes(t *testing.T) {
	t.Parallel()

	t.Run("continues with two letters after Z", func(t *testing.T) {
		t.Parallel()

		got := fs.Suffixes(30)

		assert.Equal(t, "A", got[0])
		assert.Equal(t, "Z", got[25])
		assert.Equal(t, []string{"AA", "AB", "AC", "AD"}, got[26:])
	})

	t.Run("second letter wraps before the first advances", func(t *testing.T) {
		t.Parallel()

		got := fs.Suffixes(60)

		assert.Equal(t, "AZ", got[51])
		assert.Equal(t, "BA", got[52])
	})

	t.Run("keeps counting past Z in ASCII order", func(t *testing.T) {
		t.Parallel()

		got := fs.Suffixes(2000)

		assert.Equal(t, "ZZ", got[701])
		assert.Equal(t, []string{"[A", "[B"}, got[702:704])
		assert.Equal(t, "aA", got[26+32*26])
		assert.Len(t, got, 26+62*26)
		assert.Equal(t, "~Z", got[len(got)-1])
	})
}

func TestAllocateStem(t *testing.T) {
	t.Parallel()

	t.Run("returns the first free stem", func(t *testing.T) {
		t.Parallel()

		stem, err := fs.AllocateStem(t.TempDir(), "SO", "20210101")

		require.NoError(t, err)
		assert.Equal(t, "SO20210101A", stem)
	})

	t.Run("conflict when every suffix is taken", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, s := range fs.Suffixes(2000) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "SO20210101"+s+".txt"), nil, 0644))
		}

		_, err := fs.AllocateStem(dir, "SO", "20210101")

		assert.Equal(t, prospero.ECONFLICT, prospero.ErrorCode(err))
	})
}
