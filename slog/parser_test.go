package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/mock"
	pslog "github.com/fwojciec/prospero/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_ParseFile(t *testing.T) {
	t.Parallel()

	t.Run("logs a summary of the export", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleParser{
			ParseFileFn: func(ctx context.Context, path string) (*prospero.ParseResult, error) {
				return &prospero.ParseResult{
					Path:      path,
					Fragments: 3,
					Articles:  []*prospero.Article{{Source: "Le Monde", Date: &prospero.Date{Day: 1, Month: 1, Year: 2020}}},
					Skipped:   map[prospero.Kind]int{prospero.KindLink: 2},
				}, nil
			},
		}

		result, err := pslog.NewLoggingParser(inner, logger).ParseFile(context.Background(), "export.html")

		require.NoError(t, err)
		assert.Len(t, result.Articles, 1)
		output := buf.String()
		assert.Contains(t, output, "parse export")
		assert.Contains(t, output, "path=export.html")
		assert.Contains(t, output, "fragments=3")
		assert.Contains(t, output, "articles=1")
		assert.Contains(t, output, "skipped=2")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "level=WARN")
	})

	t.Run("warns about malformed fragments and unreadable dates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleParser{
			ParseFileFn: func(ctx context.Context, path string) (*prospero.ParseResult, error) {
				return &prospero.ParseResult{
					Path:     path,
					Articles: []*prospero.Article{{Source: "Sud Ouest", Title: "Titre", RawDate: "Mars 2020"}},
					Malformed: []prospero.MalformedFragment{
						{Index: 4, Source: "Libération", Err: prospero.Errorf(prospero.EMALFORMED, "no header")},
					},
				}, nil
			},
		}

		_, err := pslog.NewLoggingParser(inner, logger).ParseFile(context.Background(), "export.html")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "malformed article")
		assert.Contains(t, output, "index=4")
		assert.Contains(t, output, "source=Libération")
		assert.Contains(t, output, "unreadable date")
		assert.Contains(t, output, `raw="Mars 2020"`)
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleParser{
			ParseFileFn: func(ctx context.Context, path string) (*prospero.ParseResult, error) {
				return nil, errors.New("read failed")
			},
		}

		_, err := pslog.NewLoggingParser(inner, logger).ParseFile(context.Background(), "export.html")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"read failed\"")
	})
}

func TestLoggingParser_ParseArticle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ArticleParser{
		ParseArticleFn: func(fragment string) (*prospero.Article, error) {
			return &prospero.Article{Source: "Le Monde", Title: "Sans date"}, nil
		},
	}

	a, err := pslog.NewLoggingParser(inner, logger).ParseArticle("<article>")

	require.NoError(t, err)
	assert.Equal(t, "Sans date", a.Title)
	assert.Contains(t, buf.String(), "missing date")
}
