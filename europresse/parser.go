// Package europresse parses the HTML export files of the Europresse news
// database into articles.
package europresse

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/html"
)

// Ensure Parser implements prospero.ArticleParser at compile time.
var _ prospero.ArticleParser = (*Parser)(nil)

// Class attribute values marking the article fields of an export.
const (
	classPublication = "DocPublicationName"
	classDate        = "DocHeader"
	classTitle       = "titreArticle"
	classAuthors     = "docAuthors"
	classBody        = "docOcurrContainer"
)

// Parser parses Europresse export files.
type Parser struct {
	Classifier prospero.Classifier

	// Strict makes ParseFile fail on the first malformed fragment instead of
	// reporting it and moving on to the next one.
	Strict bool
}

// NewParser creates a new Parser using c to filter out stubs.
func NewParser(c prospero.Classifier) *Parser {
	return &Parser{Classifier: c}
}

// ParseArticle parses one raw fragment.
func (p *Parser) ParseArticle(fragment string) (*prospero.Article, error) {
	if !prospero.IsPlain(p.Classifier, fragment) {
		return nil, prospero.ErrNotPlain
	}
	return parsePlain(fragment)
}

// ParseFile reads and parses an export file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*prospero.ParseResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	if !utf8.Valid(b) {
		return nil, prospero.Errorf(prospero.EINVALID, "%s is not valid UTF-8", path)
	}

	fragments := html.SplitArticles(string(b))
	result := &prospero.ParseResult{
		Path:      path,
		Fragments: len(fragments),
		Skipped:   make(map[prospero.Kind]int),
	}

	for i, fragment := range fragments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if kind := p.Classifier.Classify(fragment); kind != prospero.KindPlain {
			result.Skipped[kind]++
			continue
		}

		article, err := parsePlain(fragment)
		if err != nil {
			m := prospero.MalformedFragment{Index: i, Source: DetectSource(fragment), Err: err}
			if p.Strict {
				return nil, fmt.Errorf("%s: article %d (source %q): %w", path, i, m.Source, err)
			}
			result.Malformed = append(result.Malformed, m)
			continue
		}
		result.Articles = append(result.Articles, article)
	}

	return result, nil
}

// parsePlain parses a fragment already classified as a plain article.
func parsePlain(fragment string) (*prospero.Article, error) {
	content := html.UnescapeString(fragment)

	header, body, err := html.SplitHeader(content)
	if err != nil {
		return nil, err
	}

	a := &prospero.Article{}
	if name, ok := html.Extract(header, classPublication); ok {
		a.Source = FormatSourceName(name)
	}
	if raw, ok := html.Extract(header, classDate); ok {
		a.RawDate = raw
		if d, err := prospero.ParseDate(raw); err == nil {
			a.Date = &d
		}
	}
	if title, ok := html.Extract(header, classTitle); ok {
		a.Title = html.Strip(title)
	}
	if narrator, ok := html.Extract(header, classAuthors); ok {
		narrator = html.Strip(narrator)
		a.Narrator = &narrator
	}
	if subtitle, ok := html.Subtitle(header); ok {
		subtitle = html.Strip(subtitle)
		a.Subtitle = &subtitle
	}

	text, ok := html.Extract(body, classBody)
	if !ok {
		return nil, prospero.Errorf(prospero.EMALFORMED, "article body %q not found", classBody)
	}
	a.Text = html.Strip(text)

	return a, nil
}

// FormatSourceName keeps the bare outlet name of a publication field,
// dropping trailing qualifiers such as "(site web)", ", Paris" or markup.
func FormatSourceName(name string) string {
	if i := strings.IndexAny(name, "<(,"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// DetectSource returns the publication name of a fragment, or "" when the
// fragment has none. It does not require the fragment to be well formed.
func DetectSource(fragment string) string {
	name, ok := html.Extract(html.UnescapeString(fragment), classPublication)
	if !ok {
		return ""
	}
	return FormatSourceName(name)
}
