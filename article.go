package prospero

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/cespare/xxhash/v2"
)

// ErrNotPlain is returned by ArticleParser.ParseArticle when the fragment is
// a link stub, a report excerpt or an embedded social post.
var ErrNotPlain = errors.New("not a plain article")

// Article is one parsed article of an export file.
// Optional header fields are nil when the header does not carry them.
type Article struct {
	Source   string  `json:"source"`
	Date     *Date   `json:"date,omitempty"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle,omitempty"`
	Narrator *string `json:"narrator,omitempty"`
	Text     string  `json:"text"`

	// RawDate is the header text the date was read from. It is kept when
	// the date could not be parsed so callers can report it.
	RawDate string `json:"-"`
}

// Hash returns a hex xxHash of the fields that identify an article.
// Two exports of the same article produce the same hash.
func (a *Article) Hash() string {
	d := xxhash.New()
	_, _ = d.WriteString(a.Source)
	_, _ = d.WriteString("\x00")
	if a.Date != nil {
		_, _ = d.WriteString(a.Date.String())
	}
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(a.Title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(a.Text)
	return hex.EncodeToString(d.Sum(nil))
}

// Kind tells what an export fragment contains.
type Kind string

// Kind constants returned by Classifier.Classify.
const (
	KindPlain  Kind = "plain"
	KindLink   Kind = "link"
	KindReport Kind = "report"
	KindTweet  Kind = "tweet"
)

// Classifier decides whether a raw fragment holds a full textual article.
type Classifier interface {
	// Classify returns KindPlain for full articles, or the kind of stub.
	Classify(fragment string) Kind
}

// IsPlain reports whether c classifies fragment as a plain article.
func IsPlain(c Classifier, fragment string) bool {
	return c.Classify(fragment) == KindPlain
}

// MalformedFragment locates a fragment that could not be parsed.
type MalformedFragment struct {
	// Index is the zero-based position of the fragment in the export file.
	Index int

	// Source is the publication name found in the fragment, if any.
	Source string

	Err error
}

// ParseResult holds the outcome of parsing one export file.
type ParseResult struct {
	Path      string
	Fragments int
	Articles  []*Article
	Skipped   map[Kind]int
	Malformed []MalformedFragment
}

// SkippedCount returns the number of fragments excluded by classification.
func (r *ParseResult) SkippedCount() int {
	n := 0
	for _, c := range r.Skipped {
		n += c
	}
	return n
}

// ArticleParser turns export fragments into articles.
type ArticleParser interface {
	// ParseArticle parses one raw fragment.
	// Returns ErrNotPlain for stubs and EMALFORMED when the fragment does
	// not split into a header and a body.
	ParseArticle(fragment string) (*Article, error)

	// ParseFile reads an export file and parses every fragment in it.
	// Returns EINVALID when the file is not valid UTF-8.
	ParseFile(ctx context.Context, path string) (*ParseResult, error)
}
