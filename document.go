package prospero

import (
	"context"
	"time"
)

// ArticleEntry records one written file pair in the conversion ledger.
type ArticleEntry struct {
	ID          string    `json:"id"`
	Stem        string    `json:"stem"`
	Dir         string    `json:"dir"`
	Source      string    `json:"source"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	InputPath   string    `json:"inputPath"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ArticleEntry) Validate() error {
	if e.Stem == "" {
		return Errorf(EINVALID, "article stem required")
	}
	if e.ContentHash == "" {
		return Errorf(EINVALID, "article content hash required")
	}
	return nil
}

// ArticleService represents a service for managing the conversion ledger.
type ArticleService interface {
	// CreateArticle records a written article.
	CreateArticle(ctx context.Context, entry *ArticleEntry) error

	// FindArticleByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindArticleByID(ctx context.Context, id string) (*ArticleEntry, error)

	// FindArticles retrieves entries matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*ArticleEntry, error)

	// HasContentHash reports whether an article with the hash was recorded.
	HasContentHash(ctx context.Context, hash string) (bool, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Source      *string `json:"source"`
	Dir         *string `json:"dir"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Report summarizes the conversion of one export file.
type Report struct {
	Path       string
	Found      int
	Parsed     int
	Written    []*FilePair
	Skipped    map[Kind]int
	Duplicates int
	Malformed  []MalformedFragment

	// Unknowns lists publication names missing from the reference table,
	// sorted and without repetition.
	Unknowns []string
}

// SkippedCount returns the number of fragments excluded by classification.
func (r *Report) SkippedCount() int {
	n := 0
	for _, c := range r.Skipped {
		n += c
	}
	return n
}
