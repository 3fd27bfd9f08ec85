package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/prospero"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ prospero.ArticleService = (*ArticleService)(nil)

const articleColumns = "id, stem, dir, source, date, title, content_hash, input_path, created_at"

// ArticleService implements prospero.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle records a written article.
// Returns ECONFLICT when the stem is already recorded for the directory.
func (s *ArticleService) CreateArticle(ctx context.Context, entry *prospero.ArticleEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE dir = ? AND stem = ?", entry.Dir, entry.Stem,
	).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return prospero.Errorf(prospero.ECONFLICT, "article %s already recorded in %s", entry.Stem, entry.Dir)
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Stem, entry.Dir, entry.Source, entry.Date, entry.Title,
		entry.ContentHash, entry.InputPath, entry.CreatedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an entry by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*prospero.ArticleEntry, error) {
	entry, err := scanArticle(s.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, prospero.Errorf(prospero.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindArticles retrieves entries matching the filter, most recent first.
func (s *ArticleService) FindArticles(ctx context.Context, filter prospero.ArticleFilter) ([]*prospero.ArticleEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Dir != nil {
		query.WriteString(" AND dir = ?")
		args = append(args, *filter.Dir)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*prospero.ArticleEntry
	for rows.Next() {
		entry, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// HasContentHash reports whether an article with the hash was recorded.
func (s *ArticleService) HasContentHash(ctx context.Context, hash string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM articles WHERE content_hash = ?)", hash,
	).Scan(&exists)
	return exists, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*prospero.ArticleEntry, error) {
	var entry prospero.ArticleEntry
	var createdAt string

	if err := row.Scan(&entry.ID, &entry.Stem, &entry.Dir, &entry.Source, &entry.Date,
		&entry.Title, &entry.ContentHash, &entry.InputPath, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if entry.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &entry, nil
}
