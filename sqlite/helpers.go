package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 reads a timestamp column stored by CreateArticle.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET to a ledger query. Zero values
// leave the clause out, so an empty ArticleFilter returns every entry.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT; -1 means no limit.
		limit = -1
	}
	if limit != 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
