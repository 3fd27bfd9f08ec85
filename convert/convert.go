// Package convert turns Europresse export files into Prospero file pairs.
// It coordinates parsing, duplicate detection, writing and the optional
// conversion ledger.
package convert

import (
	"context"
	"fmt"
	"sort"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/bloom"
)

// ledgerPageSize is the number of entries read per query by LoadLedger.
const ledgerPageSize = 500

// Converter converts export files. Services other than Parser, Writer and
// Publications are optional.
type Converter struct {
	Parser       prospero.ArticleParser
	Writer       prospero.ArticleWriter
	Publications prospero.PublicationIndex

	// Ledger records written articles when set.
	Ledger prospero.ArticleService

	// Dedup remembers the content of written articles when set. Positives
	// are confirmed against the Ledger when one is configured.
	Dedup *bloom.Filter

	// SkipDuplicates drops articles whose content was already written.
	SkipDuplicates bool
}

// LoadLedger adds every recorded content hash to the Dedup filter so that
// articles written by earlier runs are recognized.
func (c *Converter) LoadLedger(ctx context.Context) error {
	if c.Ledger == nil || c.Dedup == nil {
		return nil
	}
	for offset := 0; ; offset += ledgerPageSize {
		entries, err := c.Ledger.FindArticles(ctx, prospero.ArticleFilter{Offset: offset, Limit: ledgerPageSize})
		if err != nil {
			return fmt.Errorf("load ledger: %w", err)
		}
		for _, e := range entries {
			c.Dedup.Add(e.ContentHash)
		}
		if len(entries) < ledgerPageSize {
			return nil
		}
	}
}

// ConvertFile converts one export file.
// Malformed fragments are listed in the report; write and ledger failures
// abort the file.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*prospero.Report, error) {
	result, err := c.Parser.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	report := &prospero.Report{
		Path:      path,
		Found:     result.Fragments,
		Parsed:    len(result.Articles),
		Skipped:   result.Skipped,
		Malformed: result.Malformed,
	}
	unknowns := make(map[string]struct{})

	for _, a := range result.Articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, ok := c.Publications.Lookup(a.Source); !ok {
			unknowns[a.Source] = struct{}{}
		}

		hash := a.Hash()
		if c.SkipDuplicates {
			dup, err := c.isDuplicate(ctx, a, hash)
			if err != nil {
				return nil, err
			}
			if dup {
				report.Duplicates++
				continue
			}
		}

		pair, err := c.Writer.WriteArticle(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("%s: write %q: %w", path, a.Title, err)
		}
		report.Written = append(report.Written, pair)

		if c.Dedup != nil {
			c.Dedup.Add(hash)
		}
		if c.Ledger != nil {
			if err := c.Ledger.CreateArticle(ctx, newEntry(path, a, pair, hash)); err != nil {
				return nil, fmt.Errorf("%s: record %s: %w", path, pair.Stem, err)
			}
		}
	}

	for name := range unknowns {
		report.Unknowns = append(report.Unknowns, name)
	}
	sort.Strings(report.Unknowns)

	return report, nil
}

func (c *Converter) isDuplicate(ctx context.Context, a *prospero.Article, hash string) (bool, error) {
	if c.Dedup != nil {
		if c.Ledger == nil {
			return c.Dedup.Seen(a), nil
		}
		if !c.Dedup.Test(hash) {
			return false, nil
		}
	}
	if c.Ledger == nil {
		return false, nil
	}
	return c.Ledger.HasContentHash(ctx, hash)
}

func newEntry(path string, a *prospero.Article, pair *prospero.FilePair, hash string) *prospero.ArticleEntry {
	e := &prospero.ArticleEntry{
		Stem:        pair.Stem,
		Dir:         pair.Dir,
		Source:      a.Source,
		Title:       a.Title,
		ContentHash: hash,
		InputPath:   path,
	}
	if a.Date != nil {
		e.Date = a.Date.String()
	}
	return e
}
