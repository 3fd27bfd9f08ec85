package main

import (
	"fmt"

	"github.com/fwojciec/prospero"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := prospero.ArticleFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	entries, err := deps.Ledger.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prospero.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles recorded. Use 'prospero convert --ledger' to record conversions.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Stem,
			e.Source,
			e.Title,
		})
	}
	return writeTable(deps.Stdout, []string{"CONVERTED", "STEM", "SOURCE", "TITLE"}, rows)
}
