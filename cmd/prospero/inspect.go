package main

import (
	"fmt"

	"github.com/fwojciec/prospero"
	"github.com/mattn/go-runewidth"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	result, err := deps.Parser.ParseFile(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prospero.ErrorMessage(err))
		return err
	}

	if len(result.Articles) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles found in %s.\n", c.File)
		return nil
	}

	rows := make([][]string, 0, len(result.Articles))
	for i, a := range result.Articles {
		date := "-"
		if a.Date != nil {
			date = a.Date.String()
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			date,
			a.Source,
			runewidth.Truncate(a.Title, c.Width, "…"),
		})
	}

	if err := writeTable(deps.Stdout, []string{"#", "DATE", "SOURCE", "TITLE"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%d article(s), %d skipped, %d malformed\n",
		len(result.Articles), result.SkippedCount(), len(result.Malformed))
	return nil
}
