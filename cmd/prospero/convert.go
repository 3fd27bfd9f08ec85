package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	var pairs, bytes int
	for _, path := range c.Files {
		report, err := deps.Converter.ConvertFile(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prospero.ErrorMessage(err))
			return err
		}
		printReport(deps.Stdout, report)
		pairs += len(report.Written)
		bytes += convert.WrittenBytes(report)
	}

	if len(c.Files) > 1 {
		fmt.Fprintf(deps.Stdout, "Wrote %d file pair(s) to %s (%s)\n", pairs, c.Dest, convert.FormatBytes(bytes))
	}
	return nil
}

func printReport(w io.Writer, r *prospero.Report) {
	fmt.Fprintf(w, "%s: found %d article(s), converted %d\n",
		convert.TruncatePath(r.Path, 60), r.Found, len(r.Written))

	if r.SkippedCount() > 0 {
		fmt.Fprintf(w, "  Skipped %d: %s\n", r.SkippedCount(), convert.FormatSkipped(r.Skipped))
	}
	if r.Duplicates > 0 {
		fmt.Fprintf(w, "  Duplicates: %d\n", r.Duplicates)
	}
	for _, m := range r.Malformed {
		source := m.Source
		if source == "" {
			source = "unknown source"
		}
		fmt.Fprintf(w, "  Malformed article %d (%s): %s\n", m.Index, source, prospero.ErrorMessage(m.Err))
	}
	if len(r.Unknowns) > 0 {
		fmt.Fprintf(w, "  Unknown publications: %s\n", strings.Join(r.Unknowns, ", "))
	}
	for _, p := range r.Written {
		fmt.Fprintf(w, "  %s\n", p.Stem)
	}
}
