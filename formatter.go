package prospero

import (
	"regexp"
	"strings"
	"time"
)

// Separator is the paragraph separator line of Prospero text files.
const Separator = "."

// newline is the line terminator of both output files.
const newline = "\r\n"

// ContextRecordType is the first field of every context file.
const ContextRecordType = "fileCtx0005"

// FormatText formats the body file of an article: the title, a separator
// line, the subtitle and another separator when present, then the text.
func FormatText(a *Article) string {
	var b strings.Builder
	b.WriteString(a.Title)
	b.WriteString(newline + Separator + newline)
	if a.Subtitle != nil && *a.Subtitle != "" {
		b.WriteString(*a.Subtitle)
		b.WriteString(newline + Separator + newline)
	}
	b.WriteString(a.Text)
	return b.String()
}

// breakRe matches the tags that end a line of text.
var breakRe = regexp.MustCompile(`(?i)</p\s*>|<br\s*/?>|</div\s*>|</h[1-6]\s*>|</li\s*>`)

// singleLine folds line-ending tags and whitespace runs of s into single
// spaces.
func singleLine(s string) string {
	return strings.Join(strings.Fields(breakRe.ReplaceAllString(s, " ")), " ")
}

// ContextFields returns the 16 fields of the context file of an article.
// Field order and count are read positionally by Prospero, so every field
// is kept on a single line.
func ContextFields(a *Article, pub Publication, tool string, processedAt time.Time) []string {
	date := ""
	if a.Date != nil {
		date = a.Date.String()
	}
	source := singleLine(pub.Source)
	return []string{
		ContextRecordType,
		singleLine(a.Title),
		source,
		"",
		"",
		date,
		source,
		singleLine(pub.Type),
		"",
		"",
		"",
		"Processed by " + singleLine(tool) + " on " + processedAt.Format("2006-01-02 15:04:05"),
		"",
		"n",
		"n",
		"",
	}
}

// FormatContext formats the context file of an article.
func FormatContext(a *Article, pub Publication, tool string, processedAt time.Time) string {
	return strings.Join(ContextFields(a, pub, tool, processedAt), newline)
}
