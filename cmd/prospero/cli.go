package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/convert"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Parser    prospero.ArticleParser
	Converter *convert.Converter
	Ledger    prospero.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug messages to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert Europresse exports to Prospero file pairs"`
	Inspect InspectCmd `cmd:"" help:"List the articles of an export without writing anything"`
	History HistoryCmd `cmd:"" help:"List articles recorded in the conversion ledger"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files          []string `arg:"" type:"existingfile" help:"Europresse HTML export files"`
	Dest           string   `short:"d" required:"" type:"existingdir" env:"PROSPERO_DEST" help:"Destination directory"`
	Publications   string   `short:"p" required:"" type:"existingfile" env:"PROSPERO_PUBLICATIONS" help:"Publication reference table (YAML)"`
	Encoding       string   `short:"e" default:"latin1" env:"PROSPERO_ENCODING" help:"Output codepage (latin1 or windows-1252)"`
	NoClean        bool     `help:"Write payloads without markup cleaning"`
	Strict         bool     `help:"Abort a file on its first malformed article"`
	SkipDuplicates bool     `help:"Skip articles already written by this or an earlier run"`
	Ledger         string   `short:"l" env:"PROSPERO_LEDGER" help:"Conversion ledger database"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File  string `arg:"" type:"existingfile" help:"Europresse HTML export file"`
	Width int    `short:"w" default:"60" help:"Maximum title width"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Ledger string `short:"l" required:"" env:"PROSPERO_LEDGER" help:"Conversion ledger database"`
	Source string `short:"s" help:"Only list articles from this publication"`
	Limit  int    `short:"n" default:"50" help:"Maximum number of entries"`
}
