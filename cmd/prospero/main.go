package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prospero"
	"github.com/fwojciec/prospero/bloom"
	"github.com/fwojciec/prospero/bluemonday"
	"github.com/fwojciec/prospero/charmap"
	"github.com/fwojciec/prospero/convert"
	"github.com/fwojciec/prospero/europresse"
	"github.com/fwojciec/prospero/fs"
	"github.com/fwojciec/prospero/goquery"
	pslog "github.com/fwojciec/prospero/slog"
	"github.com/fwojciec/prospero/sqlite"
	"github.com/fwojciec/prospero/yaml"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the ledger, when one is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prospero"),
		kong.Description("Convert Europresse exports into Prospero text and context files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prospero --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch strings.Fields(kongCtx.Command())[0] {
	case "convert":
		if err := m.wireConvert(ctx, &cli.Convert, deps); err != nil {
			return err
		}
	case "inspect":
		deps.Parser = newParser(deps.Logger, false)
	case "history":
		ledger, err := m.openLedger(cli.History.Ledger)
		if err != nil {
			return err
		}
		deps.Ledger = ledger
	}

	return kongCtx.Run(deps)
}

// wireConvert builds the conversion pipeline from the convert flags.
func (m *Main) wireConvert(ctx context.Context, cmd *ConvertCmd, deps *Dependencies) error {
	publications, err := yaml.LoadPublications(cmd.Publications)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Set PROSPERO_PUBLICATIONS or pass --publications")
		return fmt.Errorf("failed to load publications: %w", err)
	}

	encoder, err := charmap.NewEncoder(cmd.Encoding)
	if err != nil {
		return err
	}

	writer := fs.NewWriter(cmd.Dest, publications, encoder)
	if !cmd.NoClean {
		writer.Cleaner = bluemonday.NewCleaner()
	}

	converter := &convert.Converter{
		Parser:         newParser(deps.Logger, cmd.Strict),
		Writer:         pslog.NewLoggingWriter(writer, deps.Logger),
		Publications:   publications,
		SkipDuplicates: cmd.SkipDuplicates,
	}

	if cmd.Ledger != "" {
		ledger, err := m.openLedger(cmd.Ledger)
		if err != nil {
			return err
		}
		converter.Ledger = ledger
		deps.Ledger = ledger
	}

	if cmd.SkipDuplicates {
		converter.Dedup = bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFPRate)
		if err := converter.LoadLedger(ctx); err != nil {
			return err
		}
		deps.Logger.Debug("load ledger", "hashes", converter.Dedup.EstimatedCount())
	}

	deps.Converter = converter
	return nil
}

func (m *Main) openLedger(path string) (prospero.ArticleService, error) {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return nil, fmt.Errorf("failed to open ledger at %q: %w", path, err)
	}
	return sqlite.NewArticleService(m.DB), nil
}

func newParser(logger *slog.Logger, strict bool) prospero.ArticleParser {
	p := europresse.NewParser(pslog.NewLoggingClassifier(goquery.NewClassifier(), logger))
	p.Strict = strict
	return pslog.NewLoggingParser(p, logger)
}
