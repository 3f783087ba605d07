package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bee"
	"github.com/fwojciec/bee/color"
	"github.com/fwojciec/bee/csv"
	"github.com/fwojciec/bee/etree"
	"github.com/fwojciec/bee/fs"
	"github.com/fwojciec/bee/jsoniter"
	"github.com/fwojciec/bee/readline"
	"github.com/fwojciec/bee/shodan"
	beeslog "github.com/fwojciec/bee/slog"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input supplies command lines. Defaults to an interactive readline
	// prompt when nil. Set before calling Run().
	Input bee.LineReader

	// Store holds loaded records. Populated by Run() for end-to-end testing.
	Store *bee.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run parses the process arguments, loads any files given on the command
// line and runs the interactive session until exit or end of input.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bee"),
		kong.Description("Load JSON, CSV, XML and Shodan records and query them by key."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := NewLogger(stderr, cli.Verbose)

	m.Store = bee.NewStore()
	renderer := bee.NewRenderer(m.Store, stdout, fs.NewAppender(), logger)
	if f, ok := stdout.(*os.File); ok {
		renderer.Palette = color.PaletteFor(f, cli.NoColor || os.Getenv("NO_COLOR") != "")
	}

	loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
		bee.KindJSON: jsoniter.NewNormalizer(),
		bee.KindCSV:  csv.NewNormalizer(),
		bee.KindXML:  etree.NewNormalizer(),
	})

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Store:    m.Store,
		Loader:   beeslog.NewLoggingLoader(loader, logger),
		Renderer: renderer,
	}

	if cli.APIKey != "" {
		searcher := shodan.NewSearcher(cli.APIKey, jsoniter.NewNormalizer(),
			shodan.WithRateLimit(rate.Limit(cli.Rate)),
			shodan.WithTimeout(cli.Timeout),
		)
		deps.Searcher = beeslog.NewLoggingSearcher(searcher, logger)
	}

	if len(cli.Files) > 0 {
		if err := (&LoadCmd{Names: cli.Files}).Run(deps); err != nil {
			return err
		}
	}

	input := m.Input
	if input == nil {
		input, err = readline.NewPrompt(readline.Config{
			HistoryFile: cli.HistoryFile,
			Stdout:      stdout,
			Stderr:      stderr,
		})
		if err != nil {
			return fmt.Errorf("failed to start prompt: %w", err)
		}
	}
	defer input.Close()

	return RunSession(deps, input)
}

// NewLogger returns a text logger writing to w. Successes are logged at
// debug level, so they only appear when verbose is set. Timestamps are
// omitted since every line belongs to the interactive session.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
