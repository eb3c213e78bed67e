package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/skarvsladd/wikisite"
	"github.com/skarvsladd/wikisite/fs"
	"github.com/skarvsladd/wikisite/zip"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportUnhandled(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When Builder is set, no model
	// provider is configured.
	Builder   wikisite.SiteBuilder
	Packager  wikisite.Packager
	NewWriter func(dir string) wikisite.SiteWriter

	// NewPreviewer replaces the headless Chrome previewer.
	NewPreviewer func() (wikisite.Previewer, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("wikisite"),
		kong.Description("Turn a Wikipedia article into a single-page website."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikisite --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Packager = m.Packager
	if deps.Packager == nil {
		deps.Packager = zip.NewPackager()
	}
	deps.NewWriter = m.NewWriter
	if deps.NewWriter == nil {
		deps.NewWriter = func(dir string) wikisite.SiteWriter { return fs.NewWriter(dir) }
	}
	deps.NewPreviewer = m.NewPreviewer
	if deps.NewPreviewer == nil {
		deps.NewPreviewer = func() (wikisite.Previewer, error) { return NewPreviewer(deps.Logger) }
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return report(stderr, err)
	}
	cli.Apply(cfg)
	deps.Config = cfg

	switch kongCtx.Command() {
	case "generate <url>", "serve":
		deps.Builder = m.Builder
		if deps.Builder == nil {
			builder, err := NewBuilder(ctx, cfg, deps.Logger)
			if err != nil {
				err = report(stderr, err)
				if wikisite.ErrorCode(err) == wikisite.EINVALID {
					fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY, or OPENAI_API_KEY with --provider=openai")
				}
				return err
			}
			deps.Builder = builder
		}
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
