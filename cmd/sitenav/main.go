package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"sitenav"
	"sitenav/etree"
	"sitenav/fs"
	"sitenav/goldmark"
	"sitenav/goquery"
	"sitenav/sidebar"
	navslog "sitenav/slog"
	"sitenav/yaml"
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
	// Fallback navigation served when scanning degrades. Nil uses the
	// compiled-in default; tests may substitute their own.
	Fallback []sitenav.Section
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitenav"),
		kong.Description("Builds the sidebar navigation of the learning site from its content tree."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitenav --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Degradations are always logged; scan/build details only with --verbose.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fallback := m.Fallback
	if cli.Fallback != "" {
		fallback, err = yaml.LoadNavigation(cli.Fallback)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: the file must hold a list of sections, each with a title and items")
			return fmt.Errorf("failed to load fallback navigation from %q: %w", cli.Fallback, err)
		}
	}

	// Body-title extractors, selected by page file extension. Component
	// sources (page.tsx and friends) have no extractor; their directories
	// are titled from front matter or the directory name.
	registry := sitenav.NewRegistry()
	markdown := goldmark.NewTitleExtractor()
	registry.Register(".md", markdown)
	registry.Register(".mdx", markdown)
	html := goquery.NewTitleExtractor()
	registry.Register(".html", html)
	registry.Register(".htm", html)

	var scanner sitenav.Scanner = fs.NewScanner(logger, registry)
	if cli.Verbose {
		scanner = navslog.NewLoggingScanner(scanner, logger)
	}

	var builder sitenav.Builder = &sidebar.Builder{
		Scanner:  scanner,
		Root:     cli.Content,
		Fallback: fallback,
		Logger:   logger,
	}
	if cli.Verbose {
		builder = navslog.NewLoggingBuilder(builder, logger)
	}

	deps.Logger = logger
	deps.Content = cli.Content
	deps.Builder = builder
	deps.Sitemap = etree.NewSitemapWriter()

	return kongCtx.Run(deps)
}
