package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/code-a2z/seoscan/internal/analyzer"
	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/report"
)

// Command-level errors.
//
// Design decision: We use package-level sentinel errors so tests can use
// errors.Is() while the user still sees a clear one-line message.
var (
	// ErrInvalidArguments is returned when the analyze command does not
	// receive exactly one markdown file path.
	ErrInvalidArguments = errors.New("invalid arguments: expected exactly one markdown file")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --yaml is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --yaml cannot be combined")
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <markdown-file>",
		Short: "Analyze a Markdown blog post for SEO issues",
		Long: `Analyze scores a Markdown blog post for search engine optimization.

It evaluates three dimensions, each on a 0-100 scale:
- Title quality (presence, length, descriptiveness)
- Content quality (word count, keyword frequency and density)
- Structure quality (subheadings, bullet lists, links)

The report also includes a suggested meta description derived from the
document body.

Examples:
  # Analyze a blog post and print the report
  seoscan analyze my_blog_post.md

  # Output a JSON report
  seoscan analyze --json my_blog_post.md

  # Write a Markdown report to a file
  seoscan analyze --markdown -o reports/my_blog_post.md post.md`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Report format flags (mutually exclusive)
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report")
	cmd.Flags().BoolP("yaml", "y", false,
		"Output YAML report")

	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// analyzeOptions holds the analyze command configuration built from flags.
type analyzeOptions struct {
	// path is the markdown file to analyze.
	path string

	// jsonReport selects JSON output.
	jsonReport bool

	// markdownReport selects Markdown output.
	markdownReport bool

	// yamlReport selects YAML output.
	yamlReport bool

	// outputPath, when set, receives the report instead of stdout.
	outputPath string

	// verbose enables debug logging.
	verbose bool
}

// validate checks option consistency.
func (o *analyzeOptions) validate() error {
	selected := 0
	for _, enabled := range []bool{o.jsonReport, o.markdownReport, o.yamlReport} {
		if enabled {
			selected++
		}
	}
	if selected > 1 {
		return ErrConflictingReportFormats
	}
	return nil
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Argument validation happens before any file access so a wrong
	// invocation never touches the filesystem.
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: seoscan analyze <markdown-file>")
		fmt.Fprintln(out, "Example: seoscan analyze my_blog_post.md")
		return ErrInvalidArguments
	}

	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}

	// Set up structured logging. Logs go to stderr so they never mix into
	// the report on stdout.
	logger := setupLogger(opts.verbose)
	slog.SetDefault(logger)

	doc, err := document.Load(opts.path)
	if err != nil {
		printLoadError(out, err)
		return err
	}

	logger.Debug("document loaded",
		"file", opts.path,
		"title", doc.Title,
		"bytes", len(doc.Raw),
	)

	result := analyzer.New(analyzer.WithLogger(logger)).Run(doc)

	dest, cleanup, err := openReportDestination(opts, out)
	if err != nil {
		return err
	}
	defer cleanup()

	writer := newReportWriter(opts, dest)
	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// buildOptions creates analyzeOptions from cobra command flags.
func buildOptions(cmd *cobra.Command, args []string) (*analyzeOptions, error) {
	opts := &analyzeOptions{
		path:    args[0],
		verbose: getVerboseFlag(cmd),
	}

	var err error

	opts.jsonReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	opts.markdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	opts.yamlReport, err = cmd.Flags().GetBool("yaml")
	if err != nil {
		return nil, err
	}

	opts.outputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return opts, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// printLoadError prints the user-facing message for a document load
// failure. The messages are part of the CLI contract.
func printLoadError(out io.Writer, err error) {
	var notFound *document.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(out, "Error: File '%s' not found.\n", notFound.Path)
		return
	}

	var readErr *document.ReadError
	if errors.As(err, &readErr) {
		fmt.Fprintf(out, "Error reading file: %v\n", readErr.Err)
		return
	}

	fmt.Fprintf(out, "Error reading file: %v\n", err)
}

// openReportDestination returns the writer the report goes to. When
// --output is set the file (and any missing parent directories) is
// created; otherwise the command's stdout is used. The returned cleanup
// function is a no-op for stdout.
func openReportDestination(opts *analyzeOptions, stdout io.Writer) (io.Writer, func(), error) {
	if opts.outputPath == "" {
		return stdout, func() {}, nil
	}

	if dir := filepath.Dir(opts.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(opts.outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report writer for the chosen format.
// The human-readable simple format is the default.
func newReportWriter(opts *analyzeOptions, dest io.Writer) report.Writer {
	switch {
	case opts.jsonReport:
		return report.NewJSONWriter(dest, report.WithPrettyPrint())
	case opts.markdownReport:
		return report.NewMarkdownWriter(dest)
	case opts.yamlReport:
		return report.NewYAMLWriter(dest)
	default:
		return report.NewSimpleWriter(dest)
	}
}
