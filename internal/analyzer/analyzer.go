package analyzer

import (
	"log/slog"
	"time"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// step is a single analysis pass. Each step reads the immutable document
// snapshot and writes its result into the report.
//
// Design decision: We use an interface rather than plain functions because
// it gives each step a Name() for logging, mirroring how the rest of the
// codebase identifies units of work.
type step interface {
	// Name returns the step's name for logging purposes.
	Name() string

	// Run executes the analysis pass.
	Run(doc *document.Document, report *model.Report)
}

// Analyzer orchestrates the analysis steps for one document.
// It is stateless between runs; a single instance can analyze any number
// of documents.
type Analyzer struct {
	// steps contains the ordered list of analysis passes to execute.
	steps []step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger for the analyzer.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer with all built-in analysis steps registered.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		steps: []step{
			&titleStep{},
			&contentStep{},
			&structureStep{},
			&metaDescriptionStep{},
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Run executes all analysis steps and returns the finalized report.
// The overall score is the unweighted mean of the three dimension scores;
// the meta description does not contribute to it.
func (a *Analyzer) Run(doc *document.Document) *model.Report {
	report := &model.Report{
		File:       doc.Path,
		Title:      doc.Title,
		AnalyzedAt: time.Now(),
	}

	for _, s := range a.steps {
		a.logger.Debug("running analysis step", "step", s.Name(), "file", doc.Path)
		s.Run(doc, report)
	}

	report.Finalize()

	a.logger.Debug("analysis complete",
		"file", doc.Path,
		"overall_score", report.OverallScore,
		"issues", report.TotalIssues(),
	)

	return report
}
