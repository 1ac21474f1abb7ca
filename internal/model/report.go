package model

import (
	"math"
	"time"
)

// Report is the aggregate analysis result for one Markdown document.
// It is built once per run and is read-only after construction; there is no
// persisted lifecycle beyond the process.
//
// Design decision: We keep the three dimension results as embedded value
// structs rather than pointers because a report always carries all three.
// An absent title is represented inside TitleAnalysis (score 0), not by a
// nil sub-result.
type Report struct {
	// File is the path of the analyzed document as given on the command line.
	File string `json:"file" yaml:"file"`

	// Title is the extracted document title. Empty when no H1 heading exists.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// AnalyzedAt is the timestamp when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	// TitleAnalysis is the title dimension result.
	TitleAnalysis TitleResult `json:"title_analysis" yaml:"title_analysis"`

	// ContentAnalysis is the content dimension result.
	ContentAnalysis ContentResult `json:"content_analysis" yaml:"content_analysis"`

	// StructureAnalysis is the structure dimension result.
	StructureAnalysis StructureResult `json:"structure_analysis" yaml:"structure_analysis"`

	// OverallScore is the unweighted mean of the three dimension scores,
	// rounded to one decimal place. The meta description does not contribute.
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`

	// MetaDescription is the suggested meta description text.
	MetaDescription string `json:"meta_description" yaml:"meta_description"`
}

// Finalize computes the overall score from the three dimension scores.
// It must be called after all dimension results are set.
func (r *Report) Finalize() {
	sum := r.TitleAnalysis.Score + r.ContentAnalysis.Score + r.StructureAnalysis.Score
	mean := float64(sum) / 3
	r.OverallScore = math.Round(mean*10) / 10
}

// TotalIssues returns the number of issues across all three dimensions.
func (r *Report) TotalIssues() int {
	return len(r.TitleAnalysis.Issues) +
		len(r.ContentAnalysis.Issues) +
		len(r.StructureAnalysis.Issues)
}

// HasIssues reports whether any dimension recorded at least one issue.
func (r *Report) HasIssues() bool {
	return r.TotalIssues() > 0
}
