package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// Title length bounds in characters. Search engines typically truncate
// titles above ~60 characters, and very short titles waste ranking signal.
const (
	minTitleLength = 30
	maxTitleLength = 60

	// minTitleWords is the minimum word count before the title is
	// considered descriptive.
	minTitleWords = 3
)

// Title issue messages.
const (
	issueNoTitle         = "No title found (first # heading)"
	issueTitleTooShort   = "Title too short (< 30 characters)"
	issueTitleTooLong    = "Title too long (> 60 characters)"
	issueTitleFewKeyword = "Title lacks descriptive keywords"
)

// titleSuggestions are the fixed improvement hints emitted whenever a
// title exists, regardless of score.
var titleSuggestions = []string{
	"Include primary keyword in title",
	"Keep title between 30-60 characters",
}

// titleStep scores the extracted document title.
type titleStep struct{}

// Name returns the step name for logging.
func (s *titleStep) Name() string { return "title" }

// Run scores the title and records the result in the report.
// An absent title scores zero with a single issue and no suggestions.
func (s *titleStep) Run(doc *document.Document, report *model.Report) {
	if doc.Title == "" {
		report.TitleAnalysis = model.TitleResult{
			Score:  model.MinScore,
			Issues: []string{issueNoTitle},
		}
		return
	}

	length := utf8.RuneCountInString(doc.Title)
	score := model.MaxScore
	var issues []string

	switch {
	case length < minTitleLength:
		score -= 30
		issues = append(issues, issueTitleTooShort)
	case length > maxTitleLength:
		score -= 20
		issues = append(issues, issueTitleTooLong)
	}

	if len(strings.Fields(strings.ToLower(doc.Title))) < minTitleWords {
		score -= 10
		issues = append(issues, issueTitleFewKeyword)
	}

	report.TitleAnalysis = model.TitleResult{
		Score:       model.ClampScore(score),
		Length:      length,
		Issues:      issues,
		Suggestions: titleSuggestions,
	}
}
