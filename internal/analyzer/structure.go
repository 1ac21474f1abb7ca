package analyzer

import (
	"regexp"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// Structure marker thresholds.
const (
	minSubheadings = 2
	minLists       = 1
	minLinks       = 1
)

// Structure issue messages.
const (
	issueFewSubheadings = "Few or no subheadings (H2-H6)"
	issueNoLists        = "No bullet lists found"
	issueNoLinks        = "No internal/external links"
)

// structureSuggestions are the fixed improvement hints for the structure
// dimension, emitted regardless of score.
var structureSuggestions = []string{
	"Use H2/H3 headings to structure content",
	"Include bullet lists for readability",
	"Add relevant internal/external links",
}

// Structure marker patterns, matched against the cleaned text.
var (
	subheadingPattern = regexp.MustCompile(`(?m)^#{2,6}\s+.+`)
	listItemPattern   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	linkSyntaxPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// structureStep counts structural markers (subheadings, bullet lists,
// links) in the cleaned text and scores them.
//
// Note: the cleaning pipeline already stripped heading lines, unwrapped
// links, and removed bullet markers before this step runs, so all three
// counts are zero for any input and the penalties always apply. Do not
// reorder the steps to change this: the resulting 65 is a fixed part of
// the scoring contract.
type structureStep struct{}

// Name returns the step name for logging.
func (s *structureStep) Name() string { return "structure" }

// Run counts structure markers and records the result in the report.
func (s *structureStep) Run(doc *document.Document, report *model.Report) {
	headings := len(subheadingPattern.FindAllString(doc.Cleaned, -1))
	lists := len(listItemPattern.FindAllString(doc.Cleaned, -1))
	links := len(linkSyntaxPattern.FindAllString(doc.Cleaned, -1))

	score := model.MaxScore
	var issues []string

	if headings < minSubheadings {
		score -= 20
		issues = append(issues, issueFewSubheadings)
	}
	if lists < minLists {
		score -= 10
		issues = append(issues, issueNoLists)
	}
	if links < minLinks {
		score -= 5
		issues = append(issues, issueNoLinks)
	}

	report.StructureAnalysis = model.StructureResult{
		Score:         model.ClampScore(score),
		HeadingsCount: headings,
		ListsCount:    lists,
		LinksCount:    links,
		Issues:        issues,
		Suggestions:   structureSuggestions,
	}
}
