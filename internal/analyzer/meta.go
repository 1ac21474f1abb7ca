package analyzer

import (
	"regexp"
	"strings"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// Meta description length limits in characters. Descriptions above the
// limit are cut at truncateAt and suffixed with an ellipsis, keeping the
// total at exactly the limit.
const (
	metaDescriptionLimit = 150
	metaTruncateAt       = 147
	metaEllipsis         = "..."
)

// noTitleMetaDescription is returned when the document has no title; no
// truncation logic runs in that case.
const noTitleMetaDescription = "No title available for meta description generation"

// whitespacePattern matches runs of whitespace for collapsing.
var whitespacePattern = regexp.MustCompile(`\s+`)

// metaDescriptionStep derives a suggested meta description from the
// cleaned text.
type metaDescriptionStep struct{}

// Name returns the step name for logging.
func (s *metaDescriptionStep) Name() string { return "meta_description" }

// Run generates the meta description and records it in the report.
func (s *metaDescriptionStep) Run(doc *document.Document, report *model.Report) {
	report.MetaDescription = generateMetaDescription(doc)
}

// generateMetaDescription collapses whitespace in the cleaned text and
// truncates it to the meta description limit. Truncation counts characters
// (runes), not bytes.
func generateMetaDescription(doc *document.Document) string {
	if doc.Title == "" {
		return noTitleMetaDescription
	}

	collapsed := whitespacePattern.ReplaceAllString(strings.TrimSpace(doc.Cleaned), " ")
	runes := []rune(collapsed)
	if len(runes) > metaDescriptionLimit {
		return string(runes[:metaTruncateAt]) + metaEllipsis
	}
	return collapsed
}
