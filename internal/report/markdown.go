package report

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/code-a2z/seoscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, for example as a
// review comment on a blog post pull request.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeAlert(md, report)
	w.writeTitleSection(md, report)
	w.writeContentSection(md, report)
	w.writeStructureSection(md, report)
	w.writeMetaDescription(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with document information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("SEO Analysis Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + filepath.Base(report.File) + "`"},
			{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"Overall Score", formatScore(report.OverallScore) + "/100"},
		},
	})
	md.PlainText("")
}

// writeAlert writes an alert whose level reflects the overall score.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.OverallScore >= 80:
		md.Tip("The document is in good SEO shape. Review the remaining suggestions for fine tuning.")
	case report.OverallScore >= 50:
		md.Warningf("The document has %d SEO issue(s) worth addressing.", report.TotalIssues())
	default:
		md.Cautionf("The document scores poorly on SEO. %d issue(s) need attention.", report.TotalIssues())
	}
	md.PlainText("")
}

// writeTitleSection writes the title dimension section.
func (w *MarkdownWriter) writeTitleSection(md *markdown.Markdown, report *model.Report) {
	result := report.TitleAnalysis
	md.H2("📝 Title Analysis")
	md.PlainText("")

	rows := [][]string{
		{"Score", strconv.Itoa(result.Score) + "/100"},
	}
	if report.Title != "" {
		rows = append(rows,
			[]string{"Title", report.Title},
			[]string{"Length", strconv.Itoa(result.Length) + " characters"},
		)
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeFindings(md, result.Issues, result.Suggestions)
}

// writeContentSection writes the content dimension section.
func (w *MarkdownWriter) writeContentSection(md *markdown.Markdown, report *model.Report) {
	result := report.ContentAnalysis
	md.H2("📄 Content Analysis")
	md.PlainText("")

	rows := [][]string{
		{"Score", strconv.Itoa(result.Score) + "/100"},
		{"Word Count", strconv.Itoa(result.WordCount)},
	}
	if len(result.Keywords) > 0 {
		rows = append(rows, []string{"Top Keywords", strings.Join(result.Keywords, ", ")})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeFindings(md, result.Issues, result.Suggestions)
}

// writeStructureSection writes the structure dimension section.
func (w *MarkdownWriter) writeStructureSection(md *markdown.Markdown, report *model.Report) {
	result := report.StructureAnalysis
	md.H2("🏗️ Structure Analysis")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Score", strconv.Itoa(result.Score) + "/100"},
			{"Headings", strconv.Itoa(result.HeadingsCount)},
			{"Lists", strconv.Itoa(result.ListsCount)},
			{"Links", strconv.Itoa(result.LinksCount)},
		},
	})
	md.PlainText("")

	w.writeFindings(md, result.Issues, result.Suggestions)
}

// writeMetaDescription writes the suggested meta description section.
func (w *MarkdownWriter) writeMetaDescription(md *markdown.Markdown, report *model.Report) {
	md.H2("🔍 Suggested Meta Description")
	md.PlainText("")
	md.PlainText("> " + report.MetaDescription)
	md.PlainText("")
	md.HorizontalRule()
}

// writeFindings writes the issue and suggestion lists for one dimension.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, issues, suggestions []string) {
	if len(issues) > 0 {
		md.PlainText("**Issues**")
		md.PlainText("")
		md.BulletList(issues...)
		md.PlainText("")
	}
	if len(suggestions) > 0 {
		md.PlainText("**Suggestions**")
		md.PlainText("")
		md.BulletList(suggestions...)
		md.PlainText("")
	}
}

// formatScore renders the overall score with one decimal place.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
