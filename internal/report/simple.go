package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/code-a2z/seoscan/internal/model"
)

// sectionRule is the horizontal rule used to frame the report.
const sectionRule = "=================================================="

// maxDisplayedKeywords is the number of top keywords shown in the
// human-readable content section.
const maxDisplayedKeywords = 3

// SimpleWriter outputs human-readable text reports.
// This is the default output format, designed for terminal display with
// emoji section markers and indented issue and suggestion bullets.
//
// Design decision: We build the entire report into a strings.Builder and
// write it in one call so partial output never reaches the terminal if the
// destination fails mid-report.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeOverall(&sb, report)
	w.writeTitleSection(&sb, report)
	w.writeContentSection(&sb, report)
	w.writeStructureSection(&sb, report)
	w.writeMetaDescription(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the framed report header with the file name.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(sectionRule)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("SEO Analysis Report for: %s\n", filepath.Base(report.File)))
	sb.WriteString(sectionRule)
	sb.WriteString("\n")
}

// writeOverall writes the overall score line.
func (w *SimpleWriter) writeOverall(sb *strings.Builder, report *model.Report) {
	sb.WriteString(fmt.Sprintf("\n📊 Overall SEO Score: %s/100\n",
		strconv.FormatFloat(report.OverallScore, 'f', 1, 64)))
}

// writeTitleSection writes the title analysis section.
func (w *SimpleWriter) writeTitleSection(sb *strings.Builder, report *model.Report) {
	result := report.TitleAnalysis
	sb.WriteString(fmt.Sprintf("\n📝 Title Analysis (Score: %d/100)\n", result.Score))

	if report.Title != "" {
		sb.WriteString(fmt.Sprintf("   Title: %s\n", report.Title))
		sb.WriteString(fmt.Sprintf("   Length: %d characters\n", result.Length))
	}
	w.writeBullets(sb, "Issues", result.Issues)
	w.writeBullets(sb, "Suggestions", result.Suggestions)
}

// writeContentSection writes the content analysis section.
func (w *SimpleWriter) writeContentSection(sb *strings.Builder, report *model.Report) {
	result := report.ContentAnalysis
	sb.WriteString(fmt.Sprintf("\n📄 Content Analysis (Score: %d/100)\n", result.Score))
	sb.WriteString(fmt.Sprintf("   Word Count: %d\n", result.WordCount))

	if len(result.Keywords) > 0 {
		top := result.Keywords
		if len(top) > maxDisplayedKeywords {
			top = top[:maxDisplayedKeywords]
		}
		sb.WriteString(fmt.Sprintf("   Top Keywords: %s\n", strings.Join(top, ", ")))
	}
	w.writeBullets(sb, "Issues", result.Issues)
	w.writeBullets(sb, "Suggestions", result.Suggestions)
}

// writeStructureSection writes the structure analysis section.
func (w *SimpleWriter) writeStructureSection(sb *strings.Builder, report *model.Report) {
	result := report.StructureAnalysis
	sb.WriteString(fmt.Sprintf("\n🏗️  Structure Analysis (Score: %d/100)\n", result.Score))
	sb.WriteString(fmt.Sprintf("   Headings: %d\n", result.HeadingsCount))
	sb.WriteString(fmt.Sprintf("   Lists: %d\n", result.ListsCount))
	sb.WriteString(fmt.Sprintf("   Links: %d\n", result.LinksCount))

	w.writeBullets(sb, "Issues", result.Issues)
	w.writeBullets(sb, "Suggestions", result.Suggestions)
}

// writeMetaDescription writes the suggested meta description section.
func (w *SimpleWriter) writeMetaDescription(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n🔍 Suggested Meta Description:\n")
	sb.WriteString(fmt.Sprintf("   %s\n", report.MetaDescription))
}

// writeFooter writes the closing rule.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(sectionRule)
	sb.WriteString("\n")
}

// writeBullets writes an indented bullet list under a label, or nothing
// when the list is empty.
func (w *SimpleWriter) writeBullets(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("   %s:\n", label))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("   - %s\n", item))
	}
}
