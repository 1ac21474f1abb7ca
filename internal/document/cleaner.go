package document

import (
	"regexp"
	"strings"
)

// Markdown stripping patterns. Each pattern serves exactly one transform
// step below; keeping them package-level avoids recompilation per document.
var (
	headingLinePattern = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	imagePattern       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	fencedCodePattern  = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	bulletPattern      = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
)

// transform is one named, pure string-to-string cleaning step.
type transform struct {
	name  string
	apply func(string) string
}

// cleanSteps is the ordered Markdown stripping pipeline. The order is load
// bearing: links must be unwrapped before images are removed, bold before
// italic (to avoid leaving stray asterisks), and heading lines go first so
// heading text never reaches content analysis.
var cleanSteps = []transform{
	{"strip-headings", func(s string) string {
		return headingLinePattern.ReplaceAllString(s, "")
	}},
	{"unwrap-links", func(s string) string {
		return linkPattern.ReplaceAllString(s, "$1")
	}},
	{"remove-images", func(s string) string {
		return imagePattern.ReplaceAllString(s, "")
	}},
	{"remove-code-blocks", func(s string) string {
		return fencedCodePattern.ReplaceAllString(s, "")
	}},
	{"unwrap-inline-code", func(s string) string {
		return inlineCodePattern.ReplaceAllString(s, "$1")
	}},
	{"unwrap-bold", func(s string) string {
		return boldPattern.ReplaceAllString(s, "$1")
	}},
	{"unwrap-italic", func(s string) string {
		return italicPattern.ReplaceAllString(s, "$1")
	}},
	{"strip-bullets", func(s string) string {
		return bulletPattern.ReplaceAllString(s, "")
	}},
	{"trim", strings.TrimSpace},
}

// Clean strips Markdown syntax from text, leaving plain prose for word and
// keyword analysis. It is idempotent on text that contains no Markdown
// syntax (modulo surrounding whitespace).
func Clean(text string) string {
	for _, step := range cleanSteps {
		text = step.apply(text)
	}
	return text
}
