package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// Content length bounds in words.
const (
	minContentWords = 300
	maxContentWords = 2000
)

// Keyword density bounds in percent. Density below the floor suggests the
// primary keyword is underused; density above the ceiling suggests keyword
// stuffing.
const (
	minKeywordDensity = 0.5
	maxKeywordDensity = 3.0
)

// Keyword extraction limits.
const (
	// maxKeywords is the maximum number of keywords extracted per document.
	maxKeywords = 10

	// maxReportedKeywords is the number of top keywords kept in the result.
	maxReportedKeywords = 5

	// minKeywordLength is the minimum token length (exclusive) for a token
	// to qualify as a keyword candidate.
	minKeywordLength = 2
)

// Content issue messages.
const (
	issueContentTooShort = "Content too short (< 300 words)"
	issueContentVeryLong = "Content very long (> 2000 words)"
	issueLowDensity      = "Low keyword density (< 0.5%)"
	issueHighDensity     = "High keyword density (> 3% - may be keyword stuffing)"
)

// contentSuggestions are the fixed improvement hints for the content
// dimension, emitted regardless of score.
var contentSuggestions = []string{
	"Aim for 300-1500 words",
	"Use primary keyword naturally",
	"Include related keywords",
}

// wordPattern matches one maximal run of word characters (letters, digits,
// underscore). Unicode classes keep tokenization consistent for non-ASCII
// prose.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// lowerCaser performs Unicode-aware lower casing for tokenization and
// substring matching.
var lowerCaser = cases.Lower(language.Und)

// contentStep scores the cleaned document body: word count, keyword
// frequency, and keyword density.
type contentStep struct{}

// Name returns the step name for logging.
func (s *contentStep) Name() string { return "content" }

// Run scores the content and records the result in the report.
func (s *contentStep) Run(doc *document.Document, report *model.Report) {
	lowered := lowerCaser.String(doc.Cleaned)
	words := wordPattern.FindAllString(lowered, -1)
	wordCount := len(words)

	score := model.MaxScore
	var issues []string

	switch {
	case wordCount < minContentWords:
		score -= 40
		issues = append(issues, issueContentTooShort)
	case wordCount > maxContentWords:
		score -= 10
		issues = append(issues, issueContentVeryLong)
	}

	keywords := extractKeywords(words)

	if len(keywords) > 0 {
		// Density counts substring occurrences of the primary keyword, so a
		// keyword that is a prefix of a longer token ("cat" in "category")
		// is counted too. This matches the established scoring behavior.
		primary := keywords[0]
		density := float64(strings.Count(lowered, primary)) / float64(wordCount) * 100

		switch {
		case density < minKeywordDensity:
			score -= 15
			issues = append(issues, issueLowDensity)
		case density > maxKeywordDensity:
			score -= 10
			issues = append(issues, issueHighDensity)
		}
	}

	if len(keywords) > maxReportedKeywords {
		keywords = keywords[:maxReportedKeywords]
	}

	report.ContentAnalysis = model.ContentResult{
		Score:       model.ClampScore(score),
		WordCount:   wordCount,
		Keywords:    keywords,
		Issues:      issues,
		Suggestions: contentSuggestions,
	}
}

// extractKeywords ranks non-stop-word tokens longer than two characters by
// descending frequency, breaking ties by first occurrence, and returns up
// to maxKeywords tokens that appear more than once.
func extractKeywords(words []string) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, w := range words {
		if isStopWord(w) || utf8.RuneCountInString(w) <= minKeywordLength {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	// Stable sort keeps first-encountered order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	keywords := make([]string, 0, maxKeywords)
	for _, w := range order {
		if counts[w] <= 1 {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
