package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/code-a2z/seoscan/internal/document"
	"github.com/code-a2z/seoscan/internal/model"
)

// runContent is a helper that scores cleaned text directly.
func runContent(t *testing.T, cleaned string) model.ContentResult {
	t.Helper()

	doc := &document.Document{Cleaned: cleaned}
	report := &model.Report{}
	(&contentStep{}).Run(doc, report)
	return report.ContentAnalysis
}

// TestContentStepWordCount tests word counting and length penalties.
func TestContentStepWordCount(t *testing.T) {
	t.Parallel()

	t.Run("short content penalized", func(t *testing.T) {
		t.Parallel()

		result := runContent(t, "just a few words here")
		if result.WordCount != 5 {
			t.Errorf("WordCount = %d, expected 5", result.WordCount)
		}
		if result.Score != 60 {
			t.Errorf("Score = %d, expected 60", result.Score)
		}
		if !containsString(result.Issues, issueContentTooShort) {
			t.Errorf("Issues = %v, expected %q", result.Issues, issueContentTooShort)
		}
	})

	t.Run("empty content counts zero words", func(t *testing.T) {
		t.Parallel()

		result := runContent(t, "")
		if result.WordCount != 0 {
			t.Errorf("WordCount = %d, expected 0", result.WordCount)
		}
		if result.Score != 60 {
			t.Errorf("Score = %d, expected 60", result.Score)
		}
		if len(result.Keywords) != 0 {
			t.Errorf("Keywords = %v, expected none", result.Keywords)
		}
	})

	t.Run("very long content penalized", func(t *testing.T) {
		t.Parallel()

		// 2010 stop words keep the keyword list empty, so only the length
		// penalty applies.
		result := runContent(t, strings.Repeat("the ", 2010))
		if result.WordCount != 2010 {
			t.Errorf("WordCount = %d, expected 2010", result.WordCount)
		}
		if result.Score != 90 {
			t.Errorf("Score = %d, expected 90", result.Score)
		}
		if !containsString(result.Issues, issueContentVeryLong) {
			t.Errorf("Issues = %v, expected %q", result.Issues, issueContentVeryLong)
		}
	})

	t.Run("always emits the three fixed suggestions", func(t *testing.T) {
		t.Parallel()

		result := runContent(t, "")
		if len(result.Suggestions) != 3 {
			t.Errorf("Suggestions = %v, expected three fixed entries", result.Suggestions)
		}
	})
}

// TestContentStepDensity tests keyword density penalties.
func TestContentStepDensity(t *testing.T) {
	t.Parallel()

	t.Run("low density penalized", func(t *testing.T) {
		t.Parallel()

		// 500 stop words plus two keyword occurrences: 2/502 = 0.4%.
		text := strings.Repeat("the ", 500) + "golang golang"
		result := runContent(t, text)
		if result.Score != 85 {
			t.Errorf("Score = %d, expected 85", result.Score)
		}
		if !containsString(result.Issues, issueLowDensity) {
			t.Errorf("Issues = %v, expected %q", result.Issues, issueLowDensity)
		}
	})

	t.Run("high density penalized", func(t *testing.T) {
		t.Parallel()

		// Ten keyword occurrences in 300 words: 10/300 = 3.3%.
		text := strings.Repeat("the ", 290) + strings.Repeat("golang ", 10)
		result := runContent(t, text)
		if result.Score != 90 {
			t.Errorf("Score = %d, expected 90", result.Score)
		}
		if !containsString(result.Issues, issueHighDensity) {
			t.Errorf("Issues = %v, expected %q", result.Issues, issueHighDensity)
		}
	})

	t.Run("healthy density takes no penalty", func(t *testing.T) {
		t.Parallel()

		// Ten keyword occurrences in 400 words: 10/400 = 2.5%.
		text := strings.Repeat("the ", 390) + strings.Repeat("golang ", 10)
		result := runContent(t, text)
		if result.Score != 100 {
			t.Errorf("Score = %d, expected 100", result.Score)
		}
		if len(result.Issues) != 0 {
			t.Errorf("Issues = %v, expected none", result.Issues)
		}
	})

	t.Run("density counts substring occurrences", func(t *testing.T) {
		t.Parallel()

		// "cat" appears twice as a token but also inside "category", so the
		// substring count is 3.
		text := strings.Repeat("the ", 590) + "cat cat category " +
			strings.Repeat("a ", 7)
		result := runContent(t, text)
		// 3/600 = 0.5% exactly, which is not below the floor.
		if containsString(result.Issues, issueLowDensity) {
			t.Errorf("Issues = %v, substring matches should lift density to the floor", result.Issues)
		}
	})
}

// TestExtractKeywords tests keyword ranking.
func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		words    []string
		expected []string
	}{
		{
			name:     "ranked by frequency",
			words:    []string{"alpha", "beta", "alpha", "gamma", "alpha", "beta"},
			expected: []string{"alpha", "beta"},
		},
		{
			name:     "ties broken by first occurrence",
			words:    []string{"beta", "beta", "alpha", "alpha"},
			expected: []string{"beta", "alpha"},
		},
		{
			name:     "singletons excluded",
			words:    []string{"alpha", "beta", "gamma"},
			expected: []string{},
		},
		{
			name:     "stop words excluded",
			words:    []string{"the", "the", "the", "alpha", "alpha"},
			expected: []string{"alpha"},
		},
		{
			name:     "short tokens excluded",
			words:    []string{"go", "go", "ai", "ai", "rust", "rust"},
			expected: []string{"rust"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := extractKeywords(tc.words)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("extractKeywords() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestExtractKeywordsCap verifies the ten keyword cap.
func TestExtractKeywordsCap(t *testing.T) {
	t.Parallel()

	words := make([]string, 0, 24)
	for _, w := range []string{
		"able", "bank", "cave", "door", "echo", "fern",
		"gate", "hill", "iron", "jade", "kite", "lake",
	} {
		words = append(words, w, w)
	}

	got := extractKeywords(words)
	if len(got) != 10 {
		t.Errorf("len = %d, expected cap of 10", len(got))
	}
}
