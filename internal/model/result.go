package model

// Score boundaries for a single analysis dimension.
// Every dimension starts at MaxScore and is only decremented by named
// penalty rules, never below MinScore.
const (
	// MinScore is the lower bound of any dimension score.
	MinScore = 0

	// MaxScore is the starting value and upper bound of any dimension score.
	MaxScore = 100
)

// TitleResult holds the scoring result for the document title.
type TitleResult struct {
	// Score is the title quality score in [0, 100].
	Score int `json:"score" yaml:"score"`

	// Length is the title length in characters. Zero when no title exists.
	Length int `json:"length" yaml:"length"`

	// Issues lists the penalty rules that fired, in evaluation order.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Suggestions lists fixed improvement hints. Empty when no title exists.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ContentResult holds the scoring result for the document body.
type ContentResult struct {
	// Score is the content quality score in [0, 100].
	Score int `json:"score" yaml:"score"`

	// WordCount is the number of word tokens in the cleaned text.
	WordCount int `json:"word_count" yaml:"word_count"`

	// Keywords contains up to five top-ranked keywords by frequency.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Issues lists the penalty rules that fired, in evaluation order.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Suggestions lists fixed improvement hints.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// StructureResult holds the scoring result for document structure markers.
type StructureResult struct {
	// Score is the structure quality score in [0, 100].
	Score int `json:"score" yaml:"score"`

	// HeadingsCount is the number of H2-H6 heading lines found.
	HeadingsCount int `json:"headings_count" yaml:"headings_count"`

	// ListsCount is the number of bullet list items found.
	ListsCount int `json:"lists_count" yaml:"lists_count"`

	// LinksCount is the number of Markdown links found.
	LinksCount int `json:"links_count" yaml:"links_count"`

	// Issues lists the penalty rules that fired, in evaluation order.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Suggestions lists fixed improvement hints.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ClampScore bounds a score to the valid [MinScore, MaxScore] range.
// Penalties can push a running score below zero; callers clamp the final
// value rather than each intermediate one so issue evaluation stays simple.
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
