package document

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// titlePattern matches the first level-1 heading line. The captured group is
// the heading text; leading whitespace after the marker is consumed by \s+.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Document is an immutable snapshot of a loaded Markdown file.
// All fields are derived once at load time; analyzers receive the same
// snapshot and never mutate it.
type Document struct {
	// Path is the file path the document was loaded from.
	Path string

	// Raw is the Markdown body as read from disk, with any frontmatter
	// block already removed.
	Raw string

	// Title is the text of the first H1 heading, trimmed. Empty when the
	// document has no H1 heading; absence is not an error.
	Title string

	// Cleaned is the body with Markdown syntax stripped. All content and
	// structure analysis operates on this buffer.
	Cleaned string

	// Meta holds the parsed YAML frontmatter, if any.
	Meta Metadata
}

// Metadata is the subset of blog frontmatter fields seoscan understands.
// Unknown keys are ignored.
type Metadata struct {
	// Title is the frontmatter title, if declared.
	Title string `yaml:"title"`

	// Description is the author-provided meta description, if declared.
	Description string `yaml:"description"`

	// Tags are the post tags, if declared.
	Tags []string `yaml:"tags"`
}

// Load reads the Markdown file at path and prepares it for analysis.
// It returns *NotFoundError if the path does not exist and *ReadError for
// any other I/O failure.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	return New(path, data), nil
}

// New builds a Document from raw file contents. It never fails: a document
// without a title or with unparseable frontmatter is still analyzable.
func New(path string, data []byte) *Document {
	body, meta := splitFrontmatter(data)

	doc := &Document{
		Path: path,
		Raw:  body,
		Meta: meta,
	}
	doc.Title = extractTitle(body)
	doc.Cleaned = Clean(body)
	return doc
}

// splitFrontmatter separates an optional leading frontmatter block from the
// Markdown body. Documents without frontmatter pass through unchanged.
//
// Design decision: A frontmatter block that fails to parse (for example a
// document that opens with a horizontal rule) is treated as plain body text
// rather than a load error, so analysis stays total over arbitrary input.
func splitFrontmatter(data []byte) (string, Metadata) {
	var meta Metadata
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return string(data), Metadata{}
	}
	return string(body), meta
}

// extractTitle returns the trimmed text of the first H1 heading, or the
// empty string when no such heading exists. A heading whose text trims to
// nothing counts as absent.
func extractTitle(text string) string {
	m := titlePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
