// Package document loads a Markdown document and prepares it for analysis.
// It reads the file, splits optional YAML frontmatter from the body, extracts
// the title from the first H1 heading, and derives a cleaned plain-text
// buffer with Markdown syntax stripped.
package document
