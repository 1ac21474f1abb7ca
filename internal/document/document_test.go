package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoad tests loading documents from disk.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "post.md")
		content := "# My Post\n\nSome body text.\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		doc, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Path != path {
			t.Errorf("Path = %q, expected %q", doc.Path, path)
		}
		if doc.Title != "My Post" {
			t.Errorf("Title = %q, expected %q", doc.Title, "My Post")
		}
		if doc.Cleaned != "Some body text." {
			t.Errorf("Cleaned = %q, expected %q", doc.Cleaned, "Some body text.")
		}
	})

	t.Run("returns NotFoundError for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.md")

		_, err := Load(path)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected *NotFoundError, got %T (%v)", err, err)
		}
		if notFound.Path != path {
			t.Errorf("Path = %q, expected %q", notFound.Path, path)
		}
	})

	t.Run("returns ReadError for unreadable path", func(t *testing.T) {
		t.Parallel()

		// A directory exists but cannot be read as a file.
		dir := t.TempDir()

		_, err := Load(dir)
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected *ReadError, got %T (%v)", err, err)
		}
		if readErr.Path != dir {
			t.Errorf("Path = %q, expected %q", readErr.Path, dir)
		}
		if readErr.Unwrap() == nil {
			t.Error("expected wrapped cause")
		}
	})

	t.Run("loads empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.md")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		doc, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Title != "" {
			t.Errorf("Title = %q, expected empty", doc.Title)
		}
		if doc.Cleaned != "" {
			t.Errorf("Cleaned = %q, expected empty", doc.Cleaned)
		}
	})
}

// TestExtractTitle tests H1 title extraction.
func TestExtractTitle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple heading", "# Hello World\n\nBody.", "Hello World"},
		{"no heading", "Just plain text.", ""},
		{"subheading is not a title", "## Section\n\nBody.", ""},
		{"first of multiple headings wins", "# First\n\n# Second\n", "First"},
		{"heading after content", "intro line\n\n# Late Title\n", "Late Title"},
		{"surrounding whitespace trimmed", "#   Padded Title   \n", "Padded Title"},
		{"hash without space is not a heading", "#NoSpace\n", ""},
		{"empty document", "", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := extractTitle(tc.input); got != tc.expected {
				t.Errorf("extractTitle(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestSplitFrontmatter tests frontmatter separation from the body.
func TestSplitFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("parses yaml frontmatter", func(t *testing.T) {
		t.Parallel()

		input := "---\ntitle: Frontmatter Title\ndescription: A summary.\ntags:\n  - go\n  - seo\n---\n# Heading\n\nBody.\n"

		body, meta := splitFrontmatter([]byte(input))
		if meta.Title != "Frontmatter Title" {
			t.Errorf("Title = %q, expected %q", meta.Title, "Frontmatter Title")
		}
		if meta.Description != "A summary." {
			t.Errorf("Description = %q, expected %q", meta.Description, "A summary.")
		}
		if len(meta.Tags) != 2 {
			t.Errorf("Tags = %v, expected 2 entries", meta.Tags)
		}
		if body == input {
			t.Error("expected frontmatter block to be removed from body")
		}
		if !strings.Contains(body, "# Heading") {
			t.Errorf("body = %q, expected heading to remain", body)
		}
	})

	t.Run("passes through document without frontmatter", func(t *testing.T) {
		t.Parallel()

		input := "# Title\n\nBody text.\n"

		body, meta := splitFrontmatter([]byte(input))
		if body != input {
			t.Errorf("body = %q, expected unchanged input", body)
		}
		if meta.Title != "" || meta.Description != "" || len(meta.Tags) != 0 {
			t.Errorf("meta = %+v, expected zero value", meta)
		}
	})
}
