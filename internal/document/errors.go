package document

import "fmt"

// Load errors.
// Both error kinds are terminal for a run: the CLI reports a one-line
// message and exits non-zero without producing a partial report.
//
// Design decision: We use typed errors rather than package-level sentinels
// because callers need the offending path (and the underlying cause for
// ReadError) to build the user-facing message. errors.As() gives the same
// programmatic handling that errors.Is() would with sentinels.

// NotFoundError is returned when the document path does not exist.
type NotFoundError struct {
	// Path is the file path that could not be found.
	Path string
}

// Error returns a human-readable message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", e.Path)
}

// ReadError is returned when reading the document fails for any reason
// other than the path not existing (permissions, I/O failure, malformed
// frontmatter).
type ReadError struct {
	// Path is the file path that failed to read.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error returns a human-readable message.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *ReadError) Unwrap() error {
	return e.Err
}
