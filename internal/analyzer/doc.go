// Package analyzer computes heuristic SEO-quality scores for a loaded
// Markdown document.
//
// The Analyzer runs a fixed sequence of analysis steps over an immutable
// document snapshot: title scoring, content and keyword scoring, structure
// scoring, and meta description generation. Steps are independent of each
// other; each writes its own result into the shared report.
//
// Every dimension score starts at 100, is decremented only by named penalty
// rules, and is clamped to zero. Scoring is total: it has no failure modes
// for any text input, including empty documents.
package analyzer
