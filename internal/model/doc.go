// Package model defines the core data structures used throughout seoscan.
//
// This package contains the following main types:
//   - TitleResult: Scoring result for the document title
//   - ContentResult: Scoring result for the document body and keywords
//   - StructureResult: Scoring result for headings, lists, and links
//   - Report: The aggregate analysis report for one document
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyzer, report) need to use these types,
// so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON and YAML for report
// output.
package model
