// Package main provides the entry point for the seoscan CLI.
//
// seoscan computes heuristic SEO-quality scores for a single Markdown blog
// post: title quality, content and keyword quality, structural quality, and
// a suggested meta description.
//
// Usage:
//
//	seoscan analyze <markdown-file>
//
// See --help for all available options.
package main

// main is the entry point for seoscan.
func main() {
	Execute()
}
