// Package search filters the lines of an in-memory text buffer by substring.
//
// Results are substrings of the input, so they share its backing storage and
// are returned in the order they appear.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains query.
// Matching is exact and case-sensitive. An empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive returns every line of contents that contains query
// once both are lowercased. The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Lines yields the lines of contents without their line terminators.
// Lines end at "\n" or "\r\n". A terminator at the very end does not start
// another line, and empty contents yield nothing.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(contents) > 0 {
			line, rest, found := strings.Cut(contents, "\n")
			if found {
				line = strings.TrimSuffix(line, "\r")
			}
			if !yield(line) {
				return
			}
			contents = rest
		}
	}
}
