// Package search filters the lines of a text buffer by substring containment.
//
// Every line returned by this package is a substring of the contents passed in,
// so it shares that string's backing memory instead of copying it. Callers keep
// the contents alive for as long as they hold the results.
package search

import "strings"

// Span is the byte range of one line inside a text buffer, excluding its
// terminator.
type Span struct {
	Start int
	End   int
}

// In returns the line the span denotes within contents.
func (s Span) In(contents string) string { return contents[s.Start:s.End] }

// Lines splits contents on '\n', dropping one trailing '\r' from each line.
// A final line without a terminator is included; the empty remainder after a
// final terminator is not.
func Lines(contents string) []Span {
	var spans []Span
	eachLine(contents, func(start, end int) {
		spans = append(spans, Span{Start: start, End: end})
	})
	return spans
}

func eachLine(contents string, fn func(start, end int)) {
	start := 0
	for start < len(contents) {
		end := len(contents)
		next := len(contents)
		if i := strings.IndexByte(contents[start:], '\n'); i >= 0 {
			end = start + i
			next = end + 1
		}
		lineEnd := end
		if lineEnd > start && contents[lineEnd-1] == '\r' {
			lineEnd--
		}
		fn(start, lineEnd)
		start = next
	}
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is Search with both sides lowered before comparing.
// The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	q := strings.ToLower(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), q)
	})
}

// Find dispatches to Search or SearchCaseInsensitive.
func Find(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return Search(query, contents)
	}
	return SearchCaseInsensitive(query, contents)
}

func filter(contents string, keep func(line string) bool) []string {
	out := []string{}
	eachLine(contents, func(start, end int) {
		if line := contents[start:end]; keep(line) {
			out = append(out, line)
		}
	})
	return out
}
