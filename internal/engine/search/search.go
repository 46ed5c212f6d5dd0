// Package search finds pattern matches across document lines and keeps a
// cyclic cursor over them.
//
// A pattern is compiled as a regular expression; when compilation fails the
// pattern is matched as a literal substring instead. Results are a snapshot of
// the lines passed to Run and are not refreshed when the document changes.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Match is a single occurrence. Col and Len are measured in runes.
type Match struct {
	Line int
	Col  int
	Len  int
}

// Index holds the matches of the most recent search.
type Index struct {
	pattern string
	literal bool
	matches []Match
	current int
}

// New creates an empty index.
func New() *Index {
	return &Index{current: -1}
}

// Run replaces the match set with every match of pattern in lines, in
// top-to-bottom, left-to-right order. The current index is 0 if any match was
// found, else -1. An empty pattern clears the index.
func (x *Index) Run(pattern string, lines []string) int {
	x.Reset()
	if pattern == "" {
		return 0
	}
	x.pattern = pattern

	re, err := regexp.Compile(pattern)
	if err != nil {
		x.literal = true
	}
	for i, ln := range lines {
		if x.literal {
			x.matches = append(x.matches, findLiteral(i, ln, pattern)...)
		} else {
			x.matches = append(x.matches, findRegexp(i, ln, re)...)
		}
	}
	if len(x.matches) > 0 {
		x.current = 0
	}
	return len(x.matches)
}

func findRegexp(line int, text string, re *regexp.Regexp) []Match {
	var out []Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		col := utf8.RuneCountInString(text[:loc[0]])
		out = append(out, Match{
			Line: line,
			Col:  col,
			Len:  utf8.RuneCountInString(text[loc[0]:loc[1]]),
		})
	}
	return out
}

func findLiteral(line int, text, pattern string) []Match {
	var out []Match
	n := utf8.RuneCountInString(pattern)
	offset := 0
	for {
		i := strings.Index(text[offset:], pattern)
		if i < 0 {
			return out
		}
		start := offset + i
		out = append(out, Match{
			Line: line,
			Col:  utf8.RuneCountInString(text[:start]),
			Len:  n,
		})
		offset = start + len(pattern)
	}
}

// Next advances to the following match, wrapping to the first.
func (x *Index) Next() (Match, bool) {
	if len(x.matches) == 0 {
		return Match{}, false
	}
	x.current = (x.current + 1) % len(x.matches)
	return x.matches[x.current], true
}

// Previous retreats to the preceding match, wrapping to the last.
func (x *Index) Previous() (Match, bool) {
	if len(x.matches) == 0 {
		return Match{}, false
	}
	n := len(x.matches)
	x.current = ((x.current-1)%n + n) % n
	return x.matches[x.current], true
}

// Current returns the selected match.
func (x *Index) Current() (Match, bool) {
	if x.current < 0 || x.current >= len(x.matches) {
		return Match{}, false
	}
	return x.matches[x.current], true
}

// Count returns the number of matches.
func (x *Index) Count() int { return len(x.matches) }

// Index returns the current match index, or -1.
func (x *Index) Index() int { return x.current }

// Pattern returns the pattern of the last search.
func (x *Index) Pattern() string { return x.pattern }

// Literal reports whether the last pattern was matched literally because it
// did not compile as a regular expression.
func (x *Index) Literal() bool { return x.literal }

// Active reports whether a search pattern is set.
func (x *Index) Active() bool { return x.pattern != "" }

// Reset clears the pattern and all matches.
func (x *Index) Reset() {
	x.pattern = ""
	x.literal = false
	x.matches = nil
	x.current = -1
}
