package textio

import (
	"fmt"
	"regexp"
)

// Split tokenizes text on every match of pattern (RE2 syntax) and returns
// the segments between matches, in order and without the delimiters.
//
// A leading empty segment (text starting with a match) is kept; a trailing
// empty segment is dropped, and an empty text yields an empty result:
//
//	Split(",a,,b,", ",") // → ["" "a" "" "b"]
//	Split("", ",")       // → []
func Split(text, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return SplitRegexp(text, re), nil
}

// SplitRegexp is [Split] with a precompiled expression.
func SplitRegexp(text string, re *regexp.Regexp) []string {
	if text == "" {
		return []string{}
	}
	parts := re.Split(text, -1)
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}
