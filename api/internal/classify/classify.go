// Package classify splits a token list into numeric and single-letter tokens.
package classify

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Result slices are never nil so they encode as [] rather than null.
type Result struct {
	Numbers          []string
	Alphabets        []string
	HighestLowercase []string
}

// Classify keeps input order in Numbers and Alphabets; HighestLowercase holds
// at most one letter.
func Classify(tokens []string) Result {
	res := Result{
		Numbers:          []string{},
		Alphabets:        []string{},
		HighestLowercase: []string{},
	}

	var highest byte
	for _, tok := range tokens {
		if IsNumeric(tok) {
			res.Numbers = append(res.Numbers, tok)
		}
		if IsLetter(tok) {
			res.Alphabets = append(res.Alphabets, tok)
			if c := tok[0]; c >= 'a' && c <= 'z' && c > highest {
				highest = c
			}
		}
	}
	if highest != 0 {
		res.HighestLowercase = append(res.HighestLowercase, string(highest))
	}
	return res
}

// IsNumeric reports whether s parses as a float after trimming surrounding
// whitespace. Blank strings and NaN do not count; overflowing values do.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return !math.IsNaN(f)
}

// IsLetter reports whether s is exactly one ASCII letter.
func IsLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
