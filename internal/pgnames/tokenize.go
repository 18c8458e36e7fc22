// File: internal/pgnames/tokenize.go
// Project: Terminal Velocity
// Description: Fragment tokeniser
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

import "strings"

// fragmentsByLength is rawFragments sorted by descending length, stable so
// equal-length fragments keep their catalogue order as the tie-break.
// Grounded on original_source/pgdata.py: cx_fragments.
var fragmentsByLength = sortedByLengthDesc(rawFragments)

func sortedByLengthDesc(frags []string) []string {
	out := append([]string(nil), frags...)
	// Insertion sort: the catalogue is a few hundred entries, run once at
	// package load, and must be stable (ties keep catalogue order).
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i - 1
		for j >= 0 && len(out[j]) < len(v) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = v
	}
	return out
}

// Tokenize splits a sector name into its ordered fragment list by greedy
// longest-match against the catalogue. Spaces are stripped before
// matching, so "Syn oo kio" and "Synoo kio" tokenise identically (a known
// inexactness, spec.md §9 and §4.1). Returns ErrUnparseable when a residual
// substring does not begin with any catalogue fragment.
//
// Grounded on original_source/pgnames.py:get_fragments.
func Tokenize(name string) ([]string, error) {
	s := strings.ReplaceAll(name, " ", "")
	var frags []string
	for len(s) > 0 {
		matched := ""
		for _, f := range fragmentsByLength {
			if strings.HasPrefix(s, f) {
				matched = f
				break
			}
		}
		if matched == "" {
			return nil, ErrUnparseable
		}
		frags = append(frags, matched)
		s = s[len(matched):]
	}
	if len(frags) == 0 {
		return nil, ErrUnparseable
	}
	return frags, nil
}

// FormatName renders an ordered fragment list back into its canonical
// string form: Class 2's four fragments are joined "[p0][s0] [p2][s2]";
// any other length is concatenated with no separator, matching Class 1.
// FormatName is the inverse of Tokenize for any list Tokenize could have
// produced (spec.md §8's round-trip property; SPEC_FULL.md §5).
func FormatName(frags []string) string {
	if len(frags) == 4 && isPrefix(frags[2]) {
		return frags[0] + frags[1] + " " + frags[2] + frags[3]
	}
	return strings.Join(frags, "")
}
