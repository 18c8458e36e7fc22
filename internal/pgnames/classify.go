// File: internal/pgnames/classify.go
// Project: Terminal Velocity
// Description: Sector-name class decision and structural validation
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

// SectorClass is the naming scheme a tokenised sector name follows.
type SectorClass int

const (
	// ClassInvalid marks a fragment list that is not a well-formed
	// sector name under either scheme.
	ClassInvalid SectorClass = iota
	// Class1a is a four-fragment Class 1 name: prefix, two infixes, suffix.
	Class1a
	// Class1b is a three-fragment Class 1 name: prefix, infix, suffix.
	Class1b
	// Class2 is a four-fragment, two-word name: [p0,s0,p2,s2].
	Class2
)

func (c SectorClass) String() string {
	switch c {
	case Class1a:
		return "Class1a"
	case Class1b:
		return "Class1b"
	case Class2:
		return "Class2"
	default:
		return "Invalid"
	}
}

// Classify determines which naming scheme a tokenised fragment list
// follows, by structure alone (spec.md §4.2):
//   - 4 fragments, third is a prefix  -> Class2
//   - 4 fragments, third is not       -> Class1a
//   - 3 fragments                     -> Class1b
//   - anything else                   -> ClassInvalid
//
// Grounded on original_source/pgnames.py:get_sector_class.
func Classify(frags []string) SectorClass {
	switch len(frags) {
	case 4:
		if isPrefix(frags[2]) {
			return Class2
		}
		return Class1a
	case 3:
		return Class1b
	default:
		return ClassInvalid
	}
}

// IsValidName reports whether a tokenised fragment list is not just
// structurally a name of some class, but internally consistent: the
// prefix is a genuine prefix fragment, every infix belongs to the sequence
// the alternation rule allows at its depth, and the suffix is drawn from
// the suffix sequence opposite the final infix's category.
//
// Grounded on original_source/pgnames.py:is_valid_name.
func IsValidName(frags []string) bool {
	switch Classify(frags) {
	case Class2:
		if !isPrefix(frags[0]) || !isPrefix(frags[2]) {
			return false
		}
		if indexOf(c2SuffixSeqForPrefix(frags[0]), frags[1]) < 0 {
			return false
		}
		return indexOf(c2SuffixSeqForPrefix(frags[2]), frags[3]) >= 0
	case Class1b:
		prefix, infix, suffix := frags[0], frags[1], frags[2]
		if !isPrefix(prefix) {
			return false
		}
		if indexOf(c1InfixSeqForPrefix(prefix), infix) < 0 {
			return false
		}
		return indexOf(c1SuffixSeqForInfix(infix), suffix) >= 0
	case Class1a:
		prefix, infix0, infix1, suffix := frags[0], frags[1], frags[2], frags[3]
		if !isPrefix(prefix) {
			return false
		}
		if indexOf(c1InfixSeqForPrefix(prefix), infix0) < 0 {
			return false
		}
		// The inner infix must be the opposite category from the outer.
		var inner []string
		if c1IsVowelInfix(infix0) {
			inner = infixSeq2
		} else {
			inner = infixSeq1
		}
		if indexOf(inner, infix1) < 0 {
			return false
		}
		return indexOf(c1SuffixSeqForInfix(infix1), suffix) >= 0
	default:
		return false
	}
}
