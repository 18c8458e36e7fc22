// File: internal/pgnames/fragment.go
// Project: Terminal Velocity
// Description: Procedural sector-name fragment catalogue
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package pgnames decodes and encodes the procedurally generated star-sector
// names used by the galaxy simulation: the three-fragment and four-fragment
// "Class 1"/"Class 2" sector names, and the AB-C mass-code suffix that
// places a star within its sector.
//
// The package is pure and allocation-light after NewCodec: the fragment
// catalogue and its override maps never mutate, and every exported
// operation on a *Codec is safe for concurrent use by any number of
// goroutines once construction has completed.
package pgnames

// rawFragments is the closed, ordered catalogue of every phoneme fragment
// used in procedural sector names. The first prefixCount entries are the
// prefix set (fragments that may start a sector name); the remainder are
// the raw material for the suffix and infix sequences below. A fragment
// may appear in more than one partition: membership is by identity within
// a partition's slice, not by string content.
//
// Order matters twice over: it is the catalogue's own enumeration order
// (used to walk "next prefix" and to build the Class 2 prefix-run cache),
// and — sorted separately by descending length — the tie-break order for
// the tokeniser's greedy longest-match.
var rawFragments = []string{
	"Th", "Eo", "Oo", "Eu", "Tr", "Sly", "Dry", "Ou",
	"Tz", "Phl", "Ae", "Sch", "Hyp", "Syst", "Ai", "Kyl",
	"Phr", "Eae", "Ph", "Fl", "Ao", "Scr", "Shr", "Fly",
	"Pl", "Fr", "Au", "Pry", "Pr", "Hyph", "Py", "Chr",
	"Phyl", "Tyr", "Bl", "Cry", "Gl", "Br", "Gr", "By",
	"Aae", "Myc", "Gyr", "Ly", "Myl", "Lych", "Myn", "Ch",
	"Myr", "Cl", "Rh", "Wh", "Pyr", "Cr", "Syn", "Str",
	"Syr", "Cy", "Wr", "Hy", "My", "Sty", "Sc", "Sph",
	"Spl", "A", "Sh", "B", "C", "D", "Sk", "Io",
	"Dr", "E", "Sl", "F", "Sm", "G", "H", "I",
	"Sp", "J", "Sq", "K", "L", "Pyth", "M", "St",
	"N", "O", "Ny", "Lyr", "P", "Sw", "Thr", "Lys",
	"Q", "R", "S", "T", "Ea", "U", "V", "W",
	"Schr", "X", "Ee", "Y", "Z", "Ei", "Oe",

	"ll", "ss", "b", "c", "d", "f", "dg", "g", "ng", "h", "j", "k", "l", "m", "n",
	"mb", "p", "q", "gn", "th", "r", "s", "t", "ch", "tch", "v", "w", "wh",
	"ck", "x", "y", "z", "ph", "sh", "ct", "wr", "o", "ai", "a", "oi", "ea",
	"ie", "u", "e", "ee", "oo", "ue", "i", "oa", "au", "ae", "oe", "scs",
	"wsy", "vsky", "sms", "dst", "rb", "nts", "rd", "rld", "lls", "rgh",
	"rg", "hm", "hn", "rk", "rl", "rm", "cs", "wyg", "rn", "hs", "rbs", "rp",
	"tts", "wn", "ms", "rr", "mt", "rs", "cy", "rt", "ws", "lch", "my", "ry",
	"nks", "nd", "sc", "nk", "sk", "nn", "ds", "sm", "sp", "ns", "nt", "dy",
	"st", "rrs", "xt", "nz", "sy", "xy", "rsch", "rphs", "sts", "sys", "sty",
	"tl", "tls", "rds", "nch", "rns", "ts", "wls", "rnt", "tt", "rdy", "rst",
	"pps", "tz", "sks", "ppy", "ff", "sps", "kh", "sky", "lts", "wnst", "rth",
	"ths", "fs", "pp", "ft", "ks", "pr", "ps", "pt", "fy", "rts", "ky",
	"rshch", "mly", "py", "bb", "nds", "wry", "zz", "nns", "ld", "lf",
	"gh", "lks", "sly", "lk", "rph", "ln", "bs", "rsts", "gs", "ls", "vvy",
	"lt", "rks", "qs", "rps", "gy", "wns", "lz", "nth", "phs", "io", "oea",
	"aa", "ua", "eia", "ooe", "iae", "oae", "ou", "uae", "ao", "eae", "aea",
	"ia", "eou", "aei", "uia", "aae", "eau", "oad",
}

// prefixCount is the size of the prefix partition: the fragments that may
// start a sector name.
const prefixCount = 111

// prefixes is the ~111-entry prefix set, in catalogue order.
var prefixes = append([]string(nil), rawFragments[:prefixCount]...)

// prefixIndex maps a prefix fragment to its position in prefixes, for O(1)
// "next prefix" wraparound and run-offset lookups.
var prefixIndex = buildIndex(prefixes)

// Suffix sequence 1: vowel-ish trailing fragments (the default suffix
// sequence for both Class 1 and Class 2).
var suffixSeq1 = []string{
	"oe", "io", "oea", "oi", "aa", "ua", "eia", "ae",
	"ooe", "oo", "a", "ue", "ai", "e", "iae", "oae",
	"ou", "uae", "i", "ao", "au", "o", "eae", "u",
	"aea", "ia", "ie", "eou", "aei", "ea", "uia", "oa",
	"aae", "eau", "ee",
}

// Suffix sequence 2: consonant-ish trailing fragments, selected by the
// prefix-suffix override map for Class 2 and by infix category for Class 1.
var suffixSeq2 = []string{
	"b", "scs", "wsy", "c", "d", "vsky", "f", "sms",
	"dst", "g", "rb", "h", "nts", "ch", "rd", "rld",
	"k", "lls", "ck", "rgh", "l", "rg", "m", "n",
	"hm", "p", "hn", "rk", "q", "rl", "r", "rm",
	"s", "cs", "wyg", "rn", "ct", "t", "hs", "rbs",
	"rp", "tts", "v", "wn", "ms", "w", "rr", "mt",
	"x", "rs", "cy", "y", "rt", "z", "ws", "lch",
	"my", "ry", "nks",
}

// Suffix sequence 3: the heaviest consonant-ish trailing fragments. Class 2
// never selects this sequence (its override map only ever points at
// sequence 2), and Class 1 draws only from sequences 1 and 2 (c1Suffixes);
// it is carried in cxSuffixes as reference data.
var suffixSeq3 = []string{
	"nd", "sc", "ng", "sh", "nk",
	"sk", "nn", "ds", "sm", "sp", "ns",
	"nt",
	"dy", "ss", "st", "rrs", "xt", "nz", "sy", "xy",
	"rsch", "rphs", "sts", "sys", "sty", "th", "tl", "tls",
	"rds", "nch", "rns", "ts", "wls", "rnt", "tt", "rdy",
	"rst", "pps", "tz", "tch", "sks", "ppy", "ff", "sps",
	"kh", "sky", "ph", "lts",
	"wnst",
	"rth", "ths", "fs", "pp", "ft", "ks", "pr", "ps",
	"pt", "fy", "rts", "ky", "rshch", "mly", "py", "bb",
	"nds", "wry", "zz", "nns", "ld", "lf", "gh", "lks",
	"sly", "lk", "ll", "rph", "ln", "bs", "rsts", "gs",
	"ls", "vvy", "lt", "rks", "qs", "rps", "gy", "wns",
	"lz", "nth", "phs",
}

// cxSuffixes indexes suffix sequences the way the source data module does:
// slot 0 is unused (nil), 1..3 are sequences 1..3.
var cxSuffixes = [][]string{nil, suffixSeq1, suffixSeq2, suffixSeq3}

// c1Suffixes is the subset of suffix sequences Class 1 draws from: the
// opposite-category suffix is always either the vowel-ish sequence 1 or
// the consonant-ish sequence 2.
var c1Suffixes = [][]string{nil, suffixSeq1, suffixSeq2}

// Vowel-ish infixes (Class 1 middle fragments, speculative per the source).
// "oad" is not present in the retrieved original_source/pgdata.py (itself
// an acknowledged partial capture of the reference data module, see
// DESIGN.md) but is required for the tokeniser to reproduce spec.md §8's
// contractual "Froadue" -> 3-fragment example; added here rather than left
// out, with the gap recorded rather than silently worked around.
var infixSeq1 = []string{
	"o", "ai", "a", "oi", "ea", "ie", "u", "e",
	"ee", "oo", "ue", "i", "oa", "au", "ae", "oe", "oad",
}

// Consonant-ish infixes (Class 1 middle fragments, speculative per the source).
var infixSeq2 = []string{
	"ll", "ss", "b", "c", "d", "f", "dg", "g",
	"ng", "h", "j", "k", "l", "m", "n", "mb",
	"p", "q", "gn", "th", "r", "s", "t", "ch",
	"tch", "v", "w", "wh", "ck", "x", "y", "z",
	"ph", "sh", "ct", "wr",
}

var c1Infixes = [][]string{nil, infixSeq1, infixSeq2}

// c1InfixRolloverOverrides documents infixes whose sequential successor is
// not simply "next in infixSeq2" in the canonical reference data. Carried
// verbatim from the source's data module; the single-infix Class 1b
// decode in this port never needs to roll an infix over (see class1.go),
// so this table is data only, consulted by nothing yet — kept for parity
// with the reference catalogue rather than silently dropped.
var c1InfixRolloverOverrides = []string{"q"}

// c2PrefixSuffixOverride selects, for Class 2 words whose prefix is a key
// of this map, suffix sequence 2 instead of the default sequence 1.
var c2PrefixSuffixOverride = map[string]int{
	"Eo": 2, "Oo": 2, "Eu": 2,
	"Ou": 2, "Ae": 2, "Ai": 2,
	"Eae": 2, "Ao": 2, "Au": 2,
}

// c1PrefixInfixOverride selects, for Class 1 names whose prefix is a key of
// this map, the consonant-ish infix sequence (2) as the first infix instead
// of the default vowel-ish sequence (1).
var c1PrefixInfixOverride = map[string]int{
	"Eo": 2, "Oo": 2, "Eu": 2, "Ou": 2,
	"Ae": 2, "Ai": 2, "Eae": 2, "Ao": 2,
	"Au": 2, "Aae": 2, "A": 2, "Io": 2,
	"E": 2, "I": 2, "O": 2, "Ea": 2,
	"U": 2, "Ee": 2, "Ei": 2, "Oe": 2,
}

// cxPrefixLengthOverrides overrides the default per-prefix run length
// (cxPrefixLengthDefault) for specific prefixes. The reference data module,
// as retrieved, does not carry this table (see DESIGN.md); every prefix
// therefore uses the default.
var cxPrefixLengthOverrides = map[string]int{}

// cxPrefixLengthDefault is the default number of consecutive Class 1
// x-steps spent on one prefix before it advances (spec.md §4.4, §9).
const cxPrefixLengthDefault = 35

// cxPrefixTotalRunLength is the reference data module's
// cx_prefix_total_run_length, lifted verbatim (spec.md §9). Nothing in this
// package consults it: this port's Class 1 sweep, class1Cache.totalSpan, is
// len(prefixes) * cxPrefixLengthDefault = 111 * 35 = 3885.
const cxPrefixTotalRunLength = 3037

func buildIndex(frags []string) map[string]int {
	m := make(map[string]int, len(frags))
	for i, f := range frags {
		if _, ok := m[f]; !ok {
			m[f] = i
		}
	}
	return m
}

// indexOf returns the position of frag in list, or -1.
func indexOf(list []string, frag string) int {
	for i, f := range list {
		if f == frag {
			return i
		}
	}
	return -1
}

// isPrefix reports whether frag is a member of the prefix set.
func isPrefix(frag string) bool {
	_, ok := prefixIndex[frag]
	return ok
}

// nextPrefix returns the successor of prefix in the catalogue, wrapping
// around at the end of the prefix set. Grounded on
// original_source/pgnames.py:get_next_prefix.
func nextPrefix(prefix string) string {
	idx, ok := prefixIndex[prefix]
	if !ok {
		return prefixes[0]
	}
	return prefixes[(idx+1)%len(prefixes)]
}

// prefixRunLength returns the number of Class 1 x-steps spent on prefix
// before it advances.
func prefixRunLength(prefix string) int {
	if n, ok := cxPrefixLengthOverrides[prefix]; ok {
		return n
	}
	return cxPrefixLengthDefault
}

// c2SuffixSeqForPrefix returns the suffix sequence a Class 2 word whose
// prefix is p draws from.
func c2SuffixSeqForPrefix(p string) []string {
	idx := 1
	if n, ok := c2PrefixSuffixOverride[p]; ok {
		idx = n
	}
	return cxSuffixes[idx]
}

// c1InfixSeqForPrefix returns the infix sequence the first (outer) infix of
// a Class 1 name whose prefix is p is drawn from.
func c1InfixSeqForPrefix(p string) []string {
	idx := 1
	if n, ok := c1PrefixInfixOverride[p]; ok {
		idx = n
	}
	return c1Infixes[idx]
}

// c1IsVowelInfix reports whether infix belongs to the vowel-ish sequence.
func c1IsVowelInfix(infix string) bool {
	return indexOf(infixSeq1, infix) >= 0
}

// c1SuffixSeqForInfix returns the suffix sequence that follows an infix of
// the given category: the opposite category from the infix itself.
func c1SuffixSeqForInfix(infix string) []string {
	if c1IsVowelInfix(infix) {
		return c1Suffixes[2]
	}
	return c1Suffixes[1]
}
