// File: internal/pgnames/class2.go
// Project: Terminal Velocity
// Description: Class 2 sector-name codec (two independent two-fragment words)
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

// A Class 2 sector name is rendered "{p0}{s0} {p2}{s2}": two independent
// words, each a (prefix, suffix) pair, separated by a space. Along the X
// axis a name advances through a fixed 64-state run that nudges each
// word's suffix cursor independently; along Y and Z, a small table taken
// directly from the reference data module selects the starting word pair
// for each row's run.

// c2RunStates are the (df0, df2) index deltas applied to the two words'
// cumulative suffix cursors as a name's X-run advances one state per step,
// cycling through all 64 combinations of the two 3-bit sub-counters.
// Lifted verbatim from original_source/pgdata.py: c2_run_states.
var c2RunStates = [64][2]int{
	{0, 0}, {1, 0}, {0, 1}, {1, 1},
	{2, 0}, {3, 0}, {2, 1}, {3, 1},
	{0, 2}, {1, 2}, {0, 3}, {1, 3},
	{2, 2}, {3, 2}, {2, 3}, {3, 3},
	{4, 0}, {5, 0}, {4, 1}, {5, 1},
	{6, 0}, {7, 0}, {6, 1}, {7, 1},
	{4, 2}, {5, 2}, {4, 3}, {5, 3},
	{6, 2}, {7, 2}, {6, 3}, {7, 3},
	{0, 4}, {1, 4}, {0, 5}, {1, 5},
	{2, 4}, {3, 4}, {2, 5}, {3, 5},
	{0, 6}, {1, 6}, {0, 7}, {1, 7},
	{2, 6}, {3, 6}, {2, 7}, {3, 7},
	{4, 4}, {5, 4}, {4, 5}, {5, 5},
	{6, 4}, {7, 4}, {6, 5}, {7, 5},
	{4, 6}, {5, 6}, {4, 7}, {5, 7},
	{6, 6}, {7, 6}, {6, 7}, {7, 7},
}

// c2RunStatesCum{0,2} are the prefix sums of c2RunStates within a single
// 64-state block (cum[0] is always 0); c2RunBlockSum{0,2} is the total
// delta accumulated over one full block. Together they let
// c2CumulativeOffset compute the cursor position at any x in O(1) instead
// of walking x steps one at a time.
var (
	c2RunStatesCum0 [64]int
	c2RunStatesCum2 [64]int
	c2RunBlockSum0  int
	c2RunBlockSum2  int
)

func init() {
	var s0, s2 int
	for i, d := range c2RunStates {
		c2RunStatesCum0[i] = s0
		c2RunStatesCum2[i] = s2
		s0 += d[0]
		s2 += d[1]
	}
	c2RunBlockSum0, c2RunBlockSum2 = s0, s2
}

// c2CumulativeOffset returns the total delta accumulated on each word's
// cursor after x steps along a Class 2 run. x may be negative; Go's %
// truncates toward zero, so block is adjusted down and state renormalized
// into [0,64) to match, the same treatment class1.go's decode gives its
// negative indices.
func c2CumulativeOffset(x int) (int, int) {
	block, state := x/64, x%64
	if state < 0 {
		state += 64
		block--
	}
	return block*c2RunBlockSum0 + c2RunStatesCum0[state],
		block*c2RunBlockSum2 + c2RunStatesCum2[state]
}

// c2PositionCandidate holds the two alternative prefixes the reference data
// offers for one axis of one Z row; only one of the two generally has a
// populated y-mapping and is therefore usable.
type c2PositionCandidate struct{ A, B string }

type c2PositionRow struct{ Word0, Word2 c2PositionCandidate }

// c2PositionsY0Z enumerates, per Z value (its index in this slice), the
// candidate starting prefixes for each of the two words. Lifted verbatim
// from original_source/pgdata.py: c2_positions_y0z.
var c2PositionsY0Z = []c2PositionRow{
	{c2PositionCandidate{"Eo", "Dry"}, c2PositionCandidate{"Th", "Eu"}},
	{c2PositionCandidate{"Hyp", "Ph"}, c2PositionCandidate{"Th", "Eu"}},
	{c2PositionCandidate{"Eo", "Dry"}, c2PositionCandidate{"Ae", "Ai"}},
	{c2PositionCandidate{"Hyp", "Ph"}, c2PositionCandidate{"Ae", "Ai"}},
	{c2PositionCandidate{"Pl", "Pr"}, c2PositionCandidate{"Th", "Eu"}},
	{c2PositionCandidate{"Bl", "By"}, c2PositionCandidate{"Th", "Eu"}},
	{c2PositionCandidate{"Pl", "Pr"}, c2PositionCandidate{"Ae", "Ai"}},
	{c2PositionCandidate{"Bl", "By"}, c2PositionCandidate{"Ae", "Ai"}},
	{c2PositionCandidate{"Eo", "Dry"}, c2PositionCandidate{"Ao", "Au"}},
	{c2PositionCandidate{"Hyp", "Ph"}, c2PositionCandidate{"Ao", "Au"}},
	{c2PositionCandidate{"Eo", "Dry"}, c2PositionCandidate{"Ch", "Br"}},
	{c2PositionCandidate{"Hyp", "Ph"}, c2PositionCandidate{"Ch", "Br"}},
	{c2PositionCandidate{"Pl", "Pr"}, c2PositionCandidate{"Ao", "Au"}},
	{c2PositionCandidate{"Bl", "By"}, c2PositionCandidate{"Ao", "Au"}},
	{c2PositionCandidate{"Pl", "Pr"}, c2PositionCandidate{"Ch", "Br"}},
	{c2PositionCandidate{"Bl", "By"}, c2PositionCandidate{"Ch", "Br"}},
	{c2PositionCandidate{"Ch", "Py"}, c2PositionCandidate{"Th", "Eu"}},
	{c2PositionCandidate{"Syr", "My"}, c2PositionCandidate{"Th", "Eu"}},
}

// c2YMappingOffset shifts a signed sector Y coordinate into the 0-based
// index of the y-mapping tables below.
const c2YMappingOffset = 3

// c2YEntry names the prefix and the local suffix-sequence index a word
// starts at for one Y row; a zero-value entry (empty Prefix) marks "no
// sector modelled here".
type c2YEntry struct {
	Prefix    string
	SuffixIdx int
}

// c2Word1YMapping and c2Word2YMapping give, per candidate Z-row anchor
// prefix, the six starting (prefix, suffix index) pairs for Y in
// [-c2YMappingOffset, 6-c2YMappingOffset). Lifted verbatim from
// original_source/pgdata.py: c2_word1_y_mapping, c2_word2_y_mapping.
var c2Word1YMapping = map[string][]c2YEntry{
	"Eo":  {{"Th", 1}, {"Eo", 0}, {"Eo", 0}, {"Eo", 1}, {"Eo", 1}, {"Oo", 0}},
	"Dry": {{"Tr", 1}, {"Dry", 0}, {"Dry", 0}, {"Dry", 1}, {"Dry", 1}, {"Ou", 0}},
	"Hyp": {{"Sch", 0}, {"Sch", 1}, {"Sch", 1}, {"Hyp", 0}, {"Hyp", 0}, {"Syst", 0}},
	"Ph":  {},
	"Pl":  {{"", 1}, {"Fly", 0}, {"Fly", 0}, {"Pl", 0}, {"Pl", 0}, {"", 0}},
	"Pr":  {{"Au", 1}, {"Pr", 0}, {"Pr", 0}, {"Pr", 1}, {"Pr", 1}, {"Hyph", 0}},
	"Bl":  {{"Tyr", 1}, {"Bl", 0}, {"Bl", 0}, {"Bl", 1}, {"Bl", 1}, {"Cry", 0}},
	"By":  {{"Gr", 0}, {"Gr", 1}, {"Gr", 1}, {"By", 0}, {"By", 0}, {"By", 1}},
	"Ch":  {},
	"Py":  {},
	"Syr": {},
	"My":  {},
}

var c2Word2YMapping = map[string][]c2YEntry{
	"Th": {},
	"Eu": {},
	"Ae": {},
	"Ai": {{"Phr", 1}, {"Phr", 0}, {"Phr", 1}, {"Ai", 0}, {"Ai", 1}, {"Ai", 0}},
	"Ao": {{"Fly", 1}, {"Fly", 0}, {"Fly", 1}, {"Fl", 0}, {"Scr", 0}, {"Fl", 0}},
	"Au": {{"Pr", 1}, {"Pr", 0}, {"Pr", 1}, {"Fr", 0}, {"Au", 1}, {"Fr", 0}},
	"Ch": {},
	"Br": {},
}

// c2Overrides patches known-bad (prefix, suffix) combinations produced by
// the naive run model onto the combination the reference actually uses.
// Lifted verbatim from original_source/pgdata.py: c2_overrides.
var c2Overrides = map[string]map[string][2]string{
	"Eo": {
		"rn": {"Oo", "b"},
		"ct": {"Oo", "scs"},
	},
}

// c2Word1SuffixStarts and c2Word2SuffixStarts are carried over from the
// reference data module for parity but are not consulted by this port's
// run model (c2_get_name's active code path never reads them either —
// they read as an earlier or alternate approach to the same start-point
// problem c2PositionsY0Z/c2Word{1,2}YMapping solve).
var c2Word1SuffixStarts = map[string][]string{
	"Th": {"", "aae"}, "Eo": {"ch", "rl"}, "Oo": {"rb", ""},
	"Tr": {}, "Dry": {}, "Ou": {},
	"Sch": {"uae", "eau"}, "Hyp": {"iae", ""}, "Syst": {"ua", ""},
	"Ph":  {},
	"Fly": {"ua", ""}, "Pl": {"io", ""},
	"Au": {}, "Pr": {"ua", "o"},
	"Tyr": {"", "e"}, "Bl": {"aa", "au"}, "Cry": {"io", ""},
	"Gr": {"eia", "eae"}, "By": {"oi", "ao"},
	"Ch": {}, "Py": {}, "Syr": {}, "My": {},
}

var c2Word2SuffixStarts = map[string][]string{
	"Th": {"oe", "ooe"}, "Eo": {"ch", "rl"}, "Oo": {"rb", ""},
	"Ai": {"ck", "hn"},
	"Pr": {"ua", "e"}, "Au": {},
	"Phr": {"io", "ee"},
	"Fly": {"ua", "e"}, "Scr": {"oe", ""},
	"Fl": {"aae"},
}

// c2Word is one resolved (prefix, suffix) half of a Class 2 name.
type c2Word struct {
	Prefix string
	Suffix string
}

// class2Cache is the immutable set of caches built once by newClass2Cache
// and held by a *Codec thereafter: the flat prefix-run list (every
// (prefix, suffix) combination in catalogue order) and the (z, y)-indexed
// grid of starting cursor positions into that list.
type class2Cache struct {
	run       []c2Word       // flat prefix-run list, canonical catalogue order
	runOffset map[string]int // prefix -> its first index in run
	// startGrid[z][y], keyed by the signed sector y, gives the (word0, word2)
	// starting cursor positions for that row's X-run; a cell is absent (zero
	// value, ok=false) when the row is not modelled.
	startGrid map[int]map[int][2]int
}

func newClass2Cache() *class2Cache {
	c := &class2Cache{runOffset: make(map[string]int, len(prefixes))}
	offset := 0
	for _, p := range prefixes {
		c.runOffset[p] = offset
		seq := c2SuffixSeqForPrefix(p)
		for _, s := range seq {
			c.run = append(c.run, c2Word{p, s})
		}
		offset += len(seq)
	}
	c.startGrid = make(map[int]map[int][2]int, len(c2PositionsY0Z))
	for z, row := range c2PositionsY0Z {
		anchor0, ok0 := pickC2Anchor(row.Word0, c2Word1YMapping)
		anchor2, ok2 := pickC2Anchor(row.Word2, c2Word2YMapping)
		if !ok0 || !ok2 {
			continue // not modelled at this Z: see DESIGN.md
		}
		col := make(map[int][2]int, 6)
		entries0 := c2Word1YMapping[anchor0]
		entries2 := c2Word2YMapping[anchor2]
		for yIdx := 0; yIdx < 6; yIdx++ {
			e0, e2 := entries0[yIdx], entries2[yIdx]
			if e0.Prefix == "" || e2.Prefix == "" {
				continue
			}
			pos0 := c.runOffset[e0.Prefix] + e0.SuffixIdx
			pos2 := c.runOffset[e2.Prefix] + e2.SuffixIdx
			col[yIdx-c2YMappingOffset] = [2]int{pos0, pos2}
		}
		if len(col) > 0 {
			c.startGrid[z] = col
		}
	}
	return c
}

// pickC2Anchor chooses whichever of a row's two candidate prefixes has a
// populated y-mapping, preferring the first (per original_source's
// apparent preference order).
func pickC2Anchor(cand c2PositionCandidate, mapping map[string][]c2YEntry) (string, bool) {
	if len(mapping[cand.A]) > 0 {
		return cand.A, true
	}
	if len(mapping[cand.B]) > 0 {
		return cand.B, true
	}
	return "", false
}

func (c *class2Cache) wordAt(pos int) c2Word {
	n := len(c.run)
	pos %= n
	if pos < 0 {
		pos += n
	}
	return c.run[pos]
}

// applyOverride patches a resolved word against c2Overrides.
func applyOverride(w c2Word) c2Word {
	if patches, ok := c2Overrides[w.Prefix]; ok {
		if patch, ok := patches[w.Suffix]; ok {
			return c2Word{patch[0], patch[1]}
		}
	}
	return w
}

// nameAtRow resolves the four fragments at x steps along the row rooted
// at (pos0, pos2).
func (c *class2Cache) nameAtRow(pos0, pos2, x int) []string {
	d0, d2 := c2CumulativeOffset(x)
	w0 := applyOverride(c.wordAt(pos0 + d0))
	w2 := applyOverride(c.wordAt(pos2 + d2))
	return []string{w0.Prefix, w0.Suffix, w2.Prefix, w2.Suffix}
}

// c2ModelledXSpan bounds the reverse-lookup walk along a Class 2 row:
// sectorOfName tries x in [0, c2ModelledXSpan) on each modelled row, so a
// name that nameOfSector renders only at an x outside that range (including
// any negative x) is not found.
const c2ModelledXSpan = 8192

// nameOfSector renders the Class 2 name for (x, y, z), or reports
// ErrNotFound when (y, z) falls outside the modelled start-point grid.
func (c *class2Cache) nameOfSector(x, y, z int) ([]string, error) {
	col, ok := c.startGrid[z]
	if !ok {
		return nil, ErrNotFound
	}
	start, ok := col[y]
	if !ok {
		return nil, ErrNotFound
	}
	return c.nameAtRow(start[0], start[1], x), nil
}

// sectorOfName recovers (x, y, z) from a tokenised Class 2 fragment
// list [p0, s0, p2, s2], or reports ErrNotFound when no modelled row's
// X-run produces that exact fragment tuple.
func (c *class2Cache) sectorOfName(frags []string) (x, y, z int, err error) {
	target := [4]string{frags[0], frags[1], frags[2], frags[3]}
	for zVal, col := range c.startGrid {
		for yVal, start := range col {
			for x := 0; x < c2ModelledXSpan; x++ {
				got := c.nameAtRow(start[0], start[1], x)
				if got[0] == target[0] && got[1] == target[1] && got[2] == target[2] && got[3] == target[3] {
					return x, yVal, zVal, nil
				}
			}
		}
	}
	return 0, 0, 0, ErrNotFound
}
