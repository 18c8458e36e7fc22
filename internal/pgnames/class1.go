// File: internal/pgnames/class1.go
// Project: Terminal Velocity
// Description: Class 1 sector-name codec (single nested prefix/infix/suffix run)
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

// Class 1 is a single nested run, not a two-axis lattice: the prefix steps
// outermost, one or two infixes step in the middle, and the suffix steps
// innermost through whichever sequence the last infix's category selects
// (spec.md §4.4).

// c1ArbitraryIndexOffset is the documented "magic" constant that aligns a
// freshly-computed offset with the catalogued starting point of the Class
// 1 run. The reference data module's value did not survive retrieval (see
// DESIGN.md); 0 is used rather than an invented number, which keeps this
// offset a documented no-op instead of a fabricated one.
const c1ArbitraryIndexOffset = 0

// c1XRowWidth and c1YStackHeight divide a linear Class 1 index into
// (x, y, z), per spec.md §4.4: 89 sectors per X row, 16 per Y stack.
const (
	c1XRowWidth    = 89
	c1YStackHeight = 16
)

// class1Cache holds the immutable offset tables a Class 1 lookup needs:
// the cumulative starting index of every prefix in the full run.
type class1Cache struct {
	prefixOffset map[string]int
	totalSpan    int // sum of every prefix's run length, one full sweep
}

func newClass1Cache() *class1Cache {
	c := &class1Cache{prefixOffset: make(map[string]int, len(prefixes))}
	offset := 0
	for _, p := range prefixes {
		c.prefixOffset[p] = offset
		offset += prefixRunLength(p)
	}
	c.totalSpan = offset
	return c
}

// infixRunLength returns the number of suffix-steps a single infix spends
// before the run advances to the next infix in its prefix's sequence. The
// reference override table for this did not survive retrieval (see
// DESIGN.md); every infix uses the same default as a prefix's run length.
func infixRunLength(string) int { return cxPrefixLengthDefault }

// c1DecodeWithinPrefix maps a residual offset (0 <= residual < the
// prefix's run length) to an (infix, suffix) pair, walking the prefix's
// infix sequence and, within each infix, its opposite-category suffix
// sequence. Grounded on original_source/pgnames.py:c1_get_single_run.
func c1DecodeWithinPrefix(prefix string, residual int) (infix, suffix string, ok bool) {
	infixSeq := c1InfixSeqForPrefix(prefix)
	if len(infixSeq) == 0 {
		return "", "", false
	}
	acc := 0
	for _, inf := range infixSeq {
		suffixSeq := c1SuffixSeqForInfix(inf)
		span := infixRunLength(inf)
		if span > len(suffixSeq) {
			span = len(suffixSeq)
		}
		if residual < acc+span {
			return inf, suffixSeq[residual-acc], true
		}
		acc += span
	}
	if acc == 0 {
		return "", "", false
	}
	// Residual overran every infix's combined span within this prefix's
	// window (possible once run-length overrides diverge from the
	// default); wrap once rather than erroring on a merely long residual.
	return c1DecodeWithinPrefix(prefix, residual%acc)
}

// c1EncodeWithinPrefix is the inverse of c1DecodeWithinPrefix: given an
// infix known to belong to prefix's infix sequence and a suffix known to
// belong to that infix's suffix sequence, returns the residual offset
// within the prefix's run. Grounded on
// original_source/pgnames.py:c1_get_offset.
func c1EncodeWithinPrefix(prefix, infix, suffix string) (residual int, ok bool) {
	infixSeq := c1InfixSeqForPrefix(prefix)
	infixIdx := indexOf(infixSeq, infix)
	if infixIdx < 0 {
		return 0, false
	}
	acc := 0
	for _, inf := range infixSeq[:infixIdx] {
		suffixSeq := c1SuffixSeqForInfix(inf)
		span := infixRunLength(inf)
		if span > len(suffixSeq) {
			span = len(suffixSeq)
		}
		acc += span
	}
	suffixSeq := c1SuffixSeqForInfix(infix)
	suffixIdx := indexOf(suffixSeq, suffix)
	if suffixIdx < 0 {
		return 0, false
	}
	return acc + suffixIdx, true
}

// decode maps a linear Class 1 index to its three fragments [prefix,
// infix, suffix] (a Class 1b name). Grounded on
// original_source/pgnames.py:c1_get_single_run plus the offset tables
// _construct_c1_offsets builds.
func (c *class1Cache) decode(index int) (frags []string, err error) {
	n := c.totalSpan
	if n == 0 {
		return nil, ErrInvariantViolated
	}
	idx := (index - c1ArbitraryIndexOffset) % n
	if idx < 0 {
		idx += n
	}
	prefixIdx := idx / cxPrefixLengthDefault
	if prefixIdx >= len(prefixes) {
		prefixIdx %= len(prefixes)
	}
	prefix := prefixes[prefixIdx]
	residual := idx - c.prefixOffset[prefix]
	if residual < 0 || residual >= prefixRunLength(prefix) {
		return nil, ErrInvariantViolated
	}
	infix, suffix, ok := c1DecodeWithinPrefix(prefix, residual)
	if !ok {
		return nil, ErrInvariantViolated
	}
	return []string{prefix, infix, suffix}, nil
}

// encode is the reverse of decode: given a validated Class 1b fragment
// list [prefix, infix, suffix], returns its linear index.
func (c *class1Cache) encode(frags []string) (int, error) {
	if len(frags) != 3 {
		return 0, ErrNotSupported
	}
	prefix, infix, suffix := frags[0], frags[1], frags[2]
	base, ok := c.prefixOffset[prefix]
	if !ok {
		return 0, ErrUnparseable
	}
	residual, ok := c1EncodeWithinPrefix(prefix, infix, suffix)
	if !ok {
		return 0, ErrUnparseable
	}
	return base + residual + c1ArbitraryIndexOffset, nil
}

// sectorFromIndex maps a linear Class 1 index to (x, y, z), per spec.md
// §4.4's fixed row/slice widths.
func sectorFromIndex(index int) (x, y, z int) {
	x = index % c1XRowWidth
	rest := index / c1XRowWidth
	y = rest % c1YStackHeight
	z = rest / c1YStackHeight
	return
}

// indexFromSector is the inverse of sectorFromIndex.
func indexFromSector(x, y, z int) int {
	return (z*c1YStackHeight+y)*c1XRowWidth + x
}

// nameOfSector renders the Class 1b name for (x, y, z).
func (c *class1Cache) nameOfSector(x, y, z int) ([]string, error) {
	return c.decode(indexFromSector(x, y, z))
}

// sectorOfName recovers (x, y, z) from a validated Class 1b fragment list.
func (c *class1Cache) sectorOfName(frags []string) (x, y, z int, err error) {
	idx, err := c.encode(frags)
	if err != nil {
		return 0, 0, 0, err
	}
	x, y, z = sectorFromIndex(idx)
	return x, y, z, nil
}
