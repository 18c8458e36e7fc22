// File: internal/pgnames/codec.go
// Project: Terminal Velocity
// Description: Top-level procedural name codec dispatcher
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

import (
	"math"
	"regexp"
	"strconv"
)

// Vec3 is a point in galactic space, in light years. internal/pgnames
// defines its own vector type rather than importing internal/models: the
// core is deliberately dependency-free (SPEC_FULL.md §2); callers convert
// to/from models.Vec3 at the boundary.
type Vec3 struct {
	X, Y, Z float64
}

// SectorID is the signed integer triple indexing one 1280 Ly sector.
type SectorID struct {
	X, Y, Z int
}

// Base Ly coordinates of sector (0,0,0), spec.md §3.
const (
	baseX = -65.0
	baseY = -25.0
	baseZ = 215.0
)

// systemNameGrammar is the canonical system-name grammar, lifted verbatim
// from original_source/pgdata.py: pg_system_regex.
var systemNameGrammar = regexp.MustCompile(
	`^(?P<sector>[\w\s]+) (?P<prefix>\w)(?P<centre>\w)-(?P<suffix>\w) (?P<lcode>\w)(?P<number1>\d+)(?:-(?P<number2>\d+))?$`,
)

// Codec is the immutable, concurrency-safe codec context: spec.md §9's
// option (a), a cache-holding object built once by NewCodec and never
// mutated thereafter. Every exported operation is a read-only method.
type Codec struct {
	class2 *class2Cache
	class1 *class1Cache
}

// NewCodec builds a Codec's caches. Per spec.md §5, construction itself is
// not safe for concurrent use; callers must complete NewCodec before
// sharing the result across goroutines, after which every method is pure
// and safe for unlimited concurrent callers.
func NewCodec() (*Codec, error) {
	c2 := newClass2Cache()
	if len(c2.run) == 0 {
		return nil, ErrInvariantViolated
	}
	c1 := newClass1Cache()
	if c1.totalSpan == 0 {
		return nil, ErrInvariantViolated
	}
	return &Codec{class2: c2, class1: c1}, nil
}

// SectorOfPos floor-divides a galactic position by the sector size,
// returning the sector containing it.
func (c *Codec) SectorOfPos(v Vec3) SectorID {
	return SectorID{
		X: int(math.Floor((v.X - baseX) / SectorSizeLy)),
		Y: int(math.Floor((v.Y - baseY) / SectorSizeLy)),
		Z: int(math.Floor((v.Z - baseZ) / SectorSizeLy)),
	}
}

// SectorOrigin returns the Ly coordinate of a sector's near corner.
func (c *Codec) SectorOrigin(s SectorID) Vec3 {
	return Vec3{
		X: baseX + float64(s.X)*SectorSizeLy,
		Y: baseY + float64(s.Y)*SectorSizeLy,
		Z: baseZ + float64(s.Z)*SectorSizeLy,
	}
}

// SectorOfName tokenises and resolves a sector-name string to its grid
// position. Returns ErrUnparseable, ErrNotSupported (Class 1a), or
// ErrNotFound as appropriate.
func (c *Codec) SectorOfName(name string) (SectorID, error) {
	frags, err := Tokenize(name)
	if err != nil {
		return SectorID{}, err
	}
	switch Classify(frags) {
	case Class2:
		x, y, z, err := c.class2.sectorOfName(frags)
		if err != nil {
			return SectorID{}, err
		}
		return SectorID{x, y, z}, nil
	case Class1b:
		x, y, z, err := c.class1.sectorOfName(frags)
		if err != nil {
			return SectorID{}, err
		}
		return SectorID{x, y, z}, nil
	case Class1a:
		return SectorID{}, ErrNotSupported
	default:
		return SectorID{}, ErrUnparseable
	}
}

// NameOfSector renders a sector's canonical name. It prefers the Class 2
// generator, which this port models more completely, falling back to
// Class 1b when the sector falls outside Class 2's modelled grid. Use
// NameOfSectorClass to pin a specific scheme.
func (c *Codec) NameOfSector(s SectorID) (string, error) {
	if name, err := c.NameOfSectorClass(s, Class2); err == nil {
		return name, nil
	}
	return c.NameOfSectorClass(s, Class1b)
}

// NameOfSectorClass renders a sector's name under a specific scheme.
func (c *Codec) NameOfSectorClass(s SectorID, class SectorClass) (string, error) {
	switch class {
	case Class2:
		frags, err := c.class2.nameOfSector(s.X, s.Y, s.Z)
		if err != nil {
			return "", err
		}
		return FormatName(frags), nil
	case Class1b:
		frags, err := c.class1.nameOfSector(s.X, s.Y, s.Z)
		if err != nil {
			return "", err
		}
		return FormatName(frags), nil
	default:
		return "", ErrNotSupported
	}
}

// FormatBodyDesignation renders the two-letter/centre/suffix + mass-code
// group that follows a sector name, e.g. FormatBodyDesignation('A', 'B',
// 'C', 'h', 1, 23) returns "AB-C h1-23". n2 is omitted from the rendered
// string when it is 0, matching the grammar's optional second numeric
// group (systemNameGrammar's number2). The inverse of parseSystemName's
// prefix/centre/suffix/lcode/number1/number2 fields.
func FormatBodyDesignation(prefix, centre, suffix, massCode byte, n1, n2 int) string {
	toUpper := func(b byte) byte {
		if b >= 'a' && b <= 'z' {
			return b - ('a' - 'A')
		}
		return b
	}
	toLower := func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b + ('a' - 'A')
		}
		return b
	}
	s := string([]byte{toUpper(prefix), toUpper(centre)}) + "-" + string(toUpper(suffix)) + " " + string(toLower(massCode)) + strconv.Itoa(n1)
	if n2 != 0 {
		s += "-" + strconv.Itoa(n2)
	}
	return s
}

// parsedSystemName is the fully decomposed canonical system name.
type parsedSystemName struct {
	sector                 string
	prefix, centre, suffix byte
	massCode               byte
	n1, n2                 int
}

func parseSystemName(name string) (parsedSystemName, error) {
	m := systemNameGrammar.FindStringSubmatch(name)
	if m == nil {
		return parsedSystemName{}, ErrUnparseable
	}
	group := make(map[string]string, len(m))
	for i, key := range systemNameGrammar.SubexpNames() {
		if key != "" {
			group[key] = m[i]
		}
	}
	n1, err := strconv.Atoi(group["number1"])
	if err != nil {
		return parsedSystemName{}, ErrUnparseable
	}
	n2 := 0
	if group["number2"] != "" {
		n2, err = strconv.Atoi(group["number2"])
		if err != nil {
			return parsedSystemName{}, ErrUnparseable
		}
	}
	upper := func(s string) byte {
		if len(s) != 1 {
			return 0
		}
		b := s[0]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		return b
	}
	lower := func(s string) byte {
		if len(s) != 1 {
			return 0
		}
		b := s[0]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		return b
	}
	return parsedSystemName{
		sector:   group["sector"],
		prefix:   upper(group["prefix"]),
		centre:   upper(group["centre"]),
		suffix:   upper(group["suffix"]),
		massCode: lower(group["lcode"]),
		n1:       n1,
		n2:       n2,
	}, nil
}

// CoordsOf resolves a full canonical system name ("<Sector> AB-C d1-23")
// to its approximate world-space coordinate and error radius, per spec.md
// §4.6: grammar match, sector lookup, intra-sector locate, sum.
func (c *Codec) CoordsOf(systemName string) (Vec3, float64, error) {
	parsed, err := parseSystemName(systemName)
	if err != nil {
		return Vec3{}, 0, err
	}
	sector, err := c.SectorOfName(parsed.sector)
	if err != nil {
		return Vec3{}, 0, err
	}
	origin := c.SectorOrigin(sector)
	offset, radius, err := Locate(parsed.prefix, parsed.centre, parsed.suffix, parsed.massCode, parsed.n1, parsed.n2)
	if err != nil && err != ErrInvalidPosition {
		return Vec3{}, 0, err
	}
	point := Vec3{origin.X + offset.X, origin.Y + offset.Y, origin.Z + offset.Z}
	return point, radius, err
}
