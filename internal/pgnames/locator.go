// File: internal/pgnames/locator.go
// Project: Terminal Velocity
// Description: Intra-sector boxel locator
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

// SectorSizeLy is the edge length of one sector cube, in light years.
const SectorSizeLy = 1280.0

// massCodeFull is the mass-code letter representing the whole sector
// ('h' = full sector, spec.md GLOSSARY).
const massCodeFull = 'h'

// Locate computes the intra-sector position and half-width radius for the
// two-letter-hyphen-letter/mass-code/numeric group of a system name:
// prefix, centre, suffix uppercase letters; a lowercase mass-code letter;
// and n1/n2 integers (n2 defaults to 0 when the hyphenated group is
// absent).
//
// Grounded on original_source/pgnames.py:get_star_relative_position.
func Locate(prefix, centre, suffix byte, massCode byte, n1, n2 int) (Vec3, float64, error) {
	idxP := int(prefix - 'A')
	idxC := int(centre - 'A')
	idxS := int(suffix - 'A')
	if idxP < 0 || idxP > 25 || idxC < 0 || idxC > 25 || idxS < 0 || idxS > 25 {
		return Vec3{}, 0, ErrInvalidPosition
	}
	if massCode < 'a' || massCode > massCodeFull {
		return Vec3{}, 0, ErrInvalidPosition
	}

	// n2 is part of the system-name grammar (spec.md §3's optional
	// hyphenated group) but is not a term of the boxel formula itself
	// (spec.md §4.5, confirmed by the worked example in §8.5); it is
	// accepted here only so the top-level dispatcher can pass the whole
	// parsed group through uniformly.
	_ = n2
	pos := 26*26*26*n1 + 26*26*idxS + 26*idxC + idxP

	const gridSide = 128
	row := pos / (gridSide * gridSide)
	stack := (pos % (gridSide * gridSide)) / gridSide
	column := pos % gridSide

	shift := uint(massCodeFull - massCode)
	cubeSide := SectorSizeLy / float64(uint(1)<<shift)
	radius := cubeSide / 2

	v := Vec3{
		X: float64(column)*cubeSide + radius,
		Y: float64(stack)*cubeSide + radius,
		Z: float64(row)*cubeSide + radius,
	}

	if v.X < 0 || v.X >= SectorSizeLy || v.Y < 0 || v.Y >= SectorSizeLy || v.Z < 0 || v.Z >= SectorSizeLy {
		return v, radius, ErrInvalidPosition
	}
	return v, radius, nil
}
