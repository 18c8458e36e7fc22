// File: cmd/navcomp/main.go
// Project: Terminal Velocity
// Description: Navigation computer CLI for procedural system designations
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JoshuaAFerguson/pgnames/internal/pgnames"
)

var (
	name = flag.String("name", "", "Full system designation to resolve, e.g. \"Dryau Aowsy AB-C h1-23\"")
	x    = flag.Int("x", 0, "Sector X index, used with -y/-z to print a sector's name")
	y    = flag.Int("y", 0, "Sector Y index, used with -x/-z to print a sector's name")
	z    = flag.Int("z", 0, "Sector Z index, used with -x/-y to print a sector's name")
	mode = flag.String("mode", "", "\"coords\" (resolve -name) or \"sector\" (render -x/-y/-z); inferred from -name if omitted")
)

func main() {
	flag.Parse()

	codec, err := pgnames.NewCodec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "navcomp: failed to build codec: %v\n", err)
		os.Exit(1)
	}

	selectedMode := *mode
	if selectedMode == "" {
		if *name != "" {
			selectedMode = "coords"
		} else {
			selectedMode = "sector"
		}
	}

	switch selectedMode {
	case "coords":
		runCoords(codec, *name)
	case "sector":
		runSector(codec, pgnames.SectorID{X: *x, Y: *y, Z: *z})
	default:
		fmt.Fprintf(os.Stderr, "navcomp: unknown -mode %q (want \"coords\" or \"sector\")\n", selectedMode)
		os.Exit(1)
	}
}

func runCoords(codec *pgnames.Codec, systemName string) {
	if systemName == "" {
		fmt.Fprintln(os.Stderr, "navcomp: -name is required in coords mode")
		os.Exit(1)
	}
	point, radius, err := codec.CoordsOf(systemName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "navcomp: could not resolve %q: %v\n", systemName, err)
		os.Exit(1)
	}
	fmt.Printf("%s -> (%.1f, %.1f, %.1f) Ly, +/- %.1f Ly\n", systemName, point.X, point.Y, point.Z, radius)
}

func runSector(codec *pgnames.Codec, sector pgnames.SectorID) {
	sectorName, err := codec.NameOfSector(sector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "navcomp: could not name sector (%d,%d,%d): %v\n", sector.X, sector.Y, sector.Z, err)
		os.Exit(1)
	}
	origin := codec.SectorOrigin(sector)
	fmt.Printf("(%d,%d,%d) -> %q, origin (%.1f, %.1f, %.1f) Ly\n", sector.X, sector.Y, sector.Z, sectorName, origin.X, origin.Y, origin.Z)
}
