// File: internal/pgnames/locator_test.go
package pgnames

import (
	"math"
	"testing"
)

func TestLocateMassCodeRadius(t *testing.T) {
	_, radius, err := Locate('A', 'A', 'A', 'b', 0, 0)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if radius != 10 {
		t.Errorf("radius = %v, want 10 (1280/2^6/2)", radius)
	}
}

func TestLocateDecomposition(t *testing.T) {
	// spec.md §8.5: "AB-C b0" -> pos = 2*676 + 1*26 + 0 = 1378 ->
	// row=0, stack=10, column=98 -> centre (1970, 210, 10).
	// X = 1970 lies outside [0, 1280), so Locate reports ErrInvalidPosition
	// alongside the computed point.
	v, radius, err := Locate('A', 'B', 'C', 'b', 0, 0)
	if err != ErrInvalidPosition {
		t.Fatalf("Locate: err = %v, want ErrInvalidPosition (X=1970 is outside [0,1280))", err)
	}
	want := Vec3{1970, 210, 10}
	if v != want {
		t.Errorf("Locate('A','B','C','b',0,0) = %+v, want %+v", v, want)
	}
	if radius != 10 {
		t.Errorf("radius = %v, want 10", radius)
	}
}

func TestLocateFullSectorRadius(t *testing.T) {
	_, radius, err := Locate('A', 'A', 'A', 'h', 0, 0)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if radius != 640 {
		t.Errorf("radius = %v, want 640", radius)
	}
}

func TestLocateAlwaysInBounds(t *testing.T) {
	for _, mass := range []byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'} {
		for _, p := range []byte{'A', 'M', 'Z'} {
			for _, c := range []byte{'A', 'M', 'Z'} {
				for _, s := range []byte{'A', 'M', 'Z'} {
					v, radius, err := Locate(p, c, s, mass, 0, 0)
					if err != nil {
						continue // out-of-range inputs are documented, not a test failure
					}
					if v.X < 0 || v.X >= SectorSizeLy || v.Y < 0 || v.Y >= SectorSizeLy || v.Z < 0 || v.Z >= SectorSizeLy {
						t.Errorf("Locate(%c,%c,%c,%c) = %+v out of [0,1280)", p, c, s, mass, v)
					}
					if radius > 640 {
						t.Errorf("radius %v exceeds 640", radius)
					}
				}
			}
		}
	}
}

func TestLocateRadiusFormula(t *testing.T) {
	for _, mass := range []byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'} {
		_, radius, err := Locate('A', 'A', 'A', mass, 0, 0)
		if err != nil {
			continue
		}
		want := SectorSizeLy / math.Pow(2, float64('h'-mass)) / 2
		if radius != want {
			t.Errorf("mass %c: radius = %v, want %v", mass, radius, want)
		}
	}
}

func TestLocateInvalidLetterRange(t *testing.T) {
	_, _, err := Locate(0, 'A', 'A', 'b', 0, 0)
	if err != ErrInvalidPosition {
		t.Errorf("Locate with invalid prefix byte: err = %v, want ErrInvalidPosition", err)
	}
}

// TestLocateInvalidMassCode guards against the shift-underflow bug: a mass
// code outside 'a'..'h' used to underflow the uint shift to 0 and produce a
// NaN Vec3 that compared false against every bound, silently returning
// err == nil. It must now be rejected up front.
func TestLocateInvalidMassCode(t *testing.T) {
	for _, mc := range []byte{'z', 'i', 0, 'A'} {
		v, _, err := Locate('A', 'B', 'C', mc, 0, 0)
		if err != ErrInvalidPosition {
			t.Errorf("Locate with mass code %q: err = %v, v = %+v, want ErrInvalidPosition", mc, err, v)
		}
	}
}
