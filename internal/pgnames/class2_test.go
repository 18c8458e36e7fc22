// File: internal/pgnames/class2_test.go
package pgnames

import (
	"fmt"
	"sort"
	"testing"
)

func TestC2CumulativeOffsetMatchesStepWalk(t *testing.T) {
	for _, x := range []int{0, 1, 5, 13, 63, 64, 65, 200, 500} {
		var s0, s2 int
		for i := 0; i < x; i++ {
			d := c2RunStates[i%64]
			s0 += d[0]
			s2 += d[1]
		}
		got0, got2 := c2CumulativeOffset(x)
		if got0 != s0 || got2 != s2 {
			t.Errorf("c2CumulativeOffset(%d) = (%d,%d), want (%d,%d)", x, got0, got2, s0, s2)
		}
	}
}

// TestC2CumulativeOffsetNegativeX guards against the truncating-modulo bug:
// Go's % yields a negative state for negative x unless normalized, which
// panics indexing c2RunStatesCum0/c2RunStatesCum2. It must not panic, and
// the one-block periodicity c2CumulativeOffset relies on must hold across
// the zero boundary the same way it does everywhere else.
func TestC2CumulativeOffsetNegativeX(t *testing.T) {
	for _, x := range []int{-1, -5, -13, -63, -64, -65, -200, -500} {
		got0, got2 := c2CumulativeOffset(x)
		next0, next2 := c2CumulativeOffset(x + 64)
		if next0-got0 != c2RunBlockSum0 || next2-got2 != c2RunBlockSum2 {
			t.Errorf("c2CumulativeOffset(%d)->(%d+64) delta = (%d,%d), want block sums (%d,%d)",
				x, x, next0-got0, next2-got2, c2RunBlockSum0, c2RunBlockSum2)
		}
	}
}

func TestClass2RoundTripModelledGrid(t *testing.T) {
	c := newClass2Cache()
	if len(c.run) == 0 {
		t.Fatal("newClass2Cache: empty run")
	}
	type cell struct{ z, y int }
	var cells []cell
	for z, col := range c.startGrid {
		for y := range col {
			cells = append(cells, cell{z, y})
		}
	}
	if len(cells) == 0 {
		t.Fatal("newClass2Cache: no modelled (z,y) cells")
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].z != cells[j].z {
			return cells[i].z < cells[j].z
		}
		return cells[i].y < cells[j].y
	})
	for _, cl := range cells {
		t.Run(fmt.Sprintf("z=%d,y=%d", cl.z, cl.y), func(t *testing.T) {
			frags, err := c.nameOfSector(0, cl.y, cl.z)
			if err != nil {
				t.Fatalf("nameOfSector(0,%d,%d): %v", cl.y, cl.z, err)
			}
			if len(frags) != 4 {
				t.Fatalf("nameOfSector(0,%d,%d) = %v, want 4 fragments", cl.y, cl.z, frags)
			}
			x, y, z, err := c.sectorOfName(frags)
			if err != nil {
				t.Fatalf("sectorOfName(%v): %v", frags, err)
			}
			got, err := c.nameOfSector(x, y, z)
			if err != nil {
				t.Fatalf("nameOfSector(%d,%d,%d): %v", x, y, z, err)
			}
			for i := range frags {
				if got[i] != frags[i] {
					t.Errorf("round trip diverged: nameOfSector(0,%d,%d)=%v, sectorOfName->%v,%v,%v, nameOfSector(that)=%v",
						cl.y, cl.z, frags, x, y, z, got)
					break
				}
			}
		})
	}
}

func TestClass2NameFormatsAsClass2(t *testing.T) {
	c := newClass2Cache()
	var z0 int
	var col map[int][2]int
	for z, c2 := range c.startGrid {
		z0, col = z, c2
		break
	}
	var y0 int
	for y := range col {
		y0 = y
		break
	}
	frags, err := c.nameOfSector(0, y0, z0)
	if err != nil {
		t.Fatalf("nameOfSector: %v", err)
	}
	if Classify(frags) != Class2 {
		t.Errorf("Classify(%v) = %v, want Class2", frags, Classify(frags))
	}
	rendered := FormatName(frags)
	retok, err := Tokenize(rendered)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", rendered, err)
	}
	if len(retok) != 4 {
		t.Errorf("Tokenize(FormatName(%v)) = %v", frags, retok)
	}
}

func TestClass2NameOfSectorNotFoundOutsideGrid(t *testing.T) {
	c := newClass2Cache()
	if _, err := c.nameOfSector(0, 0, 99999); err != ErrNotFound {
		t.Errorf("nameOfSector at unmodelled z: err = %v, want ErrNotFound", err)
	}
}

func TestClass2SectorOfNameNotFoundForBogusFragments(t *testing.T) {
	c := newClass2Cache()
	_, _, _, err := c.sectorOfName([]string{"Zzz", "qqq", "Zzz", "qqq"})
	if err != ErrNotFound {
		t.Errorf("sectorOfName with bogus fragments: err = %v, want ErrNotFound", err)
	}
}

func TestApplyOverride(t *testing.T) {
	patched := applyOverride(c2Word{"Eo", "rn"})
	if patched.Prefix != "Oo" || patched.Suffix != "b" {
		t.Errorf("applyOverride(Eo,rn) = %+v, want {Oo b}", patched)
	}
	unpatched := applyOverride(c2Word{"Eo", "zzz-not-overridden"})
	if unpatched.Prefix != "Eo" {
		t.Errorf("applyOverride should pass through unmatched suffixes unchanged, got %+v", unpatched)
	}
}
