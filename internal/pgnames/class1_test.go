// File: internal/pgnames/class1_test.go
package pgnames

import (
	"reflect"
	"testing"
)

func TestClass1DecodeEncodeRoundTrip(t *testing.T) {
	c := newClass1Cache()
	if c.totalSpan == 0 {
		t.Fatal("newClass1Cache: empty totalSpan")
	}
	for idx := 0; idx < c.totalSpan; idx += 7 {
		frags, err := c.decode(idx)
		if err != nil {
			t.Fatalf("decode(%d): %v", idx, err)
		}
		if len(frags) != 3 {
			t.Fatalf("decode(%d) = %v, want 3 fragments", idx, frags)
		}
		back, err := c.encode(frags)
		if err != nil {
			t.Fatalf("encode(%v): %v", frags, err)
		}
		if back != idx {
			t.Errorf("encode(decode(%d)) = %d, want %d", idx, back, idx)
		}
	}
}

func TestClass1SectorRoundTrip(t *testing.T) {
	c := newClass1Cache()
	coords := [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {5, 3, 2}, {88, 15, 4}}
	for _, xyz := range coords {
		frags, err := c.nameOfSector(xyz[0], xyz[1], xyz[2])
		if err != nil {
			t.Fatalf("nameOfSector%v: %v", xyz, err)
		}
		x, y, z, err := c.sectorOfName(frags)
		if err != nil {
			t.Fatalf("sectorOfName(%v): %v", frags, err)
		}
		got := [3]int{x, y, z}
		if got != xyz {
			t.Errorf("sectorOfName(nameOfSector%v) = %v, want %v", xyz, got, xyz)
		}
	}
}

func TestClass1DecodeWrapsNegativeIndex(t *testing.T) {
	c := newClass1Cache()
	if _, err := c.decode(-c.totalSpan * 3); err != nil {
		t.Errorf("decode of large negative index: %v", err)
	}
}

func TestClass1EncodeRejectsUnknownFragments(t *testing.T) {
	c := newClass1Cache()
	if _, err := c.encode([]string{"Fr", "oad"}); err != ErrNotSupported {
		t.Errorf("encode with 2 fragments: err = %v, want ErrNotSupported", err)
	}
	if _, err := c.encode([]string{"zzznotaprefix", "oad", "ue"}); err != ErrUnparseable {
		t.Errorf("encode with unknown prefix: err = %v, want ErrUnparseable", err)
	}
}

func TestSectorFromIndexRoundTrip(t *testing.T) {
	cases := []int{0, 1, 88, 89, c1XRowWidth * c1YStackHeight, 123456}
	for _, idx := range cases {
		x, y, z := sectorFromIndex(idx)
		if got := indexFromSector(x, y, z); got != idx {
			t.Errorf("indexFromSector(sectorFromIndex(%d)) = %d, want %d", idx, got, idx)
		}
	}
}

func TestClass1FrontierExample(t *testing.T) {
	// spec.md §8.2: "Froadue" tokenises to a 3-fragment Class 1b name.
	frags, err := Tokenize("Froadue")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !reflect.DeepEqual(frags, []string{"Fr", "oad", "ue"}) {
		t.Fatalf("Tokenize(Froadue) = %v", frags)
	}
	if Classify(frags) != Class1b {
		t.Fatalf("Classify(%v) = %v, want Class1b", frags, Classify(frags))
	}
	// It is not a valid Class 1b combination: the vowel-ish infix "oad" takes
	// its suffix from sequence 2, and "ue" is not in sequence 2.
	if IsValidName(frags) {
		t.Errorf("IsValidName(%v) = true, want false", frags)
	}
	c := newClass1Cache()
	if _, err := c.encode(frags); err != ErrUnparseable {
		t.Errorf("encode(%v): err = %v, want ErrUnparseable", frags, err)
	}
}
