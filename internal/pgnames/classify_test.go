// File: internal/pgnames/classify_test.go
package pgnames

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		frags []string
		want  SectorClass
	}{
		{"class 2", []string{"Dry", "au", "Ao", "wsy"}, Class2},
		{"class 1b", []string{"Fr", "oad", "ue"}, Class1b},
		{"class 1a", []string{"Fr", "oad", "b", "oe"}, Class1a},
		{"invalid, too few", []string{"Fr"}, ClassInvalid},
		{"invalid, too many", []string{"Fr", "oad", "ue", "a", "b"}, ClassInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.frags); got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.frags, got, tc.want)
			}
		})
	}
}

func TestIsValidNameClass2(t *testing.T) {
	frags := []string{"Dry", "au", "Ao", "wsy"}
	if !IsValidName(frags) {
		t.Errorf("IsValidName(%v) = false, want true", frags)
	}
}

func TestIsValidNameRejectsBadSuffix(t *testing.T) {
	frags := []string{"Dry", "zzzznotafragment", "Ao", "wsy"}
	if IsValidName(frags) {
		t.Errorf("IsValidName(%v) = true, want false", frags)
	}
}

func TestSectorClassString(t *testing.T) {
	for _, c := range []SectorClass{Class1a, Class1b, Class2, ClassInvalid} {
		if c.String() == "" {
			t.Errorf("SectorClass(%d).String() empty", c)
		}
	}
}
