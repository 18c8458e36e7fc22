// File: internal/pgnames/tokenize_test.go
package pgnames

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "class 2 example",
			input: "Dryau Aowsy",
			want:  []string{"Dry", "au", "Ao", "wsy"},
		},
		{
			name:  "class 1b example",
			input: "Froadue",
			want:  []string{"Fr", "oad", "ue"},
		},
		{
			name:  "space insensitive",
			input: "Synoo kio",
			want:  mustTokenize(t, "Synookio"),
		},
		{
			name:    "unparseable residue",
			input:   "123",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Tokenize(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func mustTokenize(t *testing.T, s string) []string {
	t.Helper()
	frags, err := Tokenize(s)
	if err != nil {
		t.Fatalf("mustTokenize(%q): %v", s, err)
	}
	return frags
}

func TestTokenizeWhitespaceInsensitive(t *testing.T) {
	withSpace, err := Tokenize("Syn oo kio")
	if err != nil {
		t.Fatalf("Tokenize with space: %v", err)
	}
	withoutSpace, err := Tokenize("Synoo kio")
	if err != nil {
		t.Fatalf("Tokenize without space: %v", err)
	}
	if !reflect.DeepEqual(withSpace, withoutSpace) {
		t.Errorf("whitespace-insensitive tokenisation diverged: %v != %v", withSpace, withoutSpace)
	}
}

func TestFormatNameRoundTrip(t *testing.T) {
	names := []string{"Dryau Aowsy", "Froadue"}
	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			frags, err := Tokenize(n)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", n, err)
			}
			formatted := FormatName(frags)
			refrags, err := Tokenize(formatted)
			if err != nil {
				t.Fatalf("Tokenize(FormatName(...)): %v", err)
			}
			if !reflect.DeepEqual(frags, refrags) {
				t.Errorf("round trip diverged: %v -> %q -> %v", frags, formatted, refrags)
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	frags, err := Tokenize("Dryau Aowsy")
	if err != nil {
		t.Fatal(err)
	}
	once := FormatName(frags)
	retok, err := Tokenize(once)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(frags, retok) {
		t.Errorf("tokeniser not idempotent under format: %v != %v", frags, retok)
	}
}
