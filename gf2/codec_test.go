package gf2_test

import (
	"errors"
	"testing"

	"github.com/yezhuoyang/HGPCode/gf2"
)

// TestParse_Valid covers round-trippable inputs, including tolerated whitespace.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name string
		text string
		rows [][]byte
	}{
		{"Repetition", "1,1,0;0,1,1", [][]byte{{1, 1, 0}, {0, 1, 1}}},
		{"SingleEntry", "1", [][]byte{{1}}},
		{"SingleRow", "0,1,0,1", [][]byte{{0, 1, 0, 1}}},
		{"Whitespace", " 1 , 0 ; 0 , 1 ", [][]byte{{1, 0}, {0, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gf2.Parse(tc.text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.text, err)
			}
			want, err := gf2.FromRows(tc.rows)
			if err != nil {
				t.Fatalf("FromRows error: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s; want %s", tc.text, got, want)
			}
		})
	}
}

// TestParse_Errors verifies every rejection path surfaces ErrParse.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"OnlyWhitespace", "   \t\n"},
		{"RaggedRows", "1,1,0;0,1"},
		{"NonInteger", "1,a;0,1"},
		{"OutOfDomain", "1,2;0,1"},
		{"NegativeEntry", "1,-1;0,1"},
		{"EmptyEntry", "1,,0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gf2.Parse(tc.text); !errors.Is(err, gf2.ErrParse) {
				t.Errorf("Parse(%q) error = %v; want ErrParse", tc.text, err)
			}
		})
	}
}

// TestString_RoundTrip verifies Parse(m.String()) reproduces m.
func TestString_RoundTrip(t *testing.T) {
	m, err := gf2.Parse("1,1,0;0,1,1;1,0,1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	text := m.String()
	if text != "1,1,0;0,1,1;1,0,1" {
		t.Errorf("String() = %q; want canonical form", text)
	}

	back, err := gf2.Parse(text)
	if err != nil {
		t.Fatalf("re-Parse error: %v", err)
	}
	if !m.Equal(back) {
		t.Error("String/Parse round trip altered the matrix")
	}
}
