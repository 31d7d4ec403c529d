package colormath

import (
	"sort"
	"strings"
	"testing"
)

func TestNamedTableIsSorted(t *testing.T) {
	names := make([]string, len(namedColors))
	for i, nc := range namedColors {
		names[i] = strings.ToLower(nc.Name)
		if !IsHex(nc.Hex) {
			t.Errorf("%s has invalid hex %q", nc.Name, nc.Hex)
		}
	}
	if !sort.StringsAreSorted(names) {
		t.Error("named color table is not alphabetical")
	}
}

func TestSearchNamed(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"rebecca", []string{"RebeccaPurple"}},
		{"#8a2be2", []string{"BlueViolet"}},
		{"DARKSLATEG", []string{"DarkSlateGray"}},
		{"no-such-color", nil},
	}
	for _, tt := range tests {
		got := SearchNamed(tt.term)
		var names []string
		for _, nc := range got {
			names = append(names, nc.Name)
		}
		if strings.Join(names, ",") != strings.Join(tt.want, ",") {
			t.Errorf("SearchNamed(%q) = %v, want %v", tt.term, names, tt.want)
		}
	}

	if len(SearchNamed("")) != len(namedColors) {
		t.Error("empty term should return the full table")
	}
}

func TestGroupNamedByLetter(t *testing.T) {
	groups := GroupNamedByLetter(NamedColors())
	if len(groups) == 0 || groups[0].Letter != "A" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	total := 0
	for i, g := range groups {
		if i > 0 && groups[i-1].Letter >= g.Letter {
			t.Errorf("letters out of order: %s then %s", groups[i-1].Letter, g.Letter)
		}
		for _, nc := range g.Colors {
			if !strings.HasPrefix(strings.ToUpper(nc.Name), g.Letter) {
				t.Errorf("%s in group %s", nc.Name, g.Letter)
			}
		}
		total += len(g.Colors)
	}
	if total != len(namedColors) {
		t.Errorf("grouped %d colors, want %d", total, len(namedColors))
	}
}

func TestNearestNamed(t *testing.T) {
	exact := NearestNamed(RGB{102, 51, 153})
	if exact.Name != "RebeccaPurple" || !exact.Exact || exact.Distance != 0 {
		t.Errorf("exact match = %+v", exact)
	}

	near := NearestNamed(RGB{254, 1, 0})
	if near.Name != "Red" || near.Exact {
		t.Errorf("near match = %+v", near)
	}
}

func TestLookupNamed(t *testing.T) {
	c, ok := LookupNamed("  CornflowerBlue ")
	if !ok || c != (RGB{100, 149, 237}) {
		t.Errorf("got %+v, %v", c, ok)
	}
	if _, ok := LookupNamed("blurple"); ok {
		t.Error("unexpected match")
	}
}
