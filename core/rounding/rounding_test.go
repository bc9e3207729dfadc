package rounding

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		strategy Strategy
		want     string
	}{
		{"no rounding ceils to whole unit", "452.3", NoRounding, "453"},
		{"no rounding keeps whole values", "452", NoRounding, "452"},
		{"nearest unit ceils to whole unit", "452.3", NearestUnit, "453"},
		{"nearest unit keeps whole values", "452", NearestUnit, "452"},
		{"nearest ten pushes past boundary", "452", NearestTen, "460"},
		{"nearest ten just below boundary", "459", NearestTen, "460"},
		{"nearest ten keeps clean multiples", "460", NearestTen, "460"},
		{"nearest ten with fraction", "452.5", NearestTen, "460"},
		{"nearest ten low in decade", "441", NearestTen, "450"},
		{"nearest hundred", "452", NearestHundred, "500"},
		{"nearest hundred keeps clean multiples", "400", NearestHundred, "400"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Apply(dec(c.price), c.strategy)
			if !got.Equal(dec(c.want)) {
				t.Fatalf("Apply(%s, %s) = %s, want %s", c.price, c.strategy, got, c.want)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	strategies := []Strategy{NoRounding, NearestUnit, NearestTen, NearestHundred}
	prices := []string{"0", "1", "9.99", "452", "452.5", "459", "460", "999.01", "1270.5", "10000"}

	for _, s := range strategies {
		for _, p := range prices {
			once := Apply(dec(p), s)
			twice := Apply(once, s)
			if !twice.Equal(once) {
				t.Errorf("strategy %s not idempotent at %s: first %s, second %s", s, p, once, twice)
			}
		}
	}
}

func TestPsychologicalPrice(t *testing.T) {
	cases := []struct{ price, want string }{
		{"452", "459"},
		{"459", "459"},
		{"460", "469"},
		{"1270.5", "1279"},
	}
	for _, c := range cases {
		got := PsychologicalPrice(dec(c.price))
		if !got.Equal(dec(c.want)) {
			t.Errorf("PsychologicalPrice(%s) = %s, want %s", c.price, got, c.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{NoRounding, NearestUnit, NearestTen, NearestHundred} {
		parsed, err := ParseStrategy(s.String())
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Fatalf("ParseStrategy(%q) = %s, want %s", s.String(), parsed, s)
		}
	}

	if _, err := ParseStrategy("round-down"); err == nil {
		t.Fatal("expected error for unknown strategy name")
	}

	// Empty defaults to no rounding for config convenience
	parsed, err := ParseStrategy("")
	if err != nil || parsed != NoRounding {
		t.Fatalf("ParseStrategy(\"\") = %s, %v; want NoRounding, nil", parsed, err)
	}
}
