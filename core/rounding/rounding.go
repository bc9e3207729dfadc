// Package rounding maps raw prices to client-friendly figures.
package rounding

import (
	"github.com/shopspring/decimal"

	"travel-pricing/internal/errors"
)

// Strategy selects a rounding behavior for final prices
type Strategy int

const (
	// NoRounding still enforces whole-unit granularity via ceil.
	// NoRounding and NearestUnit are intentionally kept as distinct
	// strategies even though they currently produce identical output;
	// product has not confirmed whether NearestUnit should ever round
	// down to the nearest whole unit.
	NoRounding Strategy = iota

	// NearestUnit rounds up to the next whole currency unit
	NearestUnit

	// NearestTen rounds up to a clean multiple of ten
	NearestTen

	// NearestHundred rounds up to a clean multiple of a hundred
	NearestHundred
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case NoRounding:
		return "none"
	case NearestUnit:
		return "nearest-unit"
	case NearestTen:
		return "nearest-ten"
	case NearestHundred:
		return "nearest-hundred"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a configured strategy name into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none", "no-rounding", "":
		return NoRounding, nil
	case "nearest-unit":
		return NearestUnit, nil
	case "nearest-ten":
		return NearestTen, nil
	case "nearest-hundred":
		return NearestHundred, nil
	default:
		return NoRounding, errors.Inputf("unknown rounding strategy %q", name)
	}
}

var (
	ten     = decimal.NewFromInt(10)
	hundred = decimal.NewFromInt(100)
)

// Apply rounds a raw price under the given strategy.
// Applying the same strategy to an already-rounded value is a no-op.
func Apply(price decimal.Decimal, s Strategy) decimal.Decimal {
	switch s {
	case NearestTen:
		// Values already sitting on a clean multiple of ten stay put;
		// everything else is pushed past the next ten boundary.
		if price.Mod(ten).IsZero() {
			return price
		}
		return price.Add(decimal.NewFromInt(1)).Div(ten).Ceil().Mul(ten)
	case NearestHundred:
		return price.Div(hundred).Ceil().Mul(hundred)
	default:
		// NoRounding and NearestUnit both enforce whole-unit output
		return price.Ceil()
	}
}

// PsychologicalPrice pushes a price to the next ten and lands one below
// it, producing endings in 9 (452 -> 459). It is a standalone display
// helper and is not part of the quote pricing pipeline.
func PsychologicalPrice(price decimal.Decimal) decimal.Decimal {
	next := price.Add(decimal.NewFromInt(1)).Div(ten).Ceil().Mul(ten)
	return next.Sub(decimal.NewFromInt(1))
}
