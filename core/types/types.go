// Package types - Shared pricing engine types
package types

import (
	"github.com/shopspring/decimal"

	"travel-pricing/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyAED Currency = "AED"
	CurrencyINR Currency = "INR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CostCategory classifies a cost line item
type CostCategory int

const (
	CategoryHotel CostCategory = iota
	CategoryTransfer
	CategoryActivity
	CategoryVisa
)

// String returns the category name
func (c CostCategory) String() string {
	switch c {
	case CategoryHotel:
		return "hotel"
	case CategoryTransfer:
		return "transfer"
	case CategoryActivity:
		return "activity"
	case CategoryVisa:
		return "visa"
	default:
		return "unknown"
	}
}

// CostBasis is the unit a price is quoted against
type CostBasis int

const (
	PerRoom CostBasis = iota
	PerPerson
	PerVehicle
)

// String returns the basis name
func (b CostBasis) String() string {
	switch b {
	case PerRoom:
		return "per-room"
	case PerPerson:
		return "per-person"
	case PerVehicle:
		return "per-vehicle"
	default:
		return "unknown"
	}
}

// TravelerCount holds the party composition for a quote.
// Infants are excluded from room, vehicle and per-person cost math.
type TravelerCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// PayingPax returns the headcount that participates in per-person pricing
func (t TravelerCount) PayingPax() int {
	return t.Adults + t.Children
}

// Validate checks the party composition
func (t TravelerCount) Validate() error {
	if t.Adults < 1 {
		return errors.Inputf("at least one adult is required, got %d", t.Adults)
	}
	if t.Children < 0 || t.Infants < 0 {
		return errors.Input("children and infants counts must be non-negative")
	}
	return nil
}

// RoundMoney normalizes a monetary amount to 2 decimal places.
// Aggregated amounts pass through this before any markup math so that
// fractional sub-cents never leak into later stages.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
