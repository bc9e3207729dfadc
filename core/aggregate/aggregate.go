// Package aggregate combines itinerary cost line items into a single
// net cost in the quote's target currency.
//
// Every sub-amount is converted to the target currency before summation;
// amounts in different currencies are never added together.
package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"travel-pricing/core/allocation"
	"travel-pricing/core/currency"
	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// LineItem is a single priced itinerary entry
type LineItem struct {
	// Label is a human-readable label for breakdown display
	Label string `json:"label"`

	// Category classifies the item
	Category types.CostCategory `json:"category"`

	// Basis is the unit the amount is quoted against
	Basis types.CostBasis `json:"basis"`

	// Amount is the unit cost in the source currency.
	// For activities this is the adult unit cost.
	Amount decimal.Decimal `json:"amount"`

	// ChildAmount is the per-child unit cost for activities.
	// Zero means children are priced at the adult rate.
	ChildAmount decimal.Decimal `json:"child_amount,omitempty"`

	// Currency is the source currency of the amount
	Currency types.Currency `json:"currency"`

	// VehicleCapacity is the seat count for per-vehicle items
	VehicleCapacity int `json:"vehicle_capacity,omitempty"`

	// ReferenceOnly marks informational entries excluded from cost
	ReferenceOnly bool `json:"reference_only,omitempty"`
}

// Stay is one city/hotel leg of the itinerary with its own room and
// night context
type Stay struct {
	// Label identifies the stay (city or hotel name)
	Label string `json:"label"`

	// Rooms is the room count for this stay
	Rooms int `json:"rooms"`

	// Nights is the night count for this stay
	Nights int `json:"nights"`

	// Items are the cost line items for this stay
	Items []LineItem `json:"items"`
}

// Input is a complete aggregation request
type Input struct {
	// Stays are the itinerary legs, aggregated independently and summed
	Stays []Stay `json:"stays"`

	// Travelers is the party composition
	Travelers types.TravelerCount `json:"travelers"`

	// VisaEnabled gates visa line items for the quote
	VisaEnabled bool `json:"visa_enabled"`

	// Target is the currency the net cost is reported in
	Target types.Currency `json:"target"`
}

// Line is one computed, converted cost line
type Line struct {
	// Stay is the label of the owning stay
	Stay string `json:"stay"`

	// Label is the item label
	Label string `json:"label"`

	// Category is the item category name
	Category string `json:"category"`

	// Formula describes how the source amount was computed
	Formula string `json:"formula"`

	// SourceAmount is the computed amount in the source currency
	SourceAmount decimal.Decimal `json:"source_amount"`

	// SourceCurrency is the item currency
	SourceCurrency types.Currency `json:"source_currency"`

	// Amount is the converted amount in the target currency, 2dp
	Amount decimal.Decimal `json:"amount"`
}

// Result is the aggregation output handed to the markup chain
type Result struct {
	// NetCost is the total supplier cost in the target currency, 2dp
	NetCost decimal.Decimal `json:"net_cost"`

	// Currency is the target currency
	Currency types.Currency `json:"currency"`

	// Lines are the per-item converted cost lines
	Lines []Line `json:"lines,omitempty"`

	// ByCategory totals converted cost per category name
	ByCategory map[string]decimal.Decimal `json:"by_category,omitempty"`

	// Warnings lists non-fatal anomalies, e.g. priced reference items
	Warnings []string `json:"warnings,omitempty"`
}

// Aggregate computes the net cost for an itinerary against a rate table
// snapshot.
func Aggregate(in Input, table *currency.Table) (*Result, error) {
	if err := in.Travelers.Validate(); err != nil {
		return nil, err
	}
	if in.Target == "" {
		return nil, errors.Input("target currency is required")
	}
	if !table.Has(in.Target) {
		return nil, errors.UnknownCurrency(string(in.Target))
	}

	result := &Result{
		Currency:   in.Target,
		ByCategory: make(map[string]decimal.Decimal),
	}

	pax := in.Travelers.PayingPax()
	total := decimal.Zero

	for _, stay := range in.Stays {
		for _, item := range stay.Items {
			if item.ReferenceOnly {
				// Deliberate exclusion, but a priced reference item is
				// almost always a data entry mistake worth surfacing.
				if !item.Amount.IsZero() {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("reference-only item %q in stay %q carries amount %s %s; excluded from cost",
							item.Label, stay.Label, item.Amount, item.Currency))
				}
				continue
			}
			if item.Category == types.CategoryVisa && !in.VisaEnabled {
				continue
			}

			sourceAmount, formula, err := itemCost(item, stay, in.Travelers, pax)
			if err != nil {
				return nil, err
			}

			converted, err := table.Convert(sourceAmount, item.Currency, in.Target)
			if err != nil {
				return nil, err
			}
			converted = types.RoundMoney(converted)

			category := item.Category.String()
			result.Lines = append(result.Lines, Line{
				Stay:           stay.Label,
				Label:          item.Label,
				Category:       category,
				Formula:        formula,
				SourceAmount:   sourceAmount,
				SourceCurrency: item.Currency,
				Amount:         converted,
			})
			result.ByCategory[category] = result.ByCategory[category].Add(converted)
			total = total.Add(converted)
		}
	}

	result.NetCost = types.RoundMoney(total)
	return result, nil
}

// itemCost computes an item's cost in its source currency along with a
// display formula.
func itemCost(item LineItem, stay Stay, travelers types.TravelerCount, pax int) (decimal.Decimal, string, error) {
	if item.Amount.IsNegative() {
		return decimal.Zero, "", errors.Inputf("item %q has negative amount %s", item.Label, item.Amount)
	}

	paxDec := decimal.NewFromInt(int64(pax))

	switch item.Category {
	case types.CategoryHotel:
		if stay.Rooms < 1 {
			return decimal.Zero, "", errors.Inputf("stay %q needs at least one room for hotel pricing", stay.Label)
		}
		if stay.Nights < 1 {
			return decimal.Zero, "", errors.Inputf("stay %q needs at least one night for hotel pricing", stay.Label)
		}
		nights := decimal.NewFromInt(int64(stay.Nights))
		switch item.Basis {
		case types.PerRoom:
			rooms := decimal.NewFromInt(int64(stay.Rooms))
			amount := item.Amount.Mul(rooms).Mul(nights)
			formula := fmt.Sprintf("%s/room/night * %d rooms * %d nights", item.Amount, stay.Rooms, stay.Nights)
			return amount, formula, nil
		case types.PerPerson:
			amount := item.Amount.Mul(paxDec).Mul(nights)
			formula := fmt.Sprintf("%s/person/night * %d pax * %d nights", item.Amount, pax, stay.Nights)
			return amount, formula, nil
		}

	case types.CategoryTransfer:
		switch item.Basis {
		case types.PerVehicle:
			vehicles, err := allocation.RequiredVehicles(pax, item.VehicleCapacity)
			if err != nil {
				return decimal.Zero, "", err
			}
			amount := item.Amount.Mul(decimal.NewFromInt(int64(vehicles)))
			formula := fmt.Sprintf("%s/vehicle * %d vehicle(s) for %d pax", item.Amount, vehicles, pax)
			return amount, formula, nil
		case types.PerPerson:
			amount := item.Amount.Mul(paxDec)
			formula := fmt.Sprintf("%s/person * %d pax", item.Amount, pax)
			return amount, formula, nil
		}

	case types.CategoryActivity:
		if item.Basis == types.PerPerson {
			childUnit := item.ChildAmount
			if childUnit.IsZero() {
				childUnit = item.Amount
			}
			adults := decimal.NewFromInt(int64(travelers.Adults))
			children := decimal.NewFromInt(int64(travelers.Children))
			amount := item.Amount.Mul(adults).Add(childUnit.Mul(children))
			formula := fmt.Sprintf("%s/adult * %d adults + %s/child * %d children",
				item.Amount, travelers.Adults, childUnit, travelers.Children)
			return amount, formula, nil
		}

	case types.CategoryVisa:
		if item.Basis == types.PerPerson {
			amount := item.Amount.Mul(paxDec)
			formula := fmt.Sprintf("%s/person * %d pax", item.Amount, pax)
			return amount, formula, nil
		}
	}

	return decimal.Zero, "", errors.Inputf("item %q: unsupported cost basis %s for category %s",
		item.Label, item.Basis, item.Category)
}
