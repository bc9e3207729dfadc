// Package estimate provides the instant lead-stage price heuristic.
//
// It prices a trip from categorical inputs before any itemized inventory
// exists, applies its own flat uncertainty buffer and deliberately
// bypasses the markup and rounding chain of the detailed engine.
package estimate

import (
	"github.com/shopspring/decimal"

	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// Per-night room base rates by hotel grade
var hotelBaseRates = map[string]float64{
	"2 Star": 3500,
	"3 Star": 5000,
	"4 Star": 7000,
	"5 Star": 12000,
}

// Meal plan multipliers on the room rate
var mealMultipliers = map[string]float64{
	"RO": 1.0,  // room only
	"BB": 1.1,  // bed and breakfast
	"HB": 1.25, // half board
	"FB": 1.4,  // full board
	"AI": 1.6,  // all inclusive
}

// Per-pax sightseeing package rates by intensity
var sightseeingRates = map[string]float64{
	"Light":     1500,
	"Standard":  3000,
	"Intensive": 5000,
}

// transferRatePerPax is the flat round-trip transfer rate per person
var transferRatePerPax = decimal.NewFromInt(2000)

// bufferMultiplier is the fixed 15% uncertainty buffer
var bufferMultiplier = decimal.NewFromFloat(1.15)

// Inputs is the categorical trip shape for a quick estimate
type Inputs struct {
	// Destination is a free-text destination hint, informational only
	Destination string `json:"destination,omitempty"`

	// Nights is the trip length
	Nights int `json:"nights"`

	// RoomCount is the number of rooms
	RoomCount int `json:"room_count"`

	// HotelGrade is the hotel category ("2 Star".."5 Star")
	HotelGrade string `json:"hotel_grade"`

	// MealPlan is the board basis code (RO, BB, HB, FB, AI)
	MealPlan string `json:"meal_plan"`

	// Sightseeing is the touring intensity (Light, Standard, Intensive)
	Sightseeing string `json:"sightseeing"`

	// TransfersIncluded adds the flat per-pax transfer component
	TransfersIncluded bool `json:"transfers_included"`

	// Travelers is the party composition
	Travelers types.TravelerCount `json:"travelers"`
}

// Result is the quick estimate output
type Result struct {
	// Hotel is the hotel component before buffering
	Hotel decimal.Decimal `json:"hotel"`

	// Transfer is the transfer component before buffering
	Transfer decimal.Decimal `json:"transfer"`

	// Sightseeing is the sightseeing component before buffering
	Sightseeing decimal.Decimal `json:"sightseeing"`

	// Total is the buffered, whole-unit estimate
	Total decimal.Decimal `json:"total"`

	// PerPerson is the whole-unit estimate per paying pax
	PerPerson decimal.Decimal `json:"per_person"`
}

// Estimate produces an instant price from categorical inputs
func Estimate(in Inputs) (*Result, error) {
	if err := in.Travelers.Validate(); err != nil {
		return nil, err
	}
	if in.Nights < 1 {
		return nil, errors.Inputf("nights must be at least 1, got %d", in.Nights)
	}
	if in.RoomCount < 1 {
		return nil, errors.Inputf("room count must be at least 1, got %d", in.RoomCount)
	}

	baseRate, ok := hotelBaseRates[in.HotelGrade]
	if !ok {
		return nil, errors.Inputf("unknown hotel grade %q", in.HotelGrade)
	}
	mealMult, ok := mealMultipliers[in.MealPlan]
	if !ok {
		return nil, errors.Inputf("unknown meal plan %q", in.MealPlan)
	}
	sightRate, ok := sightseeingRates[in.Sightseeing]
	if !ok {
		return nil, errors.Inputf("unknown sightseeing intensity %q", in.Sightseeing)
	}

	pax := decimal.NewFromInt(int64(in.Travelers.PayingPax()))
	nights := decimal.NewFromInt(int64(in.Nights))
	rooms := decimal.NewFromInt(int64(in.RoomCount))

	hotel := decimal.NewFromFloat(baseRate).
		Mul(decimal.NewFromFloat(mealMult)).
		Mul(rooms).
		Mul(nights)

	transfer := decimal.Zero
	if in.TransfersIncluded {
		transfer = transferRatePerPax.Mul(pax)
	}

	// Longer trips are assumed to need proportionally more touring
	scalar := nights.Div(decimal.NewFromInt(3))
	if scalar.LessThan(decimal.NewFromInt(1)) {
		scalar = decimal.NewFromInt(1)
	}
	sightseeing := decimal.NewFromFloat(sightRate).Mul(scalar).Mul(pax)

	raw := hotel.Add(transfer).Add(sightseeing)
	total := raw.Mul(bufferMultiplier).Ceil()

	perPerson := decimal.Zero
	if in.Travelers.PayingPax() > 0 {
		perPerson = total.Div(pax).Ceil()
	}

	return &Result{
		Hotel:       types.RoundMoney(hotel),
		Transfer:    types.RoundMoney(transfer),
		Sightseeing: types.RoundMoney(sightseeing),
		Total:       total,
		PerPerson:   perPerson,
	}, nil
}
