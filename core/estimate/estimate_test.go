package estimate

import (
	"testing"

	"github.com/shopspring/decimal"

	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEstimateScenario(t *testing.T) {
	// 4 Star BB, 1 room, 4 nights, standard touring, transfers, 2 adults
	got, err := Estimate(Inputs{
		Destination:       "Dubai",
		Nights:            4,
		RoomCount:         1,
		HotelGrade:        "4 Star",
		MealPlan:          "BB",
		Sightseeing:       "Standard",
		TransfersIncluded: true,
		Travelers:         types.TravelerCount{Adults: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"hotel", got.Hotel, "30800"},            // 7000 * 1.1 * 1 room * 4 nights
		{"transfer", got.Transfer, "4000"},       // 2000 * 2 pax
		{"sightseeing", got.Sightseeing, "8000"}, // 3000 * 4/3 * 2 pax
		{"total", got.Total, "49220"},            // 42800 * 1.15, ceiled
		{"per person", got.PerPerson, "24610"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestEstimateShortTripScalarClamp(t *testing.T) {
	// Under 3 nights the sightseeing scalar clamps to 1
	got, err := Estimate(Inputs{
		Nights:      2,
		RoomCount:   1,
		HotelGrade:  "3 Star",
		MealPlan:    "RO",
		Sightseeing: "Light",
		Travelers:   types.TravelerCount{Adults: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Sightseeing.Equal(dec("3000")) {
		t.Errorf("sightseeing = %s, want 3000 (1500 * 1 * 2 pax)", got.Sightseeing)
	}
	// hotel 10000 + sightseeing 3000 = 13000; * 1.15 = 14950
	if !got.Total.Equal(dec("14950")) {
		t.Errorf("total = %s, want 14950", got.Total)
	}
	if !got.PerPerson.Equal(dec("7475")) {
		t.Errorf("per person = %s, want 7475", got.PerPerson)
	}
}

func TestEstimateTransfersExcluded(t *testing.T) {
	got, err := Estimate(Inputs{
		Nights:      3,
		RoomCount:   1,
		HotelGrade:  "2 Star",
		MealPlan:    "RO",
		Sightseeing: "Light",
		Travelers:   types.TravelerCount{Adults: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Transfer.IsZero() {
		t.Fatalf("transfer = %s, want 0 when not included", got.Transfer)
	}
}

func TestEstimateInfantsExcluded(t *testing.T) {
	withInfant, err := Estimate(Inputs{
		Nights:      3,
		RoomCount:   1,
		HotelGrade:  "3 Star",
		MealPlan:    "BB",
		Sightseeing: "Standard",
		Travelers:   types.TravelerCount{Adults: 2, Infants: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	without, err := Estimate(Inputs{
		Nights:      3,
		RoomCount:   1,
		HotelGrade:  "3 Star",
		MealPlan:    "BB",
		Sightseeing: "Standard",
		Travelers:   types.TravelerCount{Adults: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !withInfant.Total.Equal(without.Total) {
		t.Fatalf("infant changed the total: %s vs %s", withInfant.Total, without.Total)
	}
}

func TestEstimateValidation(t *testing.T) {
	valid := Inputs{
		Nights:      3,
		RoomCount:   1,
		HotelGrade:  "3 Star",
		MealPlan:    "BB",
		Sightseeing: "Standard",
		Travelers:   types.TravelerCount{Adults: 2},
	}

	cases := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero adults", func(in *Inputs) { in.Travelers.Adults = 0 }},
		{"zero nights", func(in *Inputs) { in.Nights = 0 }},
		{"zero rooms", func(in *Inputs) { in.RoomCount = 0 }},
		{"unknown grade", func(in *Inputs) { in.HotelGrade = "6 Star" }},
		{"unknown meal plan", func(in *Inputs) { in.MealPlan = "XX" }},
		{"unknown sightseeing", func(in *Inputs) { in.Sightseeing = "Extreme" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid
			c.mutate(&in)
			if _, err := Estimate(in); !errors.IsType(err, errors.TypeInput) {
				t.Fatalf("expected INPUT_ERROR, got %v", err)
			}
		})
	}
}
