package aggregate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"travel-pricing/core/currency"
	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTable(t *testing.T) *currency.Table {
	t.Helper()
	table, err := currency.NewTableBuilder().
		AddBase(types.CurrencyUSD, "$").
		AddCurrency(types.CurrencyAED, "AED", dec("3.67")).
		AddCurrency(types.CurrencyINR, "Rs", dec("83.10")).
		Build()
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return table
}

func TestHotelPerRoomAggregation(t *testing.T) {
	// 5000 AED per room per night, 2 rooms, 3 nights, target USD at 3.67
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  2,
			Nights: 3,
			Items: []LineItem{{
				Label:    "Atlantis Deluxe",
				Category: types.CategoryHotel,
				Basis:    types.PerRoom,
				Amount:   dec("5000"),
				Currency: types.CurrencyAED,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 4},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5000 * 2 * 3 = 30000 AED -> / 3.67
	want := dec("8174.39")
	if !got.NetCost.Equal(want) {
		t.Fatalf("net cost = %s, want %s", got.NetCost, want)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got.Lines))
	}
	if got.Lines[0].SourceAmount.Equal(dec("30000")) == false {
		t.Fatalf("source amount = %s, want 30000", got.Lines[0].SourceAmount)
	}
}

func TestHotelPerPersonAggregation(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Goa",
			Rooms:  1,
			Nights: 2,
			Items: []LineItem{{
				Label:    "Beach Resort",
				Category: types.CategoryHotel,
				Basis:    types.PerPerson,
				Amount:   dec("100"),
				Currency: types.CurrencyUSD,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 2, Children: 1, Infants: 1},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// infants excluded: 100 * 3 pax * 2 nights
	if !got.NetCost.Equal(dec("600")) {
		t.Fatalf("net cost = %s, want 600", got.NetCost)
	}
}

func TestTransferPerVehicle(t *testing.T) {
	// 7 pax, capacity 4 -> 2 vehicles at 2000 each
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  3,
			Nights: 1,
			Items: []LineItem{{
				Label:           "Airport transfer",
				Category:        types.CategoryTransfer,
				Basis:           types.PerVehicle,
				Amount:          dec("2000"),
				Currency:        types.CurrencyUSD,
				VehicleCapacity: 4,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 5, Children: 2},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NetCost.Equal(dec("4000")) {
		t.Fatalf("net cost = %s, want 4000", got.NetCost)
	}
}

func TestActivitySplitAdultChild(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  1,
			Nights: 1,
			Items: []LineItem{{
				Label:       "Desert safari",
				Category:    types.CategoryActivity,
				Basis:       types.PerPerson,
				Amount:      dec("100"),
				ChildAmount: dec("50"),
				Currency:    types.CurrencyUSD,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 2, Children: 1},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100*2 + 50*1
	if !got.NetCost.Equal(dec("250")) {
		t.Fatalf("net cost = %s, want 250", got.NetCost)
	}
}

func TestActivityChildFallsBackToAdultRate(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  1,
			Nights: 1,
			Items: []LineItem{{
				Label:    "City tour",
				Category: types.CategoryActivity,
				Basis:    types.PerPerson,
				Amount:   dec("100"),
				Currency: types.CurrencyUSD,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 1, Children: 2},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NetCost.Equal(dec("300")) {
		t.Fatalf("net cost = %s, want 300", got.NetCost)
	}
}

func TestVisaGating(t *testing.T) {
	table := testTable(t)
	visaItem := LineItem{
		Label:    "UAE visa",
		Category: types.CategoryVisa,
		Basis:    types.PerPerson,
		Amount:   dec("350"),
		Currency: types.CurrencyAED,
	}
	in := Input{
		Stays:     []Stay{{Label: "Dubai", Rooms: 1, Nights: 1, Items: []LineItem{visaItem}}},
		Travelers: types.TravelerCount{Adults: 2},
		Target:    types.CurrencyAED,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NetCost.IsZero() {
		t.Fatalf("expected visa excluded when disabled, got net %s", got.NetCost)
	}

	in.VisaEnabled = true
	got, err = Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NetCost.Equal(dec("700")) {
		t.Fatalf("net cost = %s, want 700", got.NetCost)
	}
}

func TestReferenceOnlyExcluded(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  1,
			Nights: 1,
			Items: []LineItem{
				{
					Label:         "Complimentary transfer",
					Category:      types.CategoryTransfer,
					Basis:         types.PerPerson,
					Currency:      types.CurrencyUSD,
					ReferenceOnly: true,
				},
				{
					Label:         "Mis-tagged transfer",
					Category:      types.CategoryTransfer,
					Basis:         types.PerPerson,
					Amount:        dec("75"),
					Currency:      types.CurrencyUSD,
					ReferenceOnly: true,
				},
			},
		}},
		Travelers: types.TravelerCount{Adults: 2},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NetCost.IsZero() {
		t.Fatalf("expected reference items excluded, got net %s", got.NetCost)
	}
	// the priced reference item is excluded loudly, not silently
	if len(got.Warnings) != 1 {
		t.Fatalf("expected 1 warning for the priced reference item, got %d", len(got.Warnings))
	}
	if !strings.Contains(got.Warnings[0], "Mis-tagged transfer") {
		t.Fatalf("warning does not name the item: %s", got.Warnings[0])
	}
}

func TestMultiStaySum(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{
			{
				Label:  "Dubai",
				Rooms:  1,
				Nights: 2,
				Items: []LineItem{{
					Label:    "Hotel A",
					Category: types.CategoryHotel,
					Basis:    types.PerRoom,
					Amount:   dec("367"),
					Currency: types.CurrencyAED,
				}},
			},
			{
				Label:  "Abu Dhabi",
				Rooms:  2,
				Nights: 1,
				Items: []LineItem{{
					Label:    "Hotel B",
					Category: types.CategoryHotel,
					Basis:    types.PerRoom,
					Amount:   dec("100"),
					Currency: types.CurrencyUSD,
				}},
			},
		},
		Travelers: types.TravelerCount{Adults: 2},
		Target:    types.CurrencyUSD,
	}

	got, err := Aggregate(in, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 367*2 AED = 734 AED = 200 USD; plus 100*2 = 200 USD
	if !got.NetCost.Equal(dec("400")) {
		t.Fatalf("net cost = %s, want 400", got.NetCost)
	}
	if len(got.ByCategory) != 1 {
		t.Fatalf("expected a single category bucket, got %v", got.ByCategory)
	}
	if !got.ByCategory["hotel"].Equal(dec("400")) {
		t.Fatalf("hotel bucket = %s, want 400", got.ByCategory["hotel"])
	}
}

func TestUnknownItemCurrency(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Bangkok",
			Rooms:  1,
			Nights: 1,
			Items: []LineItem{{
				Label:    "Hotel",
				Category: types.CategoryHotel,
				Basis:    types.PerRoom,
				Amount:   dec("1000"),
				Currency: "THB",
			}},
		}},
		Travelers: types.TravelerCount{Adults: 2},
		Target:    types.CurrencyUSD,
	}

	_, err := Aggregate(in, table)
	if !errors.IsType(err, errors.TypeUnknownCurrency) {
		t.Fatalf("expected UNKNOWN_CURRENCY, got %v", err)
	}
}

func TestUnknownTargetCurrency(t *testing.T) {
	table := testTable(t)
	in := Input{
		Travelers: types.TravelerCount{Adults: 1},
		Target:    "XXX",
	}
	_, err := Aggregate(in, table)
	if !errors.IsType(err, errors.TypeUnknownCurrency) {
		t.Fatalf("expected UNKNOWN_CURRENCY for target, got %v", err)
	}
}

func TestUnsupportedBasis(t *testing.T) {
	table := testTable(t)
	in := Input{
		Stays: []Stay{{
			Label:  "Dubai",
			Rooms:  1,
			Nights: 1,
			Items: []LineItem{{
				Label:    "Hotel",
				Category: types.CategoryHotel,
				Basis:    types.PerVehicle,
				Amount:   dec("1000"),
				Currency: types.CurrencyUSD,
			}},
		}},
		Travelers: types.TravelerCount{Adults: 2},
		Target:    types.CurrencyUSD,
	}
	_, err := Aggregate(in, table)
	if !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("expected INPUT_ERROR for hotel per-vehicle, got %v", err)
	}
}

func TestTravelersValidated(t *testing.T) {
	table := testTable(t)
	in := Input{
		Travelers: types.TravelerCount{Adults: 0},
		Target:    types.CurrencyUSD,
	}
	_, err := Aggregate(in, table)
	if !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("expected INPUT_ERROR for zero adults, got %v", err)
	}
}
