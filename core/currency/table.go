// Package currency provides immutable exchange rate table snapshots.
//
// A Table is a point-in-time capture of the admin-managed rate screen.
// It never mutates after Build, so a pricing call can hold it for the
// whole computation without observing a partial update.
package currency

import (
	"sort"

	"github.com/shopspring/decimal"

	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// Entry describes a single currency in the table
type Entry struct {
	// Code is the ISO-style currency code
	Code types.Currency `json:"code"`

	// Symbol is the display symbol shown to clients
	Symbol string `json:"symbol"`

	// RateToBase is how many units of this currency equal one base unit
	RateToBase decimal.Decimal `json:"rate_to_base"`

	// IsBase marks the pivot currency; its rate is conventionally 1
	IsBase bool `json:"is_base"`
}

// Table is an immutable rate table snapshot
type Table struct {
	entries map[types.Currency]Entry
	base    types.Currency
}

// TableBuilder assembles a rate table snapshot
type TableBuilder struct {
	entries []Entry
}

// NewTableBuilder creates a new builder
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// AddCurrency adds a non-base currency
func (b *TableBuilder) AddCurrency(code types.Currency, symbol string, rateToBase decimal.Decimal) *TableBuilder {
	b.entries = append(b.entries, Entry{
		Code:       code,
		Symbol:     symbol,
		RateToBase: rateToBase,
	})
	return b
}

// AddBase adds the base (pivot) currency with rate 1
func (b *TableBuilder) AddBase(code types.Currency, symbol string) *TableBuilder {
	b.entries = append(b.entries, Entry{
		Code:       code,
		Symbol:     symbol,
		RateToBase: decimal.NewFromInt(1),
		IsBase:     true,
	})
	return b
}

// Build validates the entries and seals the snapshot.
// Exactly one base currency is required and every rate must be positive.
func (b *TableBuilder) Build() (*Table, error) {
	t := &Table{entries: make(map[types.Currency]Entry, len(b.entries))}

	for _, e := range b.entries {
		if e.Code == "" {
			return nil, errors.Config("currency entry with empty code")
		}
		if _, dup := t.entries[e.Code]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate currency entry %q", e.Code)
		}
		if e.RateToBase.LessThanOrEqual(decimal.Zero) {
			return nil, errors.InvalidRate(string(e.Code), e.RateToBase.String())
		}
		if e.IsBase {
			if t.base != "" {
				return nil, errors.Newf(errors.TypeConfig, "multiple base currencies: %q and %q", t.base, e.Code)
			}
			t.base = e.Code
		}
		t.entries[e.Code] = e
	}

	if t.base == "" {
		return nil, errors.Config("rate table has no base currency")
	}
	return t, nil
}

// Base returns the base currency code
func (t *Table) Base() types.Currency {
	return t.base
}

// Has reports whether the table contains the code
func (t *Table) Has(code types.Currency) bool {
	_, ok := t.entries[code]
	return ok
}

// Entry looks up a currency entry
func (t *Table) Entry(code types.Currency) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Codes returns all currency codes in sorted order
func (t *Table) Codes() []types.Currency {
	codes := make([]types.Currency, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Entries returns all entries in code order
func (t *Table) Entries() []Entry {
	codes := t.Codes()
	out := make([]Entry, 0, len(codes))
	for _, c := range codes {
		out = append(out, t.entries[c])
	}
	return out
}

// rateOf returns the rate for a code, validating presence and positivity
func (t *Table) rateOf(code types.Currency) (decimal.Decimal, error) {
	e, ok := t.entries[code]
	if !ok {
		return decimal.Zero, errors.UnknownCurrency(string(code))
	}
	if e.RateToBase.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.InvalidRate(string(code), e.RateToBase.String())
	}
	return e.RateToBase, nil
}

// Convert converts an amount between two currencies via the base currency.
// A same-currency conversion returns the amount unchanged without touching
// the base, so it is exact even for codes absent from the table rates.
func (t *Table) Convert(amount decimal.Decimal, from, to types.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	fromRate, err := t.rateOf(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := t.rateOf(to)
	if err != nil {
		return decimal.Zero, err
	}

	inBase := amount.Div(fromRate)
	return inBase.Mul(toRate), nil
}
