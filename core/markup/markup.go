// Package markup applies the two-tier commercial markup and tax chain.
//
// Stage order is contractual: the agent markup is computed on the
// buying price (net plus company markup), never on the raw net cost.
package markup

import (
	"github.com/shopspring/decimal"

	"travel-pricing/core/rounding"
	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// Kind selects how markup values are interpreted
type Kind int

const (
	// Percentage treats markup values as percentages of the stage input
	Percentage Kind = iota

	// Flat treats markup values as a per-pax amount in the target currency
	Flat
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Percentage:
		return "percentage"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseKind converts a configured kind name into a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "percentage", "percent":
		return Percentage, nil
	case "flat":
		return Flat, nil
	default:
		return Percentage, errors.Inputf("unknown markup kind %q", name)
	}
}

// Rule is the admin-configured pricing rule applied to every quote
type Rule struct {
	// Kind selects percentage or flat markup interpretation
	Kind Kind `json:"kind"`

	// CompanyValue is the first-tier (operator) markup value
	CompanyValue decimal.Decimal `json:"company_value"`

	// AgentValue is the second-tier (reseller) markup value
	AgentValue decimal.Decimal `json:"agent_value"`

	// TaxPercent is the tax rate applied to the subtotal
	TaxPercent decimal.Decimal `json:"tax_percent"`

	// Rounding is the final price rounding strategy
	Rounding rounding.Strategy `json:"rounding"`

	// Active gates whether the rule may be used for pricing
	Active bool `json:"active"`
}

// Validate checks the rule invariants
func (r Rule) Validate() error {
	if r.CompanyValue.IsNegative() {
		return errors.Inputf("company markup must be non-negative, got %s", r.CompanyValue)
	}
	if r.AgentValue.IsNegative() {
		return errors.Inputf("agent markup must be non-negative, got %s", r.AgentValue)
	}
	if r.TaxPercent.IsNegative() || r.TaxPercent.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return errors.Inputf("tax percentage must be in [0, 100), got %s", r.TaxPercent)
	}
	return nil
}

// Breakdown reports every intermediate value of the markup chain so the
// UI can render an itemized view, not just the final price.
type Breakdown struct {
	// NetCost is the aggregated supplier cost in the target currency
	NetCost decimal.Decimal `json:"net_cost"`

	// CompanyMarkup is the first-tier markup amount
	CompanyMarkup decimal.Decimal `json:"company_markup"`

	// BuyingPrice is net cost plus company markup
	BuyingPrice decimal.Decimal `json:"buying_price"`

	// AgentMarkup is the second-tier markup amount
	AgentMarkup decimal.Decimal `json:"agent_markup"`

	// Subtotal is the pre-tax selling price
	Subtotal decimal.Decimal `json:"subtotal"`

	// TaxAmount is the tax applied on the subtotal
	TaxAmount decimal.Decimal `json:"tax_amount"`

	// FinalPrice is the rounded, client-facing price
	FinalPrice decimal.Decimal `json:"final_price"`

	// PerPerson is the final price divided across paying pax
	PerPerson decimal.Decimal `json:"per_person"`
}

var oneHundred = decimal.NewFromInt(100)

// Price runs the markup chain on an aggregated net cost.
//
// agentOverride, when non-nil, is an agent-entered flat markup already
// expressed in the target currency; it takes precedence over the rule's
// own agent markup formula.
func Price(netCost decimal.Decimal, rule Rule, totalPax int, agentOverride *decimal.Decimal) (Breakdown, error) {
	if !rule.Active {
		return Breakdown{}, errors.InactiveRule()
	}
	if err := rule.Validate(); err != nil {
		return Breakdown{}, err
	}
	if netCost.IsNegative() {
		return Breakdown{}, errors.Inputf("net cost must be non-negative, got %s", netCost)
	}

	pax := decimal.NewFromInt(int64(totalPax))

	var companyMarkup decimal.Decimal
	if rule.Kind == Percentage {
		companyMarkup = netCost.Mul(rule.CompanyValue).Div(oneHundred)
	} else {
		companyMarkup = rule.CompanyValue.Mul(pax)
	}
	buyingPrice := netCost.Add(companyMarkup)

	var agentMarkup decimal.Decimal
	switch {
	case agentOverride != nil:
		agentMarkup = *agentOverride
	case rule.Kind == Percentage:
		agentMarkup = buyingPrice.Mul(rule.AgentValue).Div(oneHundred)
	default:
		agentMarkup = rule.AgentValue.Mul(pax)
	}
	if agentMarkup.IsNegative() {
		return Breakdown{}, errors.Inputf("agent markup override must be non-negative, got %s", agentMarkup)
	}

	subtotal := buyingPrice.Add(agentMarkup)
	taxAmount := subtotal.Mul(rule.TaxPercent).Div(oneHundred)
	rawFinal := subtotal.Add(taxAmount)
	finalPrice := rounding.Apply(rawFinal, rule.Rounding)

	perPerson := decimal.Zero
	if totalPax > 0 {
		perPerson = types.RoundMoney(finalPrice.Div(pax))
	}

	return Breakdown{
		NetCost:       types.RoundMoney(netCost),
		CompanyMarkup: types.RoundMoney(companyMarkup),
		BuyingPrice:   types.RoundMoney(buyingPrice),
		AgentMarkup:   types.RoundMoney(agentMarkup),
		Subtotal:      types.RoundMoney(subtotal),
		TaxAmount:     types.RoundMoney(taxAmount),
		FinalPrice:    finalPrice,
		PerPerson:     perPerson,
	}, nil
}
