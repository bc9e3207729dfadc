// Package ratefile loads the admin-editable HCL rates file.
//
// The file declares the currency rate table and the active markup rule.
// The engine itself never reads files; callers load a snapshot here and
// pass it into pricing calls.
package ratefile

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"travel-pricing/core/currency"
	"travel-pricing/core/markup"
	"travel-pricing/core/rounding"
	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// fileSchema is the HCL shape of a rates file
type fileSchema struct {
	Currencies []currencyBlock `hcl:"currency,block"`
	MarkupRule *markupBlock    `hcl:"markup_rule,block"`
}

// currencyBlock is one currency entry
type currencyBlock struct {
	Code   string  `hcl:"code,label"`
	Symbol string  `hcl:"symbol"`
	Rate   float64 `hcl:"rate"`
	Base   bool    `hcl:"base,optional"`
}

// markupBlock is the single markup rule entry
type markupBlock struct {
	Kind     string  `hcl:"kind"`
	Company  float64 `hcl:"company"`
	Agent    float64 `hcl:"agent"`
	Tax      float64 `hcl:"tax"`
	Rounding string  `hcl:"rounding,optional"`
	Active   bool    `hcl:"active"`
}

// Load parses a rates file into a rate table snapshot and markup rule.
func Load(path string) (*currency.Table, markup.Rule, error) {
	var schema fileSchema
	if err := hclsimple.DecodeFile(path, nil, &schema); err != nil {
		return nil, markup.Rule{}, errors.Parsing("failed to parse rates file "+path, err)
	}

	table, err := buildTable(schema.Currencies)
	if err != nil {
		return nil, markup.Rule{}, err
	}

	if schema.MarkupRule == nil {
		return nil, markup.Rule{}, errors.Config("rates file has no markup_rule block")
	}
	rule, err := buildRule(*schema.MarkupRule)
	if err != nil {
		return nil, markup.Rule{}, err
	}

	return table, rule, nil
}

func buildTable(blocks []currencyBlock) (*currency.Table, error) {
	if len(blocks) == 0 {
		return nil, errors.Config("rates file declares no currencies")
	}

	builder := currency.NewTableBuilder()
	for _, b := range blocks {
		if b.Base {
			builder.AddBase(types.Currency(b.Code), b.Symbol)
			continue
		}
		builder.AddCurrency(types.Currency(b.Code), b.Symbol, decimal.NewFromFloat(b.Rate))
	}
	return builder.Build()
}

func buildRule(b markupBlock) (markup.Rule, error) {
	kind, err := markup.ParseKind(b.Kind)
	if err != nil {
		return markup.Rule{}, err
	}
	strategy, err := rounding.ParseStrategy(b.Rounding)
	if err != nil {
		return markup.Rule{}, err
	}

	rule := markup.Rule{
		Kind:         kind,
		CompanyValue: decimal.NewFromFloat(b.Company),
		AgentValue:   decimal.NewFromFloat(b.Agent),
		TaxPercent:   decimal.NewFromFloat(b.Tax),
		Rounding:     strategy,
		Active:       b.Active,
	}
	if err := rule.Validate(); err != nil {
		return markup.Rule{}, err
	}
	return rule, nil
}

// SampleFile is a starter rates file written by `travel-pricing config init`
const SampleFile = `currency "USD" {
  symbol = "$"
  rate   = 1.0
  base   = true
}

currency "AED" {
  symbol = "AED"
  rate   = 3.67
}

currency "INR" {
  symbol = "Rs"
  rate   = 83.10
}

markup_rule {
  kind     = "percentage"
  company  = 10
  agent    = 5
  tax      = 5
  rounding = "nearest-ten"
  active   = true
}
`

// WriteSample writes the starter rates file, refusing to overwrite.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Config("rates file already exists at " + path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(SampleFile), 0644)
}
