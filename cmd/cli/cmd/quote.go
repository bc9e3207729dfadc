// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"travel-pricing/adapters/ratefile"
	"travel-pricing/core/aggregate"
	"travel-pricing/core/quote"
	"travel-pricing/core/types"
	"travel-pricing/internal/config"
	"travel-pricing/internal/logging"
)

var (
	quoteFormat string
	agentMarkup float64
)

// quoteRequestFile is the JSON shape of a quote request file
type quoteRequestFile struct {
	Stays       []aggregate.Stay    `json:"stays"`
	Travelers   types.TravelerCount `json:"travelers"`
	VisaEnabled bool                `json:"visa_enabled"`
	Target      string              `json:"target"`
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <request.json>",
	Short: "Price a detailed quote from an itinerary request file",
	Long: `Aggregate an itemized itinerary and apply the configured markup chain.

The request file holds the stays, line items and traveler counts; the
rate table and markup rule come from the rates file.

Examples:
  travel-pricing quote request.json
  travel-pricing quote --format json request.json
  travel-pricing quote --agent-markup 500 request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json)")
	quoteCmd.Flags().Float64Var(&agentMarkup, "agent-markup", -1, "flat agent markup in the target currency (overrides the rule)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var reqFile quoteRequestFile
	if err := json.Unmarshal(data, &reqFile); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}

	table, rule, err := ratefile.Load(ratesPath())
	if err != nil {
		return err
	}

	target := types.Currency(reqFile.Target)
	if target == "" {
		target = types.Currency(config.Get().Pricing.DefaultCurrency)
	}

	req := quote.Request{
		Stays:       reqFile.Stays,
		Travelers:   reqFile.Travelers,
		VisaEnabled: reqFile.VisaEnabled,
		Target:      target,
		Rule:        rule,
	}
	if agentMarkup >= 0 {
		override := decimal.NewFromFloat(agentMarkup)
		req.AgentOverride = &override
	}

	logging.Info("pricing quote")
	result, err := quote.Price(req, table)
	if err != nil {
		return err
	}

	if quoteFormat == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printQuote(result, target)
	return nil
}

func printQuote(q *quote.Quote, target types.Currency) {
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                            QUOTE BREAKDOWN                              │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")

	for _, line := range q.Aggregate.Lines {
		label := line.Label
		if line.Stay != "" {
			label = line.Stay + " / " + line.Label
		}
		fmt.Printf("│ %-50s %20s │\n",
			truncate(label, 50),
			fmt.Sprintf("%s %s", line.Amount.StringFixed(2), target))
	}

	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	row := func(label string, amount string) {
		fmt.Printf("│ %-50s %20s │\n", label, amount)
	}
	b := q.Breakdown
	row("NET COST", b.NetCost.StringFixed(2))
	row("COMPANY MARKUP", b.CompanyMarkup.StringFixed(2))
	row("BUYING PRICE", b.BuyingPrice.StringFixed(2))
	row("AGENT MARKUP", b.AgentMarkup.StringFixed(2))
	row("SUBTOTAL", b.Subtotal.StringFixed(2))
	row("TAX", b.TaxAmount.StringFixed(2))
	row("FINAL PRICE", fmt.Sprintf("%s %s", b.FinalPrice.StringFixed(2), target))
	row("PER PERSON", b.PerPerson.StringFixed(2))
	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")

	for _, w := range q.Aggregate.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	for _, occ := range q.Occupancy {
		for _, v := range occ.Report.Violations {
			fmt.Printf("Occupancy (%s): %s\n", occ.Stay, v)
		}
	}
	fmt.Printf("\nSuggested rooms for this party: %d\n", q.SuggestedRooms)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
