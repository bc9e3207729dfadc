// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"travel-pricing/core/estimate"
)

var estimateFormat string

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <lead.json>",
	Short: "Produce an instant price from categorical trip inputs",
	Long: `Price a lead-stage trip without an itemized itinerary.

The lead file holds the hotel grade, meal plan, sightseeing intensity,
room count, nights and traveler counts. The estimate applies a flat 15%
uncertainty buffer instead of the markup chain.

Examples:
  travel-pricing estimate lead.json
  travel-pricing estimate --format json lead.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "cli", "output format (cli, json)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read lead file: %w", err)
	}

	var inputs estimate.Inputs
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("failed to parse lead file: %w", err)
	}

	result, err := estimate.Estimate(inputs)
	if err != nil {
		return err
	}

	if estimateFormat == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                           QUICK ESTIMATE                                │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-50s %20s │\n", "HOTEL", result.Hotel.StringFixed(2))
	fmt.Printf("│ %-50s %20s │\n", "TRANSFERS", result.Transfer.StringFixed(2))
	fmt.Printf("│ %-50s %20s │\n", "SIGHTSEEING", result.Sightseeing.StringFixed(2))
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-50s %20s │\n", "ESTIMATED TOTAL (incl. 15% buffer)", result.Total.StringFixed(0))
	fmt.Printf("│ %-50s %20s │\n", "PER PERSON", result.PerPerson.StringFixed(0))
	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")

	return nil
}
