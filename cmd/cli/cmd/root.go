// Package cmd provides the CLI commands for travel-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"travel-pricing/adapters/ratefile"
	"travel-pricing/internal/config"
	"travel-pricing/internal/logging"
)

var (
	cfgFile   string
	ratesFile string
	verbose   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "travel-pricing",
	Short: "Price travel quotes from itemized itineraries",
	Long: `travel-pricing is the quote pricing engine of the agency portal.

It aggregates hotel, transfer, activity and visa costs across currencies,
applies the configured markup and tax chain, and produces reproducible
client-facing prices.

Examples:
  travel-pricing quote request.json
  travel-pricing estimate lead.json
  travel-pricing quote --rates rates.hcl request.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.travel-pricing/config.json)")
	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates", "", "rates file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// ratesPath resolves the rates file path from flag or config
func ratesPath() string {
	if ratesFile != "" {
		return ratesFile
	}
	return config.Get().Pricing.RatesPath
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("travel-pricing version 1.0.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configInitCmd writes a starter rates file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter rates file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ratesPath()
		if err := ratefile.WriteSample(path); err != nil {
			return err
		}
		fmt.Printf("Wrote starter rates file to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
