// Package main - Entry point for the travel pricing server
package main

import (
	"flag"
	"fmt"
	"log"

	"travel-pricing/adapters/ratefile"
	"travel-pricing/api"
	"travel-pricing/core/types"
	"travel-pricing/internal/config"
	"travel-pricing/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "server address (overrides config)")
	ratesPath := flag.String("rates", "", "rates file path (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}
	rates := cfg.Pricing.RatesPath
	if *ratesPath != "" {
		rates = *ratesPath
	}

	table, rule, err := ratefile.Load(rates)
	if err != nil {
		log.Fatalf("failed to load rates file: %v", err)
	}

	server := api.NewServer(version, table, rule, types.Currency(cfg.Pricing.DefaultCurrency))

	fmt.Printf("Travel Pricing Server v%s\n", version)
	fmt.Printf("   listening on %s\n", listenAddr)
	fmt.Printf("   rates from %s (%d currencies, base %s)\n", rates, len(table.Codes()), table.Base())

	if err := server.ListenAndServe(listenAddr); err != nil {
		log.Fatal(err)
	}
}
