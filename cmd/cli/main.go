// Package main is the entry point for the travel-pricing CLI.
package main

import (
	"os"

	"travel-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
