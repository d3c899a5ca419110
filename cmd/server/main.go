// Package main is the entry point for the gacha backend API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noctale",
	Short: "Gacha backend API",
	Long:  `Noctale serves the pack registry, catalog resolver, and gacha pull engine behind the Discord bot.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(tokenCmd)
}
