// Package main is the entry point for the world engine server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "world-api",
	Short: "Hex territory world engine",
	Long:  `world-api runs the authoritative world-state engine for the hex territory game: claim/repair rules, the recharge simulation, spatial queries, and snapshot persistence.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
