// Package main is the entry point for the skill simulator gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-skill-simulator/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "skill-simulator",
	Short: "Skill simulator gRPC server",
	Long:  `Skill simulator searches an equipment catalog for armor sets and weapons that satisfy requested skill levels.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
