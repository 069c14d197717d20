// Package main is a command-line front end for the level-up engine,
// useful for inspecting what a level grants without running the bot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/config"
)

// cliConfig carries the environment-backed settings shared by the
// subcommands, loaded once before any of them runs
var cliConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "D&D 5e level-up inspector",
	Long:  `Inspect what a D&D 5e level grants, simulate level-ups, and browse spell candidates.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; the defaults cover local use
		_ = godotenv.Load()
		cliConfig = config.LoadCLI()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(spellsCmd)
}
