package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Panda Express POS command line",
	Long:  "Operational commands for the POS backend: migrations, seeding, cron jobs, stock ledger.",
	Run: func(cmd *cobra.Command, args []string) {
		fig := figure.NewFigure("Panda POS", "slant", true)
		fig.Print()
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute runs the CLI. Registered commands from custom packages are applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
