package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mortgage-engine",
	Short: "Mortgage scenario calculations",
	Long: `mortgage-engine prices mortgage scenarios for loan officers:
payments, temporary buydowns, discount points, rate locks,
closing costs and mortgage insurance.

Run "mortgage-engine serve" for the HTTP API or use the one-shot
commands from the shell.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); defaults are used when empty")
}
