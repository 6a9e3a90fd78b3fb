package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"mortgage-engine/config"
	"mortgage-engine/domain"
	"mortgage-engine/service"
)

var paymentInput domain.LoanScenario

var paymentCmd = &cobra.Command{
	Use:     "payment",
	Short:   "Quote the monthly payment of a fixed-rate loan",
	Example: `  mortgage-engine payment --amount 400000 --rate 7 --years 30`,
	RunE:    runPayment,
}

func init() {
	paymentCmd.Flags().Float64Var(&paymentInput.LoanAmount, "amount", 0, "loan amount in USD")
	paymentCmd.Flags().Float64Var(&paymentInput.Rate, "rate", 0, "annual interest rate in percent")
	paymentCmd.Flags().IntVar(&paymentInput.TermYears, "years", 30, "loan term in years")
	_ = paymentCmd.MarkFlagRequired("amount")
	_ = paymentCmd.MarkFlagRequired("rate")

	rootCmd.AddCommand(paymentCmd)
}

func runPayment(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	quote, err := service.NewLoanService(nil, logger).CalculateLoan(paymentInput)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}
