package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	dataPath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:          "solarcalc",
		Short:        "Estimate residential solar panel size, cost and payback",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "solar hours CSV (defaults to locations.csvPath from config)")

	rootCmd.AddCommand(estimateCmd(opts))
	rootCmd.AddCommand(hoursCmd(opts))
	rootCmd.AddCommand(locationsCmd(opts))
	rootCmd.AddCommand(plansCmd())
	return rootCmd
}

func estimateCmd(opts *globalOptions) *cobra.Command {
	var (
		in         estimateFlags
		reportPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Size a system and project its 25 year payback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd.Context(), cmd.OutOrStdout(), opts, in.input(), reportPath, asJSON)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.state, "state", "", "state code, e.g. TX")
	flags.StringVar(&in.city, "city", "", "city name as listed in the table")
	flags.StringVar(&in.period, "period", "year", "sun hours period: year, summer or winter")
	flags.Float64Var(&in.price, "price", 0, "electricity cost in $/kWh")
	flags.Float64Var(&in.usage, "usage", 0, "average monthly usage in kWh")
	flags.IntVar(&in.offset, "offset", 100, "share of usage to cover, 0-100")
	flags.BoolVar(&in.credit, "credit", true, "apply the federal solar tax credit")
	flags.StringVar(&in.loan, "loan", "Cash", `loan plan label, e.g. "10 Year 2.99%"`)
	flags.StringVarP(&reportPath, "report", "o", "", "also write a .pdf or .xlsx report to this path")
	flags.BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func hoursCmd(opts *globalOptions) *cobra.Command {
	var state, city, period string

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Look up average daily sun hours for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHours(cmd.Context(), cmd.OutOrStdout(), opts, period, state, city)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "state code")
	cmd.Flags().StringVar(&city, "city", "", "city name")
	cmd.Flags().StringVar(&period, "period", "year", "year, summer or winter")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func locationsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locations [state]",
		Short: "List states, or the cities of one state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := ""
			if len(args) == 1 {
				state = args[0]
			}
			return runLocations(cmd.Context(), cmd.OutOrStdout(), opts, state)
		},
	}
}

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the financing plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLoanPlans(cmd.OutOrStdout())
			return nil
		},
	}
}
