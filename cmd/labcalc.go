package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/labcalc"
)

var ratioCmd = &cobra.Command{
	Use:     "ratio <kappa> <lambda>",
	Short:   "Interpret a κ:λ light chain ratio",
	Example: "  hemepath ratio 85 15",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kappa, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid kappa %q: %w", args[0], err)
		}
		lambda, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid lambda %q: %w", args[1], err)
		}
		res, ok := labcalc.KappaLambda(kappa, lambda)
		if !ok {
			return errors.New("lambda must be a positive number and kappa non-negative")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "κ:λ ratio:  %.2f\n", res.Ratio)
		fmt.Fprintf(out, "Result:     %s\n", res.Kind)
		fmt.Fprintf(out, "            %s\n", res.Interpretation)
		fmt.Fprintf(out, "Reference:  %.1f-%.1f (polyclonal)\n", labcalc.KappaLambdaLow, labcalc.KappaLambdaHigh)
		return nil
	},
}

var cellularityCmd = &cobra.Command{
	Use:     "cellularity <age> <estimate>",
	Short:   "Check a marrow cellularity estimate against the age-expected range",
	Example: "  hemepath cellularity 60 40",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid age %q: %w", args[0], err)
		}
		estimate, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid estimate %q: %w", args[1], err)
		}
		res, err := labcalc.Cellularity(age, estimate)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Expected:  %d%% (range %d-%d%%)\n", res.Expected, res.Min, res.Max)
		fmt.Fprintf(out, "Estimate:  %d%%\n", estimate)
		fmt.Fprintf(out, "Verdict:   %s\n", res.Verdict)
		fmt.Fprintf(out, "           %s\n", res.Feedback)
		return nil
	},
}
