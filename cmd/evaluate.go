package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/diagnosis"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate findings against the integrated diagnosis rules",
	Long: "Evaluate morphology, flow, cytogenetics and molecular findings and print the\n" +
		"integrated diagnosis. Findings may also be given as category:tag arguments.",
	Example: `  hemepath evaluate --morphology "Hypergranular promyelocytes" --cytogenetics "t(15;17)"
  hemepath evaluate flow:"TdT+, CD19+, CD10+" cytogenetics:"t(9;22) BCR::ABL1" --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		byCat := make(map[diagnosis.Category][]string)
		for _, cat := range diagnosis.AllCategories() {
			tags, _ := cmd.Flags().GetStringArray(string(cat))
			byCat[cat] = append(byCat[cat], tags...)
		}
		for _, arg := range args {
			name, tag, ok := strings.Cut(arg, ":")
			if !ok {
				return fmt.Errorf("finding %q: want category:tag", arg)
			}
			cat, err := diagnosis.ParseCategory(name)
			if err != nil {
				return err
			}
			byCat[cat] = append(byCat[cat], tag)
		}

		for _, cat := range diagnosis.AllCategories() {
			for _, tag := range byCat[cat] {
				if !diagnosis.IsOption(cat, tag) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a known %s finding\n", tag, cat)
				}
			}
		}

		fs := diagnosis.NewFindingSet(byCat)
		all, _ := cmd.Flags().GetBool("all")
		printEvaluation(cmd.OutOrStdout(), fs, all)
		return nil
	},
}

func printEvaluation(w io.Writer, fs diagnosis.FindingSet, all bool) {
	c := diagnosis.Evaluate(fs)
	fmt.Fprintf(w, "Diagnosis:   %s\n", c.Diagnosis)
	fmt.Fprintf(w, "Confidence:  %s\n", c.Confidence)
	if c.Comment != "" {
		fmt.Fprintf(w, "Comment:     %s\n", c.Comment)
	}

	if all {
		matches := diagnosis.Matches(fs)
		if len(matches) > 1 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Also satisfied (lower precedence):")
			for _, m := range matches[1:] {
				fmt.Fprintf(w, "  - %s (%s)\n", m.Diagnosis, m.Confidence)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, diagnosis.Disclaimer)
}

func init() {
	for _, cat := range diagnosis.AllCategories() {
		evaluateCmd.Flags().StringArray(string(cat), nil,
			fmt.Sprintf("%s finding (repeatable)", cat.Title()))
	}
	evaluateCmd.Flags().Bool("all", false, "Also list lower-precedence rules that are satisfied")
}
