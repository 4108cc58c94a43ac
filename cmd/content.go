package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/pathway"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the built-in teaching material",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the embedded material, rule table and pathway for errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lib, err := content.Load()
		if err != nil {
			return fmt.Errorf("content: %w", err)
		}
		if err := diagnosis.Validate(); err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		g := pathway.Leukemia()

		fmt.Fprintf(out, "✓ content: %d modules, %d questions, %d cases\n",
			len(lib.Modules), len(lib.Questions), len(lib.Cases))
		fmt.Fprintf(out, "✓ rules: %d rules\n", len(diagnosis.Rules()))
		fmt.Fprintf(out, "✓ pathway: %d nodes, %d outcomes\n", g.Len(), len(g.Outcomes()))
		return nil
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and material counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := content.Default()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Modules")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, m := range lib.Modules {
			fmt.Fprintf(out, "%-20s  %s (%d sections)\n", m.ID, m.Title, len(m.Sections))
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-20s  %d\n", "Questions", len(lib.Questions))
		fmt.Fprintf(out, "%-20s  %d\n", "Cases", len(lib.Cases))
		fmt.Fprintf(out, "%-20s  %d\n", "Flow cases", len(lib.FlowCases))
		fmt.Fprintf(out, "%-20s  %d\n", "Dysplasia cases", len(lib.DysplasiaCases))
		fmt.Fprintf(out, "%-20s  %d\n", "Cytogenetics", len(lib.Signatures))
		fmt.Fprintf(out, "%-20s  %d\n", "Lymph node zones", len(lib.Zones))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentListCmd)
}
