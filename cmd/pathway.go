package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/pathway"
)

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Walk the leukemia work-up pathway",
	Long: "Walk the leukemia decision pathway non-interactively. Each --choose value is\n" +
		"the 1-based option number at the current question.",
	Example: `  hemepath pathway
  hemepath pathway --choose 1 --choose 2
  hemepath pathway --tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := pathway.Leukemia()
		out := cmd.OutOrStdout()

		if tree, _ := cmd.Flags().GetBool("tree"); tree {
			printTree(out, g, g.Start(), 0)
			return nil
		}

		choices, _ := cmd.Flags().GetIntSlice("choose")
		nav := pathway.NewNavigator(g)
		for step, c := range choices {
			if nav.Done() {
				return fmt.Errorf("choice %d: pathway already finished", step+1)
			}
			node := nav.Current()
			if err := nav.ChooseIndex(c - 1); err != nil {
				return fmt.Errorf("choice %d (%d) at %q: %w", step+1, c, node.Question, err)
			}
			fmt.Fprintf(out, "%s\n  → %s\n", node.Question, node.Options[c-1].Text)
		}

		if d, ok := nav.Diagnosis(); ok {
			label := "Working diagnosis"
			if nav.Done() {
				label = "Diagnosis"
			}
			fmt.Fprintf(out, "\n%s: %s\n", label, d)
			if info := nav.Info(); info != "" {
				fmt.Fprintf(out, "  %s\n", info)
			}
		}
		if !nav.Done() {
			node := nav.Current()
			fmt.Fprintf(out, "\n%s\n", node.Question)
			for i, o := range node.Options {
				fmt.Fprintf(out, "  %d. %s\n", i+1, o.Text)
			}
		}
		return nil
	},
}

func printTree(w io.Writer, g *pathway.Graph, n pathway.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, n.Question)
	for _, o := range n.Options {
		line := indent + "  - " + o.Text
		if o.Diagnosis != "" {
			line += " ⇒ " + o.Diagnosis
		}
		fmt.Fprintln(w, line)
		if o.Terminal() {
			continue
		}
		next, err := g.Node(o.Next)
		if err != nil {
			continue
		}
		printTree(w, g, next, depth+2)
	}
}

func init() {
	pathwayCmd.Flags().IntSlice("choose", nil, "1-based option to choose at each step (repeatable)")
	pathwayCmd.Flags().Bool("tree", false, "Print the whole decision tree")
}
