package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/llm"
	"github.com/abhisek/hemepath/internal/logging"
	"github.com/abhisek/hemepath/internal/tutor"
)

var explainCmd = &cobra.Command{
	Use:   "explain [diagnosis]",
	Short: "Ask the AI tutor to explain a diagnosis, case or abnormality",
	Example: `  hemepath explain "Acute Promyelocytic Leukemia" --fact "Cytogenetics: t(15;17)"
  hemepath explain --signature t-15-17
  hemepath explain --case case-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, err := explainTopic(cmd, args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, cfg, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger, closer, err := logging.Open(cfg.Log.File, level)
		if err != nil {
			return err
		}
		defer closer.Close()

		provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := tutor.NewService(provider, cfg.TutorService(), logger)

		e, err := svc.Explain(ctx, topic)
		if err != nil {
			return err
		}
		printExplanation(cmd.OutOrStdout(), e)
		return nil
	},
}

func explainTopic(cmd *cobra.Command, args []string) (tutor.Topic, error) {
	sigID, _ := cmd.Flags().GetString("signature")
	caseID, _ := cmd.Flags().GetString("case")
	facts, _ := cmd.Flags().GetStringArray("fact")

	switch {
	case sigID != "" || caseID != "":
		if len(args) > 0 {
			return tutor.Topic{}, errors.New("give either a diagnosis or --signature/--case, not both")
		}
		lib, err := content.Default()
		if err != nil {
			return tutor.Topic{}, err
		}
		if sigID != "" {
			s, err := lib.SignatureByID(sigID)
			if err != nil {
				return tutor.Topic{}, fmt.Errorf("signature %q: %w", sigID, err)
			}
			return tutor.FromSignature(s), nil
		}
		for _, c := range lib.Cases {
			if c.ID == caseID {
				return tutor.FromCase(c), nil
			}
		}
		return tutor.Topic{}, fmt.Errorf("case %q: %w", caseID, content.ErrNotFound)
	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return tutor.Topic{Kind: tutor.KindFreeform, Title: strings.TrimSpace(args[0]), Facts: facts}, nil
	default:
		return tutor.Topic{}, errors.New("nothing to explain: give a diagnosis, --signature or --case")
	}
}

func printExplanation(w io.Writer, e *tutor.Explanation) {
	fmt.Fprintln(w, e.Topic.Title)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, e.Summary)
	if len(e.KeyPoints) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Key points")
		for _, p := range e.KeyPoints {
			fmt.Fprintf(w, "  • %s\n", p)
		}
	}
	if len(e.Pitfalls) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Pitfalls")
		for _, p := range e.Pitfalls {
			fmt.Fprintf(w, "  ! %s\n", p)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, diagnosis.Disclaimer)
}

func init() {
	explainCmd.Flags().StringArray("fact", nil, "Supporting finding to include (repeatable)")
	explainCmd.Flags().String("signature", "", "Explain a cytogenetic abnormality by id")
	explainCmd.Flags().String("case", "", "Explain an integrated case by id")
}
