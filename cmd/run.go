package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/app"
	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/llm"
	"github.com/abhisek/hemepath/internal/logging"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/selfupdate"
	"github.com/abhisek/hemepath/internal/settings"
	"github.com/abhisek/hemepath/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	lib, err := content.Default()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	deps := &screen.Deps{
		Prefs:   settings.Load(ctx, st.PreferenceRepo(), logger),
		Library: lib,
		Logger:  logger,
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI explanations will be unavailable.")
	} else {
		deps.Tutor = tutor.NewService(provider, cfg.TutorService(), logger)
	}

	logger.Info("starting", "version", version, "db", cfg.DB, "tutor", deps.Tutor != nil)
	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(app.Options{
		Deps:        deps,
		Version:     version,
		SkipWelcome: skip,
		Checker:     selfupdate.NewChecker(selfupdate.WithRepo(cfg.Update.Repo)),
	})
}
