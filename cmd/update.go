package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/hemepath/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	Example: `  hemepath update --check
  hemepath update --to v0.4.1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		target, _ := cmd.Flags().GetString("to")
		if target != "" && !semver.IsValid(target) {
			return fmt.Errorf("--to %q is not a release tag like v1.2.3", target)
		}

		checker := selfupdate.NewChecker(
			selfupdate.WithRepo(cfg.Update.Repo),
			selfupdate.WithTimeout(updateTimeout),
		)
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		if only, _ := cmd.Flags().GetBool("check"); only {
			res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return fmt.Errorf("check for update: %w", err)
			}
			if !res.UpdateAvailable {
				fmt.Fprintf(out, "hemepath %s is the latest release.\n", version)
				return nil
			}
			fmt.Fprintf(out, "hemepath %s is available (running %s)\n%s\n", res.LatestVersion, version, res.ReleaseURL)
			return nil
		}

		err = checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version, TargetVersion: target},
			func(p selfupdate.UpdateProgress) {
				fmt.Fprintf(out, "%-8s %s\n", p.Stage, p.Message)
			})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "This is a development build; install a release build to use update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintf(out, "hemepath %s is the latest release.\n", version)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nTry running: sudo hemepath update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only report whether a newer release exists")
	updateCmd.Flags().String("to", "", "Install this release tag instead of the latest")
}
