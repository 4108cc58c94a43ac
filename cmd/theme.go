package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hemepath/internal/logging"
	"github.com/abhisek/hemepath/internal/settings"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		prefs := settings.Load(ctx, st.PreferenceRepo(), logging.Discard())
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), prefs.Theme())
			return nil
		}

		m, err := settings.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := prefs.SetTheme(ctx, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", m)
		return nil
	},
}
