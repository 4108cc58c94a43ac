package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/hemepath/internal/config"
	"github.com/abhisek/hemepath/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hemepath",
	Short: "Hematopathology study tools in the terminal",
	Long: "Hemepath: interactive hematopathology education: integrated diagnosis, a leukemia work-up pathway,\n" +
		"lab calculators, drills and reading modules.\n\n" +
		"Educational use only. Not for clinical decision making.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/hemepath/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HEMEPATH_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("skip-welcome", false, "Start at the home menu")
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(pathwayCmd)
	rootCmd.AddCommand(ratioCmd)
	rootCmd.AddCommand(cellularityCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initErr holds a config read failure until a command needs the config.
var initErr error

func initConfig() {
	initErr = config.Init(viper.GetViper(), cfgFile)
}

// loadConfig returns the effective configuration. A --db flag wins over
// HEMEPATH_DB and the config file.
func loadConfig() (config.Config, error) {
	if initErr != nil {
		return config.Config{}, initErr
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore loads the config and opens the database it names.
func openStore(ctx context.Context) (*store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	s, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
