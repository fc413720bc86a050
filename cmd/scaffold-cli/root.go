package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/logging"
)

var (
	verbosity  int
	configPath string

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "scaffold",
		Short: "Generate projects from templates",
		Long: `scaffold materializes a project from a template directory or git
repository, rewriting placeholder names and paths, then applies the
requested plugins in dependency order.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logging.Setup(cfg.Verbosity + verbosity)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v DEBUG, -vv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .scaffold.yaml in the working directory)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(pluginsCmd)
}
