package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/wellness/internal/config"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration, or write a default one",
	Long: `Examples:
	wellness config            # effective settings after file and WELLNESS_* overrides
	wellness config --init     # write defaults to ~/.config/wellness/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configInit {
			path := cfgFile
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			logger.Info("wrote default config")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		}
		b, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file if none exists")
}
