package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/config"
	"github.com/ramanasai/wellness/internal/logging"
	"github.com/ramanasai/wellness/internal/version"
)

var (
	cfgFile string
	cfg     config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "wellness",
	Short:        "Daily mood journal with streaks, trends and guided exercises",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFrom(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger = l.With(zap.String("cmd", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	rootCmd.Version = version.GetVersion()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/wellness/config.yaml)")
	rootCmd.AddCommand(tuiCmd, checkinCmd, statsCmd, trendsCmd, historyCmd, exercisesCmd, remindCmd, configCmd, versionCmd)
}
