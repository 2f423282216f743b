package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"simplecalc/internal/config"
	"simplecalc/internal/observability"
)

// app carries state shared by subcommands once the root PersistentPreRunE
// has loaded configuration.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "simplecalc",
		Short:         "Two-operand calculator served over HTTP, MCP or the command line",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./simplecalc.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(a),
		newComputeCmd(),
		newMCPCmd(a),
		newOperatorsCmd(),
	)

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	opts := config.Options{ConfigFile: a.cfgFile}

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	// Flags win over file and environment.
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if err := observability.InitLogger(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.File != "" {
		observability.Logger.Debug("using config file", zap.String("path", cfg.File))
	}
	return nil
}
