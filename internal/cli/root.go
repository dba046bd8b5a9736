// Package cli provides the command-line interface for blastoff.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/internal/config"
	"github.com/katalvlaran/blastoff/internal/logging"
)

// state is shared by every subcommand of one root command.
type state struct {
	configPath string
	envFile    string
	logLevel   string
	logJSON    bool

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the blastoff command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "blastoff",
		Short: "Run the countdown, search and sort demonstrations.",
		Long: `blastoff runs four introductory procedures: a countdown loop, linear ` +
			`search, bubble sort and binary search. Each subcommand runs one of them ` +
			`on the classroom data or on values given as arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&st.configPath, "config", "blastoff.yaml", "YAML config file (missing file means defaults)")
	flags.StringVar(&st.envFile, "env-file", ".env", "dotenv file with BLASTOFF_* overrides")
	flags.StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&st.logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(
		newCountdownCmd(st),
		newLinearCmd(st),
		newBinaryCmd(st),
		newBubbleCmd(st),
		newDemoCmd(st),
		newTraceCmd(st),
	)
	return rootCmd
}

func (st *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath, st.envFile)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.Logger.Level = st.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Logger.JSON = st.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	st.cfg = cfg
	st.logger = logging.Init(cfg.Logger, cmd.ErrOrStderr())
	st.logger.Debug("command started", "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("blastoff failed", "err", err)
		os.Exit(1)
	}
}
