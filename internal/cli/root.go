package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/govalues/idle"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "idlecalc",
		Short:        "idlecalc: calculator for tiered idle numbers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			idle.SetLogger(slog.New(h))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			idle.SetLogger(nil)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.AddCommand(evalCmd(), tiersCmd())
	return cmd
}
