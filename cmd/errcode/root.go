package main

import (
	"codeberg.org/mutker/errcode/internal/config"
	"codeberg.org/mutker/errcode/internal/errors"
	"codeberg.org/mutker/errcode/internal/journal"
	"codeberg.org/mutker/errcode/internal/logger"
	"github.com/spf13/cobra"
)

// app carries what the subcommands share once the root command has loaded the
// configuration.
type app struct {
	cfg config.Provider
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "errcode",
		Short: "Inspect, raise and record error codes",
		Long: `errcode renders error codes of the errno-style (sys) and gRPC (rpc)
backends, shows how they propagate as errors, and keeps a journal of
recorded codes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.Option
			if f := cmd.Flags().Lookup("config"); f != nil && f.Changed {
				opts = append(opts, config.WithConfigFile(f.Value.String()))
			}

			cfg, err := config.Load(cmd.Flags(), opts...)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger.Init(cfg.IsDebug(), cfg.IsVerbose(), logger.IsService())
			if !cfg.IsDebug() && !cfg.IsVerbose() {
				if level, ok := logger.ParseLevel(cfg.GetLogLevel()); ok {
					logger.SetLogLevel(level)
				}
			}
			logger.Debug().
				Str("backend", cfg.GetBackend()).
				Str("journal_db", cfg.GetJournalDBPath()).
				Msg("Configuration loaded")
			return nil
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.New().Wrap(errors.ErrInvalidArgument, err)
	})

	rootCmd.AddCommand(
		newExplainCmd(a),
		newRaiseCmd(a),
		newRecordCmd(a),
		newReportCmd(a),
	)

	return rootCmd
}

func (a *app) openJournal() (journal.Journal, error) {
	return journal.New(journal.Config{
		DBPath:       a.cfg.GetJournalDBPath(),
		Enabled:      a.cfg.IsJournalEnabled(),
		BatchSize:    a.cfg.GetBatchSize(),
		BatchTimeout: a.cfg.GetBatchTimeout(),
	}, logger.Default())
}

// checkArgs reports positional argument mistakes as ErrInvalidArgument.
func checkArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.New().Wrap(errors.ErrInvalidArgument, err)
		}
		return nil
	}
}
