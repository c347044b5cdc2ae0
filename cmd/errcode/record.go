package main

import (
	"context"
	"fmt"

	"codeberg.org/mutker/errcode/internal/logger"
	"github.com/spf13/cobra"
)

func newRecordCmd(a *app) *cobra.Command {
	var flags codeFlags

	cmd := &cobra.Command{
		Use:   "record <value>...",
		Short: "Record error codes in the journal",
		Args:  checkArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			j, err := a.openJournal()
			if err != nil {
				return err
			}

			for _, arg := range args {
				r, err := flags.resolve(a, arg)
				if err != nil {
					j.Close()
					return err
				}
				if err := j.Record(ctx, r.backend, r.code); err != nil {
					j.Close()
					return err
				}
				logger.Info().Object("code", r.code).Msg("Recorded error code")
			}

			if err := j.Close(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d code(s)\n", len(args))
			return err
		},
	}

	flags.register(cmd)

	return cmd
}
