package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show how often each recorded error code occurred",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			summaries, err := j.Report(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				_, err := fmt.Fprintln(out, "no recorded codes")
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BACKEND\tCODE\tCOUNT\tLAST SEEN\tMESSAGE")
			for _, s := range summaries {
				message := s.LastMessage
				if message == "" {
					// Fall back to the category's default message when the
					// identity still resolves.
					if r, err := resolve(s.Backend, s.Category, fmt.Sprint(s.Value), ""); err == nil {
						message = r.code.Message()
					}
				}
				fmt.Fprintf(w, "%s\t%s:%d\t%d\t%s\t%s\n",
					s.Backend, s.Category, s.Value, s.Count,
					s.LastSeen.Local().Format(time.RFC3339), message)
			}
			return w.Flush()
		},
	}
}
