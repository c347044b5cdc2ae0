package main

import (
	"fmt"

	"codeberg.org/mutker/errcode/internal/logger"
	"github.com/spf13/cobra"
)

func newRaiseCmd(a *app) *cobra.Command {
	var (
		flags  codeFlags
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "raise <value>",
		Short: "Turn an error code into an error and print its description",
		Long: `raise wraps the code in a system error and prints the error's description.
With --prefix the prefix and the attached message replace the category's
default message.`,
		Args: checkArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.resolve(a, args[0])
			if err != nil {
				return err
			}

			raised := r.systemError(prefix)
			logger.Debug().Object("code", r.code).Err(raised).Msg("Raised error code")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), raised.Error())
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&prefix, "prefix", "", "Description prefix replacing the default message")

	return cmd
}
