package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type codeFlags struct {
	backend  string
	category string
	message  string
}

func (f *codeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Category of the value (default: the backend's default category)")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "Message to attach to the code")
}

func (f *codeFlags) resolve(a *app, arg string) (*resolved, error) {
	return resolve(a.cfg.GetBackend(), f.category, arg, f.message)
}

func newExplainCmd(a *app) *cobra.Command {
	var (
		flags  codeFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "explain <value>",
		Short: "Show how an error code renders and compares",
		Example: `  errcode explain ENOENT
  errcode explain --category system -m "open errcode.toml" 2
  errcode --backend rpc explain --category http 404`,
		Args: checkArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.resolve(a, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(r.code)
			}

			var errText string
			if err := r.systemError(""); err != nil {
				errText = err.Error()
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "backend:\t%s\n", r.backend)
			fmt.Fprintf(w, "code:\t%s\n", r.code)
			fmt.Fprintf(w, "message:\t%s\n", r.code.Message())
			fmt.Fprintf(w, "attached:\t%s\n", r.code.What())
			fmt.Fprintf(w, "condition:\t%s\n", r.condition)
			fmt.Fprintf(w, "failed:\t%t\n", r.code.Failed())
			fmt.Fprintf(w, "hash:\t%016x\n", r.code.Hash())
			fmt.Fprintf(w, "error:\t%s\n", errText)
			return w.Flush()
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the code as JSON")

	return cmd
}
