package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacchi/kasane"
)

func newGetCommand(c *cli) *cobra.Command {
	var raw, showSecrets bool

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dotted path",
		Long: `Print the value at a dotted path as JSON.

The path walks nested objects, e.g. "server.tls.enabled". The empty
path "" prints the whole tree. The command fails when the path does
not resolve. Secrets such as server.token are masked unless
--show-secrets is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			get := store.GetMasked
			if showSecrets {
				get = store.Get
			}
			v, ok := get(args[0])
			if !ok {
				return &kasane.PathNotFoundError{Path: args[0]}
			}

			if s, isStr := v.AsString(); raw && isStr {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}
			return writeJSON(cmd, v)
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "print strings without JSON quoting")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print sensitive values unmasked")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
