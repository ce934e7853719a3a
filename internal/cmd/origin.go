package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yacchi/kasane"
)

func newOriginCommand(c *cli) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "origin <path>",
		Short: "Show which layer set the value at a dotted path",
		Long: `Show which layer set the value at a dotted path.

By default only the winning layer is printed. With --all every layer
that wrote the node is listed, lowest priority first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			layers := store.Origins(args[0])
			if len(layers) == 0 {
				return &kasane.PathNotFoundError{Path: args[0]}
			}
			if !all {
				layers = layers[len(layers)-1:]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range layers {
				f := string(l.Format)
				if f == "" {
					f = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.Kind, f, l.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every layer that wrote the value")
	return cmd
}
