package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLayersCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the applied configuration layers",
		Long:  "List the layers merged into the configuration, lowest priority first. Missing files are not listed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tKIND\tFORMAT\tNAME")
			for i, l := range store.Layers() {
				f := string(l.Format)
				if f == "" {
					f = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, l.Kind, f, l.Name)
			}
			return w.Flush()
		},
	}
}
