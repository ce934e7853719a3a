package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServerCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Print the effective server and inspector settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			srv, warnings := store.Server()
			in := store.Inspector()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "http:      %s\n", srv.HTTPAddr())
			fmt.Fprintf(out, "websocket: %s\n", srv.WSAddr())
			fmt.Fprintf(out, "auth:      %s\n", onOff(srv.RequireAuth, "required", "none"))
			if srv.TLS.Enabled {
				fmt.Fprintf(out, "tls:       cert=%s key=%s ca=%s\n", srv.TLS.Cert, srv.TLS.Key, srv.TLS.CA)
			} else {
				fmt.Fprintln(out, "tls:       disabled")
			}
			if in.Enabled {
				fmt.Fprintf(out, "inspector: port %d%s\n", in.Port, onOff(in.BreakOnStart, ", break on start", ""))
			} else {
				fmt.Fprintln(out, "inspector: disabled")
			}

			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return nil
		},
	}
}

func onOff(b bool, on, off string) string {
	if b {
		return on
	}
	return off
}
