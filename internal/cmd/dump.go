package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yacchi/kasane/format"
)

func newDumpCommand(c *cli) *cobra.Command {
	var (
		output      string
		showSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the merged configuration",
		Long:  "Print the merged configuration. Sensitive values are masked unless --show-secrets is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			tree := store.MaskedSnapshot()
			if showSecrets {
				tree = store.Snapshot()
			}

			switch format.Format(output) {
			case format.JSON, format.JSONC:
				return writeJSON(cmd, tree)
			case format.YAML:
				data, err := yaml.Marshal(tree)
				if err != nil {
					return fmt.Errorf("failed to encode YAML: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case format.TOML:
				data, err := toml.Marshal(tree)
				if err != nil {
					return fmt.Errorf("failed to encode TOML: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return fmt.Errorf("unsupported output format %q", output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(format.JSON), "output format: json, yaml or toml")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print sensitive values unmasked")
	return cmd
}
