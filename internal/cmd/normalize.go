package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacchi/kasane/jsonc"
)

func newNormalizeCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Strip comments from a JSONC document",
		Long: `Strip // and /* */ comments from a JSONC document and print the result.

String literals are copied unchanged. Without a file argument the
document is read from standard input. With --check the result is also
parsed and the command fails if it is not a JSON object.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			out := jsonc.Normalize(data)
			if check {
				if _, err := jsonc.Parse(out); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail unless the result is a JSON object")
	return cmd
}
