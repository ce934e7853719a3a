// Package cmd implements the kasane command line tool.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yacchi/kasane"
	"github.com/yacchi/kasane/internal/logging"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	configs    []string
	noDiscover bool
	app        string
	verbosity  int

	// overrides collects canonical override tokens in command-line order.
	overrides []string

	logger zerolog.Logger
	store  *kasane.Store
}

// NewRootCommand creates the kasane command tree.
func NewRootCommand(version string) *cobra.Command {
	c := &cli{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "kasane",
		Short: "Inspect layered editor configuration",
		Long: `kasane resolves the layered configuration of the berkide editor.

Layers are applied in ascending priority:

  built-in defaults
  config.jsonc next to the executable (.berkide/)
  config.jsonc in the XDG config home (berkide/)
  config.jsonc in the home directory (~/.berkide/)
  files given with --config, in order
  command-line overrides such as --port=8080 or --remote`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = logging.Setup(c.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(c.logger, cmd.Name(), args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&c.configs, "config", "c", nil, "additional configuration file (repeatable, highest priority last)")
	flags.BoolVar(&c.noDiscover, "no-discover", false, "do not load configuration files from the standard directories")
	flags.StringVar(&c.app, "app", kasane.DefaultAppName, "application name used to discover configuration directories")
	flags.CountVarP(&c.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	for _, f := range kasane.OverrideFlags() {
		pf := flags.VarPF(&overrideValue{flag: f, tokens: &c.overrides}, f.Name, "", f.Usage)
		if !f.TakesValue {
			pf.NoOptDefVal = "true"
		}
	}

	rootCmd.AddCommand(
		newGetCommand(c),
		newDumpCommand(c),
		newNormalizeCommand(),
		newLayersCommand(c),
		newOriginCommand(c),
		newServerCommand(c),
	)

	return rootCmd
}

// overrideValue is a pflag.Value that records each occurrence of an
// override flag as the token ApplyOverrides understands.
type overrideValue struct {
	flag   kasane.OverrideFlag
	tokens *[]string
	value  string
}

func (v *overrideValue) String() string {
	return v.value
}

func (v *overrideValue) Set(s string) error {
	if !v.flag.TakesValue {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", s)
		}
		if !on {
			return nil
		}
	}
	v.value = s
	*v.tokens = append(*v.tokens, v.flag.Token(s))
	return nil
}

func (v *overrideValue) Type() string {
	if v.flag.TakesValue {
		return "string"
	}
	return "bool"
}
