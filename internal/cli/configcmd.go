package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective drawing configuration as TOML",
		Long: `Print the effective drawing configuration as TOML.

The output is a complete configuration file; save it to
~/.config/pinout/config.toml to customize the drawings.`,
		Example: `  pinout config --default > ~/.config/pinout/config.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if !defaults {
				loaded, path, err := c.loadConfig()
				if err != nil {
					return err
				}
				cfg = loaded
				if path != "" {
					c.Logger.Info("using configuration", "path", path)
				}
			}
			return config.Encode(os.Stdout, cfg)
		},
	}

	cmd.Flags().BoolVar(&defaults, "default", false, "print the built-in defaults, ignoring config files")
	return cmd
}
