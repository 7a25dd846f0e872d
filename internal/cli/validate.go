package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "validate <component.toml>...",
		Short:             "Check component files without drawing them",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeTOML,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, path, err := c.loadConfig(); err != nil {
				return err
			} else if path != "" {
				printInfo("Configuration %s is valid", path)
			}
			return c.runValidate(args)
		},
	}
}

// runValidate checks every file and reports each result. It fails when
// any file is invalid.
func (c *CLI) runValidate(paths []string) error {
	failed := 0
	for _, path := range paths {
		d, err := component.Load(path)
		if err != nil {
			failed++
			c.Logger.Debug("invalid component", "path", path, "code", errors.GetCode(err))
			printError("%s: %s", path, errors.UserMessage(err))
			continue
		}
		printSuccess("%s: %s", path, describe(d))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d component files are invalid", failed, len(paths))
	}
	return nil
}

// describe summarizes a descriptor, e.g. "NE555 (DIP, 8 pins)".
func describe(d component.Descriptor) string {
	s := fmt.Sprintf("%s (%s, %d pins", d.Info.Name, d.Info.Package, d.Info.NumPins)
	if skipped := d.Info.NumPins - d.Visible(); skipped > 0 {
		s += fmt.Sprintf(", %d skipped", skipped)
	}
	return s + ")"
}
