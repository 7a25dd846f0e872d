package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
	"github.com/matzehuels/pinout/pkg/pintable"
)

// pinsCommand creates the pins command.
func (c *CLI) pinsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pins <component.toml>",
		Short: "Print a component's pin table",
		Example: `  pinout pins ne555.toml
  pinout pins z80.toml -o z80.xlsx`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTOML,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := component.Load(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				return writePinTable(output, d)
			}
			fmt.Println(StyleTitle.Render(describe(d)))
			fmt.Println(renderPinTable(pintable.Rows(d)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to an .xlsx file")
	return cmd
}

func writePinTable(path string, d component.Descriptor) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return errors.New(errors.ErrCodeInvalidFormat, "pin table output must be an .xlsx file, got %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pintable.WriteXLSX(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess("Exported %d pins", len(pintable.Rows(d)))
	printFile(path)
	return nil
}

// renderPinTable formats rows as a bordered terminal table.
func renderPinTable(rows []pintable.Row) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Values()
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(pintable.Header...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return cellStyle.Foreground(colorWhite)
			default:
				return cellStyle.Foreground(colorGray)
			}
		}).
		Render()
}
