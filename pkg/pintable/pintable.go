// Package pintable flattens a component's pin map into ordered rows for
// terminal tables and spreadsheet export.
package pintable

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
)

// SheetName is the worksheet written by [WriteXLSX].
const SheetName = "Pins"

// Header holds the column titles, in [Row.Values] order.
var Header = []string{"Pin", "Label", "Name", "Direction", "Flags", "Color"}

// Row is one pin of a component.
type Row struct {
	Position int
	Label    string // number shown in the drawing
	Name     string
	Dir      component.Direction
	Flags    []component.Flag
	Color    string
}

// Values returns the row as strings in [Header] order.
func (r Row) Values() []string {
	flags := make([]string, len(r.Flags))
	for i, f := range r.Flags {
		flags[i] = string(f)
	}
	return []string{
		strconv.Itoa(r.Position),
		r.Label,
		r.Name,
		string(r.Dir),
		strings.Join(flags, ","),
		r.Color,
	}
}

// Rows returns the pins of desc sorted by position. SKIP slots are left out.
func Rows(desc component.Descriptor) []Row {
	rows := make([]Row, 0, len(desc.Pins))
	for _, pos := range slices.Sorted(maps.Keys(desc.Pins)) {
		p := desc.Pins[pos]
		if p.Skip() {
			continue
		}
		label := strconv.Itoa(pos)
		if p.Num != "" {
			label = string(p.Num)
		}
		rows = append(rows, Row{
			Position: pos,
			Label:    label,
			Name:     p.Name,
			Dir:      p.Direction(),
			Flags:    p.Flags,
			Color:    p.Color,
		})
	}
	return rows
}

// WriteXLSX writes the pin table of desc as a single-sheet workbook.
func WriteXLSX(w io.Writer, desc component.Descriptor) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create header style")
	}
	if err := setRow(f, 1, Header); err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "style header")
	}

	for i, r := range Rows(desc) {
		if err := setRow(f, i+2, r.Values()); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetName, "C", "C", 18); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "size columns")
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write workbook")
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "row %d", row)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "row %d", row)
	}
	return nil
}
