package cli

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/catalog"
	"github.com/matzehuels/pinout/pkg/errors"
)

// pickFunc shows a list and returns the chosen entry. A nil entry with
// back false means the user quit.
type pickFunc func(ctx context.Context, m EntryListModel) (entry *catalog.Entry, back bool, err error)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "browse <catalog-dir|types.toml>",
		Short: "Pick a component from a catalog and draw it",
		Long: `Pick a component from a catalog and draw it.

The catalog index lists component groups; each group lists component
files. The selected component is rendered into --output (default: the
current directory) and its description is printed.`,
		Example: `  pinout browse examples/catalog
  pinout browse examples/catalog/types.toml -f svg,png -o out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], opts, runPicker)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	opts.addFlags(cmd)

	return cmd
}

// runPicker runs m as a full-screen program.
func runPicker(ctx context.Context, m EntryListModel) (*catalog.Entry, bool, error) {
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, err
	}
	fm := final.(EntryListModel)
	return fm.Selected, fm.Back, nil
}

func (c *CLI) runBrowse(ctx context.Context, root string, opts renderOpts, pick pickFunc) error {
	popts, err := opts.pipelineOptions()
	if err != nil {
		return err
	}
	cat, err := catalog.Open(root)
	if err != nil {
		return err
	}
	c.Logger.Debug("opened catalog", "root", cat.Root, "types", len(cat.Types))

	entry, err := c.pickComponent(ctx, cat, pick)
	if err != nil || entry == nil {
		return err
	}

	desc, err := cat.Load(*entry)
	if err != nil {
		return err
	}
	cfg, _, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Run(ctx, desc, cfg, popts)
	if err != nil {
		return err
	}

	base := filepath.Join(opts.output, strings.TrimSuffix(path.Base(entry.Path), path.Ext(entry.Path)))
	paths := pathsFor(base, popts.Formats)
	if err := writeArtifacts(res.Artifacts, paths); err != nil {
		return err
	}

	printSuccess("Rendered %s", entry.Title())
	printStats(string(res.Layout.Kind), res.Stats.Pins, res.Stats.Visible, res.CacheHits == len(popts.Formats))
	for _, f := range popts.Formats {
		printFile(paths[f])
	}
	if desc.Info.Description != "" {
		printKeyValue("Description", desc.Info.Description)
	}
	if src, err := cat.Resolve(entry.Path); err == nil {
		printNextStep("Pin table", "pinout pins "+src)
	}
	return nil
}

// pickComponent walks the two-level selection. It returns nil when the
// user quits.
func (c *CLI) pickComponent(ctx context.Context, cat *catalog.Catalog, pick pickFunc) (*catalog.Entry, error) {
	if len(cat.Types) == 0 {
		printWarning("Catalog %s has no component groups", cat.Root)
		return nil, nil
	}
	for {
		group, _, err := pick(ctx, NewEntryListModel("Select Type", cat.Types, false))
		if err != nil || group == nil {
			return nil, err
		}

		entries, err := cat.Components(*group)
		if err != nil {
			if errors.Is(err, errors.ErrCodeFileNotFound) {
				printWarning("List %s is missing", group.Path)
				continue
			}
			return nil, err
		}

		entry, back, err := pick(ctx, NewEntryListModel(group.Title(), entries, true))
		if err != nil {
			return nil, err
		}
		if back {
			continue
		}
		return entry, nil
	}
}
