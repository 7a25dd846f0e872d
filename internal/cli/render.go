package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
	"github.com/matzehuels/pinout/pkg/pipeline"
)

// renderOpts holds the flags shared by render and browse.
type renderOpts struct {
	output    string  // output file, base path or directory
	formats   string  // comma-separated output formats
	scale     float64 // display scale
	maxHeight float64 // SVG height clamp
	title     string  // SVG title
	noColor   bool    // ignore pin colors
	noCache   bool    // bypass the artifact cache
	refresh   bool    // re-render and overwrite cached artifacts
}

func (o *renderOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&o.scale, "scale", pipeline.DefaultScale, "display scale; PNG output is rasterized at twice this")
	cmd.Flags().Float64Var(&o.maxHeight, "max-height", 0, "clamp the SVG display height (0 = no clamp)")
	cmd.Flags().StringVar(&o.title, "title", "", "SVG title (default: component name)")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "draw every pin with the default color")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "re-render even when cached")
}

func (o renderOpts) pipelineOptions() (pipeline.Options, error) {
	formats, err := pipeline.ParseFormats(o.formats)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Formats:   formats,
		Scale:     o.scale,
		MaxHeight: o.maxHeight,
		Title:     o.title,
		NoColor:   o.noColor,
		Refresh:   o.refresh,
	}, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <component.toml>",
		Short: "Draw a component's pinout",
		Long: `Draw a component's pinout.

With a single format, --output names the file. With several formats it is
the base path and each file gets its format's extension. Without --output
files are written next to the component file.`,
		Example: `  pinout render ne555.toml
  pinout render ne555.toml -f svg,png -o out/ne555
  pinout render z80.toml -f pdf --no-color`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTOML,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	opts.addFlags(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	popts, err := opts.pipelineOptions()
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

	prog := newProgress(c.Logger)
	spin := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input))
	if !c.verbose {
		spin.Start()
	}
	res, err := runner.Execute(ctx, input, cfg, popts)
	if !c.verbose {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("Rendered " + displayName(res.Descriptor, input))

	paths := outputPaths(opts.output, input, popts.Formats)
	if err := writeArtifacts(res.Artifacts, paths); err != nil {
		return err
	}

	printSuccess("Rendered %s", displayName(res.Descriptor, input))
	printStats(string(res.Layout.Kind), res.Stats.Pins, res.Stats.Visible, res.CacheHits == len(popts.Formats))
	for _, f := range popts.Formats {
		printFile(paths[f])
	}
	return nil
}

// displayName returns the component name, or the file name when unnamed.
func displayName(d component.Descriptor, path string) string {
	if d.Info.Name != "" {
		return d.Info.Name
	}
	return filepath.Base(path)
}

// basePath derives the base output path. Without output it is input with
// its extension removed; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single
// format with an explicit output writes exactly that file.
func outputPaths(output, input string, formats []string) map[string]string {
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		return map[string]string{formats[0]: output}
	}
	return pathsFor(basePath(output, input), formats)
}

// pathsFor appends each format's extension to base.
func pathsFor(base string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes every artifact to its path, creating directories.
func writeArtifacts(artifacts map[string][]byte, paths map[string]string) error {
	for format, data := range artifacts {
		path, ok := paths[format]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "no output path for %s", format)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
