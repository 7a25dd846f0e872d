// Package cli implements the pinout command-line interface.
//
// The commands load component files, lay them out and write drawings:
//   - render: draw a component as SVG, PNG, PDF or JSON
//   - validate: check component files without drawing them
//   - pins: print a component's pin table or export it as XLSX
//   - browse: pick a component from a catalog and draw it
//   - config: print the effective drawing configuration
//   - cache: manage the rendered artifact cache
//
// # Configuration
//
// The drawing configuration is looked up in order: --config, then
// $XDG_CONFIG_HOME/pinout/config.toml, then ~/.config/pinout/config.toml.
// Without any file the built-in defaults apply.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinout/pkg/buildinfo"
	"github.com/matzehuels/pinout/pkg/cache"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/pipeline"
)

const (
	// appName is used for the config and cache directories.
	appName = "pinout"

	// configFile is the file name looked up in the config directories.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config
	verbose    bool   // --verbose
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Pinout draws IC package pinout diagrams",
		Long:          `Pinout reads TOML component descriptions and draws labeled pinout diagrams of DIP, SIP, PLCC, QFP and card edge packages.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "drawing configuration file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.pinsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ca, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ca, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadConfig returns the drawing configuration and the file it came from.
// The path is empty when the built-in defaults are used.
func (c *CLI) loadConfig() (config.Config, string, error) {
	path := c.configPath
	if path == "" {
		path = findConfig()
	}
	if path == "" {
		c.Logger.Debug("using built-in configuration")
		return config.Default(), "", nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	c.Logger.Debug("loaded configuration", "path", path)
	return cfg, path, nil
}

// findConfig returns the first existing config file in the XDG locations.
func findConfig() string {
	for _, dir := range configDirs() {
		p := filepath.Join(dir, appName, configFile)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// configDirs lists the directories searched for configuration.
func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, xdg)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}
	return dirs
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pinout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
