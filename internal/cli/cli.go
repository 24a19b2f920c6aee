// Package cli implements the formbuilder command-line interface.
//
// Commands operate on the configured store:
//   - template: import authoring files, list, show, export schemas, preview
//   - fill: answer a published form from the terminal
//   - responses: list, show and delete stored responses
//   - serve: browse forms and responses over HTTP
//
// Settings come from formbuilder.toml and can be overridden with flags. The
// logger is attached to the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/fill"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Option customises a CLI.
type Option func(*CLI)

// WithPromptDriver replaces the survey driver used by fill.
func WithPromptDriver(driver fill.PromptDriver) Option {
	return func(c *CLI) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithIDGenerator overrides how template and response ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(c *CLI) {
		c.newID = gen
	}
}

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
	driver fill.PromptDriver
	newID  func() string

	configPath string
	driverName string
	dataDir    string
	verbose    bool

	cfg Config
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer, opts ...Option) *CLI {
	c := &CLI{out: out, errOut: errOut}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Execute runs the formbuilder CLI on os.Args.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Build, publish and fill row-based forms",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("formbuilder %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default "+DefaultConfigFile+")")
	flags.StringVar(&c.driverName, "store", "", "store driver: memory, file, sqlite, redis, mongo")
	flags.StringVar(&c.dataDir, "data-dir", "", "directory of the file store")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.templateCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.responsesCommand())
	root.AddCommand(c.serveCommand())
	return root
}

func (c *CLI) setup(cmd *cobra.Command) error {
	path, required := c.configPath, true
	if path == "" {
		path, required = DefaultConfigFile, false
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return err
	}
	if c.driverName != "" {
		cfg.Store.Driver = c.driverName
	}
	if c.dataDir != "" {
		cfg.Store.File.Dir = c.dataDir
	}
	c.cfg = cfg

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, newLogger(c.errOut, level)))
	return nil
}

// openStore opens the configured backend. Callers close the returned store.
func (c *CLI) openStore(ctx context.Context) (*store.Store, error) {
	kv, err := store.OpenKV(ctx, c.cfg.Store)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("store opened", "driver", c.cfg.Store.Driver)
	return store.New(kv), nil
}
