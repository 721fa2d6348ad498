// Package cli implements the reveal command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumipallolabs/reveal/internal/config"
	"github.com/lumipallolabs/reveal/internal/gallery"
	"github.com/lumipallolabs/reveal/internal/logging"
	"github.com/lumipallolabs/reveal/internal/reveal"
	"github.com/lumipallolabs/reveal/internal/settings"
)

// Version is set at build time with -ldflags "-X ...cli.Version=..."
var Version = "dev"

// app carries what the subcommands share
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config

	// Overridable in tests
	newRevealer func() *reveal.Revealer
}

func (a *app) revealer() *reveal.Revealer {
	if a.newRevealer != nil {
		return a.newRevealer()
	}
	return reveal.New()
}

func (a *app) collector() gallery.Collector {
	return gallery.NewWalker(a.cfg.Workers, a.cfg.Extensions...)
}

// settings loads the settings manager; callers must Close it
func (a *app) settings() (*settings.Manager, error) {
	m := settings.NewManager(a.cfg.SettingsFile)
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("load settings %s: %w", m.Path(), err)
	}
	return m, nil
}

// NewRootCommand builds the reveal command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: config.New()})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reveal",
		Short: "Show files in the native file manager",
		Long: `reveal opens the platform's file manager with a file selected:
Windows Explorer, the macOS Finder, or the folder via xdg-open elsewhere.

It also serves the desktop app's backend commands over stdio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.reveal.yaml)")
	flags.Bool(config.KeyDebug, false, "write debug log")
	flags.String("log-file", "", "debug log path (default debug.log)")
	flags.Int(config.KeyWorkers, 8, "parallel workers for directory walks and bridge requests")
	flags.String("settings-file", "", "settings file (default in the user config dir)")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyDebug, flags.Lookup(config.KeyDebug))
	_ = a.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeyWorkers, flags.Lookup(config.KeyWorkers))
	_ = a.v.BindPFlag(config.KeySettingsFile, flags.Lookup("settings-file"))

	rootCmd.AddCommand(
		newOpenCommand(a),
		newImagesCommand(a),
		newServeCommand(a),
		newSettingsCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

func (a *app) setup() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// REVEAL_DEBUG alone keeps the logging set up by the logging package
	if cfg.Debug {
		logging.Setup(true, cfg.LogFile)
	}
	logging.Debug.Printf("[CLI] config: %+v (file %q)", cfg, a.v.ConfigFileUsed())
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context, stderr io.Writer) int {
	return run(ctx, NewRootCommand(), stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logging.Debug.Printf("[CLI] %s: %v", rootCmd.Name(), err)
	}
	// Close on every path, including failed commands
	_ = logging.Close()

	if err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// printError renders err with its code when the code is known
func printError(w io.Writer, err error) {
	line := ErrorStyle.Render("Error:") + " " + err.Error()
	if code := reveal.Code(err); code != reveal.CodeInternal {
		line += " " + CodeStyle.Render("("+code+")")
	}
	fmt.Fprintln(w, line)
}
