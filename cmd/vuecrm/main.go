package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/vuecrm/internal/app"
	"github.com/five82/vuecrm/internal/appearance"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(&cli{isTTY: stdioIsTerminal})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vuecrm: %v\n", err)
		return 1
	}
	return 0
}

// cli carries persistent flag values and the hooks tests replace.
type cli struct {
	configPath string
	prefsPath  string
	verbose    bool

	isTTY  func() bool
	source appearance.Source // nil follows the configured OS source
}

func (c *cli) options() app.Options {
	return app.Options{
		ConfigPath: c.configPath,
		PrefsPath:  c.prefsPath,
		Verbose:    c.verbose,
		Source:     c.source,
	}
}

// withServices runs fn against a started dependency graph.
func (c *cli) withServices(cmd *cobra.Command, fn func(io.Writer, app.Services) error) error {
	return app.WithServices(cmd.Context(), c.options(), func(_ context.Context, svc app.Services) error {
		return fn(cmd.OutOrStdout(), svc)
	})
}

var errNoTerminal = errors.New("the interactive UI needs a terminal; try 'vuecrm contacts list'")

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "vuecrm",
		Short: "Terminal CRM for contacts and creators",
		Long: `vuecrm tracks contacts through a sales pipeline and manages platform creators.

Run without arguments to start the interactive interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.isTTY != nil && !c.isTTY() {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), c.options())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $VUECRM_CONFIG or ~/.config/vuecrm/config.toml)")
	flags.StringVar(&c.prefsPath, "prefs", "", "preferences file (overrides prefs_path)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newContactsCmd(c),
		newCreatorsCmd(c),
		newThemeCmd(c),
	)
	return root
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
