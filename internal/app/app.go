package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/five82/vuecrm/internal/appearance"
	"github.com/five82/vuecrm/internal/ui"
)

// Options configure the vuecrm application.
type Options struct {
	ConfigPath string // empty uses $VUECRM_CONFIG, then ~/.config/vuecrm/config.toml
	PrefsPath  string // overrides prefs_path from the config
	Verbose    bool

	// Source replaces the OS appearance source. Tests use appearance.Static.
	Source appearance.Source
}

// Run boots the vuecrm TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	return WithServices(ctx, opts, func(ctx context.Context, svc Services) error {
		svc.Logger.Info("starting tui")
		return ui.Run(ui.Options{
			Context:          ctx,
			Store:            svc.Store,
			Resolver:         svc.Resolver,
			Logger:           svc.Logger.Named("ui"),
			ContactsPageSize: svc.Config.ContactsPageSize,
			CreatorsPageSize: svc.Config.CreatorsPageSize,
		})
	})
}

// WithServices starts the dependency graph, runs fn, and stops the graph
// again whatever fn returns.
func WithServices(ctx context.Context, opts Options, fn func(context.Context, Services) error) error {
	var svc Services
	fxApp := fx.New(
		Module(opts),
		fx.Invoke(func(s Services) { svc = s }),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	runErr := fn(ctx, svc)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("stop: %w", err)
	}
	return runErr
}
