package app

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/five82/vuecrm/internal/appearance"
	"github.com/five82/vuecrm/internal/config"
	"github.com/five82/vuecrm/internal/crm"
	"github.com/five82/vuecrm/internal/logging"
	"github.com/five82/vuecrm/internal/prefs"
	"github.com/five82/vuecrm/internal/state"
)

// Services is everything the TUI and the CLI subcommands consume.
type Services struct {
	fx.In

	Config   config.Config
	Logger   *zap.Logger
	Store    *state.Store
	Prefs    *prefs.Store
	Resolver *appearance.Resolver
}

// Module provides the vuecrm dependency graph.
func Module(opts Options) fx.Option {
	return fx.Options(
		fx.Supply(opts),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideFs,
			providePrefs,
			provideSeed,
			provideStore,
			provideSource,
			provideResolver,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)
}

func provideConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(opts.ConfigPath))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.PrefsPath != "" {
		cfg.PrefsPath = opts.PrefsPath
	}
	return cfg, nil
}

func provideLogger(lc fx.Lifecycle, cfg config.Config, opts Options) (*zap.Logger, error) {
	logger, closeFn, err := logging.New(logging.Options{
		Path:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closeFn()
			return nil
		},
	})
	return logger, nil
}

func provideFs() afero.Fs {
	return afero.NewOsFs()
}

func providePrefs(fs afero.Fs, cfg config.Config) *prefs.Store {
	return prefs.NewStore(fs, cfg.PrefsPath)
}

func provideSeed(cfg config.Config, logger *zap.Logger) (crm.Seed, error) {
	if cfg.SeedFile == "" {
		return crm.DefaultSeed()
	}
	seed, err := crm.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return crm.Seed{}, err
	}
	logger.Info("loaded seed file",
		zap.String("path", cfg.SeedFile),
		zap.Int("contacts", len(seed.Contacts)),
		zap.Int("creators", len(seed.Creators)),
	)
	return seed, nil
}

func provideStore(seed crm.Seed) *state.Store {
	return state.New(seed)
}

func provideSource(lc fx.Lifecycle, cfg config.Config, opts Options, logger *zap.Logger) appearance.Source {
	if opts.Source != nil {
		return opts.Source
	}
	if cfg.AppearanceFile == "" {
		return appearance.NewTerminalSource()
	}
	src := appearance.NewFileSource(cfg.AppearanceFile, appearance.DetectTerminal(), logger.Named("appearance"))
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := src.Start(); err != nil {
				// Following the OS is best effort.
				logger.Warn("appearance watcher unavailable", zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return src.Close()
		},
	})
	return src
}

func provideResolver(lc fx.Lifecycle, store *prefs.Store, src appearance.Source, logger *zap.Logger) *appearance.Resolver {
	r := appearance.NewResolver(store, src, logger.Named("theme"))
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			r.Close()
			return nil
		},
	})
	return r
}
