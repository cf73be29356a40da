// Package app is the composition root for vuecrm.
//
// # Overview
//
// Module declares the dependency graph with go.uber.org/fx. Both the TUI
// (Run) and the headless CLI subcommands (WithServices) build the same graph,
// so they see the same configuration, preferences and seed data.
//
//	config.Load ──> logging.New ──> fxevent.ZapLogger
//	     │
//	     ├──> prefs.NewStore ─────────────┐
//	     ├──> crm seed ──> state.New      │
//	     └──> appearance.FileSource ──> appearance.Resolver
//
// # Lifecycle
//
// OnStart hooks start the color-scheme watcher and subscribe the resolver to
// it. OnStop hooks run in reverse: the resolver unsubscribes, the watcher
// goroutine is joined, and the log file is flushed and closed.
//
// # Usage Example
//
//	err := app.WithServices(ctx, app.Options{}, func(ctx context.Context, svc app.Services) error {
//		fmt.Println(svc.Resolver.Mode())
//		return nil
//	})
package app
