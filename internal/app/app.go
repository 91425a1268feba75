// Package app implements the application layer for dropsync.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
)

// modeSetter is implemented by the concrete logger adapter; output mode is
// adjusted through it without widening the ports.Logger surface.
type modeSetter interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	cfg      ports.Config
	logger   ports.Logger
	notifier ports.Notifier
	resolver ports.StorageResolver
	lister   ports.Enumerator
	merger   ports.Merger
}

// New creates a new App instance.
func New(
	cfg ports.Config,
	log ports.Logger,
	notifier ports.Notifier,
	resolver ports.StorageResolver,
	lister ports.Enumerator,
	merger ports.Merger,
) *App {
	return &App{
		cfg:      cfg,
		logger:   log,
		notifier: notifier,
		resolver: resolver,
		lister:   lister,
		merger:   merger,
	}
}

// Options configuration shared by the Watch and Sync methods.
type Options struct {
	JSON    bool
	Verbose bool
}

// Watch runs the lifecycle controller until the context is cancelled.
func (a *App) Watch(ctx context.Context, opts Options) error {
	if err := a.guard(); err != nil {
		return err
	}
	a.configureLogger(opts)

	a.logger.Info(fmt.Sprintf("watching %s (debounce %s)", a.cfg.DropRoot, a.cfg.DebounceWindow))

	syncer := NewSyncer(a.resolver, a.lister, a.merger, a.logger)
	controller := NewController(a.cfg.DropRoot, a.notifier, syncer, a.logger)
	return controller.Run(ctx)
}

// Sync performs a single merge pass over the drop root without watching.
func (a *App) Sync(ctx context.Context, opts Options) error {
	if err := a.guard(); err != nil {
		return err
	}
	a.configureLogger(opts)

	syncer := NewSyncer(a.resolver, a.lister, a.merger, a.logger)
	return syncer.SyncOnce(ctx)
}

// guard refuses to operate outside a development environment.
func (a *App) guard() error {
	if a.cfg.Environment == domain.EnvProduction {
		return domain.ErrProductionDisabled
	}
	return nil
}

func (a *App) configureLogger(opts Options) {
	if setter, ok := a.logger.(modeSetter); ok {
		if opts.JSON {
			setter.SetJSON(true)
		}
		setter.SetVerbose(opts.Verbose)
	}
}
