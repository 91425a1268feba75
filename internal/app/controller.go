package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
)

// Controller drives the watch lifecycle. It has two states, idle and
// watching, and starts idle. Resume and Suspend mirror the host app moving
// to the foreground and background; a change signal may race a Suspend, in
// which case the already-dispatched merge still runs to completion.
type Controller struct {
	root     string
	notifier ports.Notifier
	syncer   *Syncer
	log      ports.Logger

	mu       sync.Mutex
	watching bool
	closed   bool
}

// NewController creates a new Controller watching root.
func NewController(root string, notifier ports.Notifier, syncer *Syncer, log ports.Logger) *Controller {
	return &Controller{
		root:     root,
		notifier: notifier,
		syncer:   syncer,
		log:      log,
	}
}

// Resume transitions idle to watching and starts the notifier. A missing
// root is handled by the notifier itself: logged, no watch, not fatal.
func (c *Controller) Resume(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.watching {
		return nil
	}
	if err := c.notifier.Start(ctx, c.root); err != nil {
		return err
	}
	c.watching = true
	return nil
}

// Suspend transitions watching to idle and releases the watch handle.
func (c *Controller) Suspend() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.watching {
		return nil
	}
	c.watching = false
	return c.notifier.Stop()
}

// Close tears the controller down: the watch handle is released and the
// signal stream ends. Idempotent, safe to call from any state.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.watching = false
	return c.notifier.Close()
}

// Run resumes watching and blocks until the context is cancelled. SIGUSR1
// and SIGUSR2 simulate the host's foreground and background transitions so
// the lifecycle can be exercised from a shell.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Resume(ctx); err != nil {
		return err
	}

	lifecycle := make(chan os.Signal, 1)
	signal.Notify(lifecycle, syscall.SIGUSR1, syscall.SIGUSR2)
	defer signal.Stop(lifecycle)

	g, ctx := errgroup.WithContext(ctx)

	// Merge Routine: handles every coalesced change signal, even one that
	// raced a Suspend.
	g.Go(func() error {
		for range c.notifier.Changes() {
			c.handleChange(ctx)
		}
		return nil
	})

	// Lifecycle Routine
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return c.Close()
			case sig := <-lifecycle:
				var err error
				switch sig {
				case syscall.SIGUSR1:
					c.log.Info("resuming watch")
					err = c.Resume(ctx)
				case syscall.SIGUSR2:
					c.log.Info("suspending watch")
					err = c.Suspend()
				}
				if err != nil {
					c.log.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// handleChange runs one sync pass. Failures never escalate past the log:
// the tool must not disturb the host app's primary operation.
func (c *Controller) handleChange(ctx context.Context) {
	if err := c.syncer.SyncOnce(ctx); err != nil {
		if errors.Is(err, domain.ErrRootNotFound) {
			c.log.Warn("drop root disappeared, skipping sync pass")
			return
		}
		c.log.Error(err)
	}
}
