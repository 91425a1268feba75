package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Notifier = (*Notifier)(nil)

const signalChannelBuffer = 1

// Notifier implements change notification using fsnotify. Only the drop
// root itself is watched, never its subdirectories: any write below the
// root is reported as one coalesced parameterless signal.
type Notifier struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	signals   chan ports.ChangeSignal
	closed    bool
	closeOnce sync.Once
	window    time.Duration
	log       ports.Logger
}

// NewNotifier creates a new Notifier with the given debounce window.
func NewNotifier(window time.Duration, log ports.Logger) *Notifier {
	return &Notifier{
		signals: make(chan ports.ChangeSignal, signalChannelBuffer),
		window:  window,
		log:     log,
	}
}

// Start begins watching the given root directory. A second Start while a
// watch is active is a no-op, so at most one OS-level handle is held.
// A missing root is logged and no watch is taken; this is not fatal.
func (n *Notifier) Start(_ context.Context, root string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil
	}
	if n.fsWatcher != nil {
		n.log.Debug("watch already active, ignoring start")
		return nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	if err := fsWatcher.Add(root); err != nil {
		_ = fsWatcher.Close()
		if errors.Is(err, fs.ErrNotExist) {
			n.log.Warn(fmt.Sprintf("drop root %s does not exist, not watching", root))
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}

	debouncer := NewDebouncer(n.window, n.signal)
	n.fsWatcher = fsWatcher
	n.debouncer = debouncer

	go n.processEvents(fsWatcher, debouncer)

	n.log.Debug(fmt.Sprintf("watching %s", root))
	return nil
}

// Stop releases the watch handle. Safe to call when never started or
// already stopped; the handle is closed exactly once.
func (n *Notifier) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stopLocked()
}

func (n *Notifier) stopLocked() error {
	if n.fsWatcher == nil {
		return nil
	}

	err := n.fsWatcher.Close()
	n.fsWatcher = nil
	// A trigger still inside its debounce window is dropped, not flushed:
	// once suspended, no merge may start until the next Resume.
	n.debouncer.Stop()
	n.debouncer = nil

	if err != nil {
		return zerr.Wrap(err, "failed to close watch handle")
	}
	return nil
}

// Changes returns an iterator of coalesced change signals. The iterator
// ends when the notifier is closed.
func (n *Notifier) Changes() iter.Seq[ports.ChangeSignal] {
	return func(yield func(ports.ChangeSignal) bool) {
		for signal := range n.signals {
			if !yield(signal) {
				return
			}
		}
	}
}

// Close stops the watch and ends the Changes iterator. Idempotent.
func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := n.stopLocked()
	n.closeOnce.Do(func() {
		n.closed = true
		close(n.signals)
	})
	return err
}

// signal delivers one coalesced change signal without blocking; a signal
// already pending in the buffer absorbs this one.
func (n *Notifier) signal() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	select {
	case n.signals <- ports.ChangeSignal{At: time.Now()}:
	default:
	}
}

// processEvents forwards raw fsnotify events into the debouncer. It exits
// when the watch handle is closed.
func (n *Notifier) processEvents(fsWatcher *fsnotify.Watcher, debouncer *Debouncer) {
	for {
		select {
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debouncer.Trigger()
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			n.log.Error(zerr.Wrap(err, "file system watch error"))
		}
	}
}
