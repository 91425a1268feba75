package ports

import (
	"context"
	"iter"
	"time"
)

// ChangeSignal is a coalesced "something under the root changed" event.
// It deliberately carries no path: the consumer re-scans the whole root.
type ChangeSignal struct {
	// At is when the debounce window closed.
	At time.Time
}

// Notifier defines the interface for watching the drop root for changes.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Start begins watching the given root directory. Calling Start while a
	// watch is already active is a no-op; at most one OS-level watch handle
	// is held at a time. A missing root is logged and no watch is taken.
	Start(ctx context.Context, root string) error

	// Stop releases the watch handle. Safe to call when never started or
	// already stopped.
	Stop() error

	// Changes returns an iterator of coalesced change signals. The iterator
	// ends when the notifier is closed.
	Changes() iter.Seq[ChangeSignal]

	// Close stops the watch and ends the Changes iterator. Idempotent.
	Close() error
}
