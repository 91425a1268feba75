package ports

import (
	"context"

	"go.trai.ch/dropsync/internal/core/domain"
)

// Merger copies a source tree into a destination tree without deleting
// anything the destination holds on its own.
//
//go:generate mockgen -source=merger.go -destination=mocks/mock_merger.go -package=mocks
type Merger interface {
	// Merge recursively copies from into to: existing files are replaced,
	// missing files and directories are created, destination-only entries
	// are left untouched. Per-entry failures are logged and skipped; an
	// error is returned only when the source itself cannot be read.
	Merge(ctx context.Context, from, to string) (domain.MergeStats, error)
}
