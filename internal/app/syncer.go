package app

import (
	"context"
	"fmt"

	"go.trai.ch/dropsync/internal/core/ports"
)

// Syncer performs one merge pass over the drop root: every immediate
// subdirectory whose name matches a loaded app is merged into that app's
// storage. Unmatched names are skipped; not every dropped folder
// corresponds to a loaded app.
type Syncer struct {
	resolver ports.StorageResolver
	lister   ports.Enumerator
	merger   ports.Merger
	log      ports.Logger
}

// NewSyncer creates a new Syncer.
func NewSyncer(
	resolver ports.StorageResolver,
	lister ports.Enumerator,
	merger ports.Merger,
	log ports.Logger,
) *Syncer {
	return &Syncer{
		resolver: resolver,
		lister:   lister,
		merger:   merger,
		log:      log,
	}
}

// SyncOnce resolves the drop root fresh and merges every matching drop
// folder. It returns an error only when the root itself cannot be resolved
// or listed; everything below that degrades to log output.
func (s *Syncer) SyncOnce(ctx context.Context) error {
	root, err := s.resolver.UserStorageRoot()
	if err != nil {
		return err
	}

	children, err := s.lister.List(root)
	if err != nil {
		return err
	}

	for child := range children {
		if !child.IsDir {
			continue
		}

		dest, err := s.resolver.LoadedAppPath(child.Name)
		if err != nil {
			s.log.Debug(fmt.Sprintf("skipping %q: no loaded app with that name", child.Name))
			continue
		}

		stats, err := s.merger.Merge(ctx, child.Path, dest)
		if err != nil {
			s.log.Error(err)
			continue
		}
		if stats.Total() > 0 || stats.Skipped > 0 {
			s.log.Info(fmt.Sprintf("merged %q into %s (%s)", child.Name, dest, stats))
		}
	}

	return nil
}
