package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dropsync/internal/adapters/config"
	"go.trai.ch/dropsync/internal/adapters/fs"
	"go.trai.ch/dropsync/internal/adapters/logger"
	"go.trai.ch/dropsync/internal/adapters/storage"
	"go.trai.ch/dropsync/internal/adapters/watcher"
	"go.trai.ch/dropsync/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
			storage.NodeID,
			fs.EnumeratorNodeID,
			fs.MergerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[ports.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.StorageResolver](ctx)
			if err != nil {
				return nil, err
			}
			lister, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			merger, err := graft.Dep[ports.Merger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(cfg, log, notifier, resolver, lister, merger),
				Logger: log,
			}, nil
		},
	})
}
