package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dropsync/internal/adapters/config"
	"go.trai.ch/dropsync/internal/adapters/logger"
	"go.trai.ch/dropsync/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			cfg, err := graft.Dep[ports.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewNotifier(cfg.DebounceWindow, log), nil
		},
	})
}
