package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dropsync/internal/adapters/config"
	"go.trai.ch/dropsync/internal/core/ports"
)

// NodeID is the unique identifier for the storage resolver Graft node.
const NodeID graft.ID = "adapter.storage"

func init() {
	graft.Register(graft.Node[ports.StorageResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.StorageResolver, error) {
			cfg, err := graft.Dep[ports.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg), nil
		},
	})
}
