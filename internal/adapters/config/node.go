package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dropsync/internal/adapters/logger"
	"go.trai.ch/dropsync/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the config loader Graft node.
	LoaderNodeID graft.ID = "adapter.config.loader"
	// NodeID is the unique identifier for the resolved config Graft node.
	NodeID graft.ID = "adapter.config"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	// Resolved Config Node
	graft.Register(graft.Node[ports.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (ports.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return ports.Config{}, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return ports.Config{}, err
			}
			return loader.Load(cwd)
		},
	})
}
