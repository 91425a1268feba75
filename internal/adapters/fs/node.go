package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dropsync/internal/adapters/logger"
	"go.trai.ch/dropsync/internal/core/ports"
)

const (
	// EnumeratorNodeID is the unique identifier for the enumerator Graft node.
	EnumeratorNodeID graft.ID = "adapter.fs.enumerator"
	// MergerNodeID is the unique identifier for the merger Graft node.
	MergerNodeID graft.ID = "adapter.fs.merger"
)

func init() {
	// Enumerator Node
	graft.Register(graft.Node[ports.Enumerator]{
		ID:        EnumeratorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Enumerator, error) {
			return NewEnumerator(), nil
		},
	})

	// Merger Node
	graft.Register(graft.Node[ports.Merger]{
		ID:        MergerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EnumeratorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Merger, error) {
			lister, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMerger(lister, log), nil
		},
	})
}
