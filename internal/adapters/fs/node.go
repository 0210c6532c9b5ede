package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/stamp"
	"go.trai.ch/kiln/internal/core/ports"
)

const NodeID graft.ID = "adapter.output_writer"

func init() {
	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{stamp.NodeID},
		Run: func(ctx context.Context) (ports.OutputWriter, error) {
			store, err := graft.Dep[ports.StampStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(store), nil
		},
	})
}
