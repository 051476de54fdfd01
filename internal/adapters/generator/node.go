package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "adapter.generator"

func init() {
	graft.Register(graft.Node[ports.Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Generator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings.Generator), nil
		},
	})
}
