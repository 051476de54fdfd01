package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NodeID is the unique identifier for the verification poller Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Verifier, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewPoller(settings.Probe.Interval, settings.Probe.RequestTimeout), nil
		},
	})
}
