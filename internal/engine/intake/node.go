package intake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/adapters/keystore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/courier/internal/engine/scheduler"
)

// NodeID is the unique identifier for the intake gate Graft node.
const NodeID graft.ID = "engine.intake"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			keystore.NodeID,
			scheduler.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Gate, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.KeyStore](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGate(settings.Identity, store, sched, log), nil
		},
	})
}
