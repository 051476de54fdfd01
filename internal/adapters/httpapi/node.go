package httpapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/adapters/logger"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/courier/internal/engine/intake" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.httpapi"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, intake.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			gate, err := graft.Dep[*intake.Gate](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(gate, log, settings.Server), nil
		},
	})
}
