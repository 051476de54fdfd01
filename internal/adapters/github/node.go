package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/adapters/logger"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NodeID is the unique identifier for the deployment gateway Graft node.
const NodeID graft.ID = "adapter.github"

func init() {
	graft.Register(graft.Node[ports.DeploymentGateway]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DeploymentGateway, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGateway(settings.GitHub, log), nil
		},
	})
}
