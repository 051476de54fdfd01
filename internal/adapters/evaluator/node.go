package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/adapters/logger"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NodeID is the unique identifier for the submission retrier Graft node.
const NodeID graft.ID = "adapter.evaluator"

func init() {
	graft.Register(graft.Node[ports.Submitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Submitter, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			sub := settings.Submission
			return NewSubmitter(log, sub.Schedule, sub.MaxAttempts, sub.RequestTimeout), nil
		},
	})
}
