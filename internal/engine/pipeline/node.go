package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/evaluator" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/generator" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/github"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/keystore"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/probe"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NodeID is the unique identifier for the stage runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			generator.NodeID,
			github.NodeID,
			probe.NodeID,
			evaluator.NodeID,
			keystore.JournalNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			gen, err := graft.Dep[ports.Generator](ctx)
			if err != nil {
				return nil, err
			}

			gateway, err := graft.Dep[ports.DeploymentGateway](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			submitter, err := graft.Dep[ports.Submitter](ctx)
			if err != nil {
				return nil, err
			}

			journal, err := graft.Dep[ports.CompletionJournal](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(gen, gateway, verifier, submitter, journal, tracer, log, settings.Pipeline), nil
		},
	})
}
