package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/adapters/httpapi"   //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/adapters/keystore"  //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/courier/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			keystore.NodeID,
			keystore.JournalNodeID,
			keystore.WatcherNodeID,
			telemetry.TracerNodeID,
			httpapi.NodeID,
			scheduler.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.KeyStore](ctx)
	if err != nil {
		return nil, err
	}

	journal, err := graft.Dep[ports.CompletionJournal](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := graft.Dep[*keystore.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[*httpapi.Server](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, log, store, journal, tracer, server, sched, watcher), nil
}
