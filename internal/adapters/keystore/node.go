package keystore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/adapters/logger"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the concrete key store Graft node.
	StoreNodeID graft.ID = "adapter.keystore.store"
	// NodeID is the unique identifier for the ports.KeyStore Graft node.
	NodeID graft.ID = "adapter.keystore"
	// JournalNodeID is the unique identifier for the completion journal Graft node.
	JournalNodeID graft.ID = "adapter.keystore.journal"
	// WatcherNodeID is the unique identifier for the key store watcher Graft node.
	WatcherNodeID graft.ID = "adapter.keystore.watcher"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Store, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.Store.Path)
		},
	})

	graft.Register(graft.Node[ports.KeyStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.KeyStore, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.CompletionJournal]{
		ID:        JournalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CompletionJournal, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			journal, err := NewJournal(settings.Store.JournalPath)
			if err != nil {
				return nil, err
			}
			return journal, nil
		},
	})

	graft.Register(graft.Node[*Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Watcher, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(store, log), nil
		},
	})
}
