package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the loaded settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(Path())
		},
	})
}

// Path returns the configuration file path, taken from COURIER_CONFIG when set.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return domain.ConfigFileName
}
