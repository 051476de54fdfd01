package ports

import (
	"context"

	"go.trai.ch/courier/internal/core/domain"
)

// DeploymentGateway publishes file sets to named, publicly served targets.
//
//go:generate go run go.uber.org/mock/mockgen -source=deployment.go -destination=mocks/mock_deployment.go -package=mocks
type DeploymentGateway interface {
	// Create provisions a new target called name, uploads files and enables publishing.
	Create(ctx context.Context, name string, files domain.Files) (domain.DeploymentResult, error)

	// Update uploads files to the existing target called name.
	Update(ctx context.Context, name string, files domain.Files) (repoURL, commitSHA string, err error)

	// PublishedURL returns the public URL of the target called name.
	PublishedURL(ctx context.Context, name string) (string, error)
}
