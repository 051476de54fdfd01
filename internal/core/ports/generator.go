// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/courier/internal/core/domain"
)

// Generator produces the artifact file set for a task.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate returns the files for the given brief.
	//
	// The result always contains the entry file. Output that cannot be parsed or
	// lacks the entry file fails with domain.ErrGenerationFailed.
	Generate(ctx context.Context, brief string, checks []string, attachments []domain.Attachment) (domain.Files, error)
}
