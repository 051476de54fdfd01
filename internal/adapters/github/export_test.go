package github

import (
	"net/http"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
)

// NewGatewayWithClient exposes HTTP client injection for tests.
func NewGatewayWithClient(s domain.GitHubSettings, logger ports.Logger, client *http.Client) *Gateway {
	return newGatewayWithClient(s, logger, client)
}
