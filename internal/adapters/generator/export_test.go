package generator

import (
	"net/http"
	"time"

	"go.trai.ch/courier/internal/core/domain"
)

// NewClientWithHTTP exposes client and clock injection for tests.
func NewClientWithHTTP(s domain.GeneratorSettings, client *http.Client, now func() time.Time) *Client {
	c := newClientWithHTTP(s, client)
	c.now = now
	return c
}

// Exported parsing helpers.
var (
	ParseFiles  = parseFiles
	BuildPrompt = buildPrompt
)
