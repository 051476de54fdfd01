package config

import (
	"strconv"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables that override the configuration file.
const (
	EnvConfigPath = "COURIER_CONFIG"
	EnvSecret     = "COURIER_SECRET"
	EnvEmail      = "COURIER_EMAIL"
	EnvAddr       = "COURIER_ADDR"
	EnvPort       = "PORT"
	EnvStorePath  = "COURIER_STORE_PATH"
	EnvLogFormat  = "COURIER_LOG_FORMAT"
	EnvGitHubTok  = "GITHUB_TOKEN"
	EnvGitHubUser = "GITHUB_USERNAME"
	EnvLLMKey     = "LLM_API_KEY"
	EnvLLMBaseURL = "LLM_BASE_URL"
	EnvLLMModel   = "LLM_MODEL"
)

func applyEnv(s *domain.Settings, lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvSecret, &s.Identity.Secret},
		{EnvEmail, &s.Identity.Email},
		{EnvStorePath, &s.Store.Path},
		{EnvLogFormat, &s.Log.Format},
		{EnvGitHubTok, &s.GitHub.Token},
		{EnvGitHubUser, &s.GitHub.Username},
		{EnvLLMKey, &s.Generator.APIKey},
		{EnvLLMBaseURL, &s.Generator.BaseURL},
		{EnvLLMModel, &s.Generator.Model},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok && v != "" {
			*e.dst = v
		}
	}

	if port, ok := lookup(EnvPort); ok && port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "PORT must be numeric"), "value", port)
		}
		s.Server.Addr = ":" + port
	}
	if addr, ok := lookup(EnvAddr); ok && addr != "" {
		s.Server.Addr = addr
	}

	return nil
}
