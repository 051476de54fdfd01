package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/courier/internal/adapters/config"
	"go.trai.ch/courier/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courier.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func envMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := &config.FileConfigLoader{LookupEnv: envMap(nil)}

	settings, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	want := domain.DefaultSettings()
	assert.Equal(t, &want, settings)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
identity:
  email: me@example.com
  secret: s3cret
server:
  addr: 127.0.0.1:9000
store:
  path: state/keys.json
  journal_path: state/done.json
  watch: false
pipeline:
  deadline: 90s
  verify_timeout: 30s
scheduler:
  workers: 2
  queue_size: 8
submission:
  max_attempts: 3
  schedule: [500ms, 1s]
log:
  format: json
`)
	loader := &config.FileConfigLoader{LookupEnv: envMap(nil)}

	s, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", s.Identity.Email)
	assert.Equal(t, "s3cret", s.Identity.Secret)
	assert.Equal(t, "127.0.0.1:9000", s.Server.Addr)
	assert.Equal(t, "state/keys.json", s.Store.Path)
	assert.False(t, s.Store.WatchEnabled())
	assert.Equal(t, 90*time.Second, s.Pipeline.Deadline)
	assert.Equal(t, 2, s.Scheduler.Workers)
	assert.Equal(t, 3, s.Submission.MaxAttempts)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, s.Submission.Schedule)
	assert.Equal(t, domain.LogFormatJSON, s.Log.Format)

	// Untouched sections keep their defaults.
	assert.Equal(t, 5*time.Second, s.Probe.Interval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "identity:\n  email: file@example.com\n  secret: file\n")
	loader := &config.FileConfigLoader{LookupEnv: envMap(map[string]string{
		config.EnvSecret:     "env-secret",
		config.EnvPort:       "7860",
		config.EnvGitHubTok:  "ghp_x",
		config.EnvGitHubUser: "octo",
		config.EnvLLMModel:   "gpt-test",
		config.EnvStorePath:  "/var/lib/courier/keys.json",
	})}

	s, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", s.Identity.Secret)
	assert.Equal(t, "file@example.com", s.Identity.Email)
	assert.Equal(t, ":7860", s.Server.Addr)
	assert.Equal(t, "ghp_x", s.GitHub.Token)
	assert.Equal(t, "octo", s.GitHub.Username)
	assert.Equal(t, "gpt-test", s.Generator.Model)
	assert.Equal(t, "/var/lib/courier/keys.json", s.Store.Path)
}

func TestLoad_AddrBeatsPort(t *testing.T) {
	loader := &config.FileConfigLoader{LookupEnv: envMap(map[string]string{
		config.EnvPort: "7860",
		config.EnvAddr: "0.0.0.0:8080",
	})}

	s, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", s.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		env         map[string]string
		errContains string
		sentinel    error
	}{
		{
			name:        "Unknown field",
			content:     "pipeline:\n  deadlin: 5s\n",
			errContains: "failed to parse config file",
			sentinel:    domain.ErrConfigParseFailed,
		},
		{
			name:        "Malformed yaml",
			content:     "identity: [",
			errContains: "failed to parse config file",
			sentinel:    domain.ErrConfigParseFailed,
		},
		{
			name:        "Zero deadline",
			content:     "pipeline:\n  deadline: 0s\n",
			errContains: "pipeline.deadline must be positive",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Zero generator timeout",
			content:     "generator:\n  timeout: 0s\n",
			errContains: "generator.timeout must be positive",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Negative github timeout",
			content:     "github:\n  timeout: -1s\n",
			errContains: "github.timeout must be positive",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Schedule too short",
			content:     "submission:\n  max_attempts: 4\n  schedule: [1s]\n",
			errContains: "submission.schedule needs one wait per retry",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Unknown log format",
			content:     "log:\n  format: xml\n",
			errContains: "log.format must be auto, pretty or json",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Same store and journal",
			content:     "store:\n  path: a.json\n  journal_path: a.json\n",
			errContains: "must differ from store.path",
			sentinel:    domain.ErrInvalidConfig,
		},
		{
			name:        "Non numeric port",
			env:         map[string]string{config.EnvPort: "http"},
			errContains: "PORT must be numeric",
			sentinel:    domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &config.FileConfigLoader{LookupEnv: envMap(tt.env)}
			_, err := loader.Load(writeConfig(t, tt.content))
			require.ErrorContains(t, err, tt.errContains)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
		})
	}
}

func TestValidateIdentity(t *testing.T) {
	s := domain.DefaultSettings()
	require.ErrorIs(t, config.ValidateIdentity(&s), domain.ErrMissingIdentity)

	s.Identity.Email = "me@example.com"
	s.Identity.Secret = "x"
	require.NoError(t, config.ValidateIdentity(&s))
}

func TestPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, "courier.yaml", config.Path())

	t.Setenv(config.EnvConfigPath, "/etc/courier.yaml")
	assert.Equal(t, "/etc/courier.yaml", config.Path())
}
