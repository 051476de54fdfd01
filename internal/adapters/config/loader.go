// Package config provides the configuration loader for courier.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file and environment overrides.
type FileConfigLoader struct {
	// LookupEnv resolves environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a loader reading overrides from the process environment.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{LookupEnv: os.LookupEnv}
}

// Load reads the configuration from path, applies environment overrides and validates the result.
// A missing file yields the defaults.
func (l *FileConfigLoader) Load(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(domain.WrapCause(domain.ErrConfigReadFailed, err), "path", path)
	default:
		if err := decode(data, &settings); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&settings, lookup); err != nil {
		return nil, err
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func decode(data []byte, settings *domain.Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return domain.WrapCause(domain.ErrConfigParseFailed, err)
	}
	return nil
}
